package util

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/nvr-ai/rasterfx/codec"
)

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Name is the base name without extension.
	Name string
	// Format is derived from the file extension.
	Format codec.ImageFormat
	// Data is the raw bytes of the image file.
	Data []byte
}

// ListDirectoryImageFiles returns the paths of every supported image file in
// dir, sorted by name. Subdirectories are not descended into.
func ListDirectoryImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !codec.IsSupported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDirectoryImageFiles reads all image files from a directory.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []ImageFile: Slice of ImageFile sorted by path, each containing the raw bytes of an image file.
// - error: Error if loading fails.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	paths, err := ListDirectoryImageFiles(dir)
	if err != nil {
		return nil, err
	}

	files := make([]ImageFile, 0, len(paths))
	for _, path := range paths {
		file, err := LoadImageFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// LoadImageFile reads a single image file without decoding it.
func LoadImageFile(path string) (ImageFile, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return ImageFile{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ImageFile{}, errors.Wrapf(codec.ErrNotFound, "%s", path)
		}
		return ImageFile{}, errors.Wrapf(err, "failed to read %s", path)
	}
	base := filepath.Base(path)
	return ImageFile{
		Path:   path,
		Name:   base[:len(base)-len(filepath.Ext(base))],
		Format: format,
		Data:   data,
	}, nil
}
