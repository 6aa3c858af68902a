// Package codec decodes image files into rasters and encodes rasters back to
// files. The format is chosen from the file extension.
package codec

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/nvr-ai/rasterfx/images"
)

// Codec errors.
var (
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrUnsupportedFormat is returned for extensions or payloads no codec handles.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ImageFormat represents supported image formats.
type ImageFormat string

const (
	// FormatGIF is the GIF image format. Only the first frame is read.
	FormatGIF ImageFormat = "gif"
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
	// FormatBMP is the BMP image format.
	FormatBMP ImageFormat = "bmp"
	// FormatTIFF is the TIFF image format.
	FormatTIFF ImageFormat = "tiff"
)

// JPEGQuality and WebPQuality are the lossy encoder settings.
const (
	JPEGQuality = 95
	WebPQuality = 90
)

// Formats lists every supported format.
func Formats() []ImageFormat {
	return []ImageFormat{FormatGIF, FormatPNG, FormatJPEG, FormatWebP, FormatBMP, FormatTIFF}
}

// Extension returns the canonical file extension for the format, with dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatTIFF:
		return ".tif"
	default:
		return "." + string(f)
	}
}

// ParseFormat maps a format name or extension (with or without dot) to an
// ImageFormat.
func ParseFormat(s string) (ImageFormat, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "gif":
		return FormatGIF, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.Wrapf(ErrUnsupportedFormat, "%s has no extension", path)
	}
	return ParseFormat(ext)
}

// IsSupported reports whether path has a supported image extension.
func IsSupported(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}

// Decode reads and decodes the image file at path.
//
// Arguments:
// - path: The image file path. Its extension selects the decoder.
//
// Returns:
// - The decoded raster.
// - ErrNotFound if the file does not exist, ErrUnsupportedFormat if the
// extension or the payload is not understood.
//
// @example
// r, err := codec.Decode("img/cat.gif")
func Decode(path string) (*images.Raster, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	r, err := DecodeBytes(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	return r, nil
}

// DecodeBytes decodes an in-memory image of the given format.
func DecodeBytes(data []byte, format ImageFormat) (*images.Raster, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrUnsupportedFormat, "empty image data")
	}

	reader := bytes.NewReader(data)

	var (
		img image.Image
		err error
	)
	switch format {
	case FormatGIF:
		// gif.Decode returns the first frame; animation is not supported.
		img, err = gif.Decode(reader)
	case FormatPNG:
		img, err = png.Decode(reader)
	case FormatJPEG:
		img, err = jpeg.Decode(reader)
	case FormatWebP:
		img, err = webp.Decode(reader)
	case FormatBMP:
		img, err = bmp.Decode(reader)
	case FormatTIFF:
		img, err = tiff.Decode(reader)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s payload: %v", format, err)
	}

	return images.FromImage(img), nil
}

// Encode writes r to path using the format implied by the extension. Parent
// directories are created as needed.
//
// Arguments:
// - path: Destination file path.
// - r: The raster to persist.
//
// Returns:
// - An error if the format is unsupported or writing fails.
//
// @example
// err := codec.Encode("out/cat-rotated.png", rotated)
func Encode(path string, r *images.Raster) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	var buf bytes.Buffer
	if err := EncodeTo(&buf, format, r); err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// EncodeTo writes r to w in the given format.
func EncodeTo(w io.Writer, format ImageFormat, r *images.Raster) error {
	if r == nil {
		return errors.Wrap(images.ErrInvalidDimensions, "nil raster")
	}
	if r.Empty() {
		// None of the encoders accept a zero-sized image.
		return errors.Wrapf(images.ErrInvalidDimensions, "cannot encode %dx%d raster", r.Width, r.Height)
	}

	img := r.Image()
	switch format {
	case FormatGIF:
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatWebP:
		return webp.Encode(w, img, &webp.Options{Quality: WebPQuality})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}
