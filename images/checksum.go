package images

import (
	"crypto/md5"
	"fmt"
)

// Checksum returns a deterministic digest of the raster's size and pixels,
// used to verify that transforms are repeatable and leave their input intact.
//
// Arguments:
// - r: The raster to digest.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for a nil or empty raster.
//
// @example
// before := src.Checksum()
// _, _ = Cartoonize(src, 50)
// // src.Checksum() == before
func (r *Raster) Checksum() string {
	if r == nil || r.Empty() {
		return "empty"
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", r.Width, r.Height)
	buf := make([]byte, 0, len(r.Pix)*3)
	for _, p := range r.Pix {
		buf = append(buf, p.R, p.G, p.B)
	}
	hash.Write(buf)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
