// Package images - Raster definition for the transform engine.
package images

import (
	"fmt"
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// ErrInvalidDimensions is returned when a raster is too small (or nil) for
// the requested operation.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Pixel is a single RGB sample. Channels are 8-bit and therefore always in
// [0, 255].
type Pixel struct {
	// R is the red channel.
	R uint8 `json:"r" yaml:"r"`
	// G is the green channel.
	G uint8 `json:"g" yaml:"g"`
	// B is the blue channel.
	B uint8 `json:"b" yaml:"b"`
}

// Common pixel values.
var (
	Black = Pixel{R: 0, G: 0, B: 0}
	White = Pixel{R: 255, G: 255, B: 255}
)

// RGB builds a Pixel from arbitrary integer channel values, clamping each one
// into [0, 255].
//
// Arguments:
// - r, g, b: Channel values, possibly out of range.
//
// Returns:
// - The clamped Pixel.
//
// @example
// p := RGB(300, -4, 128) // Pixel{255, 0, 128}
func RGB(r, g, b int) Pixel {
	return Pixel{R: ClampChannel(r), G: ClampChannel(g), B: ClampChannel(b)}
}

// Gray returns a pixel with all three channels set to v.
func Gray(v int) Pixel {
	c := ClampChannel(v)
	return Pixel{R: c, G: c, B: c}
}

// Sum returns R+G+B.
func (p Pixel) Sum() int {
	return int(p.R) + int(p.G) + int(p.B)
}

// String implements fmt.Stringer.
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.R, p.G, p.B)
}

// Raster is a dense width x height grid of pixels stored row-major with the
// origin at the top-left corner (x = column, y = row).
type Raster struct {
	// The width of the raster in pixels.
	Width int `json:"width" yaml:"width"`
	// The height of the raster in pixels.
	Height int `json:"height" yaml:"height"`
	// Pix holds Width*Height pixels, row by row.
	Pix []Pixel `json:"-" yaml:"-"`
}

// NewRaster allocates an all-black raster of the given size.
//
// Arguments:
// - width: Number of columns, must be >= 0.
// - height: Number of rows, must be >= 0.
//
// Returns:
// - The new raster.
// - ErrInvalidDimensions if either dimension is negative.
//
// @example
// r, err := NewRaster(640, 480)
func NewRaster(width, height int) (*Raster, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "new raster %dx%d", width, height)
	}
	return newRaster(width, height), nil
}

// newRaster is NewRaster for sizes already known to be valid.
func newRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// FromPixels builds a raster from rows of pixels. All rows must share the same
// length.
func FromPixels(rows [][]Pixel) (*Raster, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	r := newRaster(width, height)
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidDimensions, "row %d has %d pixels, want %d", y, len(row), width)
		}
		copy(r.Pix[y*width:(y+1)*width], row)
	}
	return r, nil
}

// FromImage converts any image.Image into a raster. Alpha is dropped and the
// 16-bit channels returned by RGBA() are reduced to 8 bits.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	r := newRaster(bounds.Dx(), bounds.Dy())

	// Fast path for the common decoded formats.
	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < r.Height; y++ {
			i := rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < r.Width; x++ {
				r.Pix[y*r.Width+x] = Pixel{R: rgba.Pix[i], G: rgba.Pix[i+1], B: rgba.Pix[i+2]}
				i += 4
			}
		}
		return r
	}

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			cr, cg, cb, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			r.Pix[y*r.Width+x] = Pixel{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8)}
		}
	}
	return r
}

// Image converts the raster into an opaque *image.RGBA anchored at (0, 0).
func (r *Raster) Image() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			p := r.Pix[y*r.Width+x]
			dst.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return dst
}

// Bounds returns the raster rectangle.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// Empty reports whether the raster has no pixels.
func (r *Raster) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// In reports whether (x, y) is a valid coordinate.
func (r *Raster) In(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// At returns the pixel at (x, y). Out-of-range coordinates are a programming
// error and panic.
func (r *Raster) At(x, y int) Pixel {
	return r.Pix[r.offset(x, y)]
}

// Set stores p at (x, y). Out-of-range coordinates panic.
func (r *Raster) Set(x, y int, p Pixel) {
	r.Pix[r.offset(x, y)] = p
}

func (r *Raster) offset(x, y int) int {
	if !r.In(x, y) {
		panic(fmt.Sprintf("images: coordinate (%d,%d) outside %dx%d raster", x, y, r.Width, r.Height))
	}
	return y*r.Width + x
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	dst := newRaster(r.Width, r.Height)
	copy(dst.Pix, r.Pix)
	return dst
}

// Equal reports whether both rasters have identical dimensions and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Width != other.Width || r.Height != other.Height {
		return false
	}
	for i := range r.Pix {
		if r.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// Row returns the pixels of row y. The slice aliases the raster storage.
func (r *Raster) Row(y int) []Pixel {
	if y < 0 || y >= r.Height {
		panic(fmt.Sprintf("images: row %d outside %dx%d raster", y, r.Width, r.Height))
	}
	return r.Pix[y*r.Width : (y+1)*r.Width]
}

// String implements fmt.Stringer.
func (r *Raster) String() string {
	return fmt.Sprintf("Raster(%dx%d)", r.Width, r.Height)
}

// validate rejects nil rasters and rasters smaller than minWidth x minHeight.
func validate(op string, r *Raster, minWidth, minHeight int) error {
	if r == nil {
		return errors.Wrapf(ErrInvalidDimensions, "%s: nil raster", op)
	}
	if r.Width < minWidth || r.Height < minHeight {
		return errors.Wrapf(ErrInvalidDimensions, "%s: %dx%d raster, need at least %dx%d",
			op, r.Width, r.Height, minWidth, minHeight)
	}
	if len(r.Pix) != r.Width*r.Height {
		return errors.Wrapf(ErrInvalidDimensions, "%s: %dx%d raster holds %d pixels",
			op, r.Width, r.Height, len(r.Pix))
	}
	return nil
}
