// Package viewer presents rasters on screen.
//
// The OpenCV window viewer is compiled in with the gocv build tag
// (go build -tags gocv); without it New returns a viewer that reports
// ErrUnavailable so callers can fall back to saving the result.
package viewer

import (
	"context"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/rasterfx/images"
)

// ErrUnavailable is returned when no display backend is compiled in.
var ErrUnavailable = errors.New("viewer unavailable")

// Viewer displays a raster and blocks until the user dismisses it or ctx is
// cancelled.
type Viewer interface {
	Show(ctx context.Context, title string, r *images.Raster) error
	Close() error
}

// Options bound the displayed preview.
type Options struct {
	MaxWidth  int
	MaxHeight int
}

// Fit shrinks r, preserving aspect ratio, so that it fits inside
// maxWidth x maxHeight using nfnt's nearest-neighbor filter. Rasters that
// already fit are returned unchanged. Only the on-screen preview is shrunk.
//
// Arguments:
// - r: The raster to display.
// - maxWidth, maxHeight: The display bounds.
//
// Returns:
// - r itself, or a new downsized raster.
//
// @example
// preview := viewer.Fit(big, 1280, 960)
func Fit(r *images.Raster, maxWidth, maxHeight int) *images.Raster {
	if r == nil || r.Empty() || maxWidth <= 0 || maxHeight <= 0 {
		return r
	}
	if r.Width <= maxWidth && r.Height <= maxHeight {
		return r
	}
	thumb := resize.Thumbnail(uint(maxWidth), uint(maxHeight), r.Image(), resize.NearestNeighbor)
	return images.FromImage(thumb)
}

// Nop is a Viewer that always reports ErrUnavailable.
type Nop struct{}

// Show implements Viewer.
func (Nop) Show(context.Context, string, *images.Raster) error {
	return ErrUnavailable
}

// Close implements Viewer.
func (Nop) Close() error {
	return nil
}
