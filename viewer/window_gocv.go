//go:build gocv

package viewer

import (
	"context"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/nvr-ai/rasterfx/images"
)

// Window shows rasters in an OpenCV highgui window.
type Window struct {
	opts   Options
	window *gocv.Window
}

// New opens a display window.
func New(opts Options) (Viewer, error) {
	return &Window{opts: opts}, nil
}

// Show renders r and waits for a key press, polling so that ctx cancellation
// closes the window.
func (w *Window) Show(ctx context.Context, title string, r *images.Raster) error {
	if r == nil || r.Empty() {
		return errors.Wrap(images.ErrInvalidDimensions, "nothing to show")
	}

	preview := Fit(r, w.opts.MaxWidth, w.opts.MaxHeight)
	mat, err := gocv.ImageToMatRGB(preview.Image())
	if err != nil {
		return errors.Wrap(err, "failed to convert raster to mat")
	}
	defer mat.Close()

	if w.window == nil {
		w.window = gocv.NewWindow(title)
	}
	w.window.SetWindowTitle(title)
	w.window.IMShow(mat)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		// Any key dismisses the preview.
		if key := w.window.WaitKey(50); key >= 0 {
			return nil
		}
		if !w.window.IsOpen() {
			return nil
		}
	}
}

// Close destroys the window.
func (w *Window) Close() error {
	if w.window == nil {
		return nil
	}
	err := w.window.Close()
	w.window = nil
	return err
}
