package images

// FlipHorizontal mirrors the raster around its vertical axis:
// out(x, y) = in(w-1-x, y).
//
// Arguments:
// - src: The source raster.
//
// Returns:
// - A new raster of the same size.
//
// @example
// mirrored, err := FlipHorizontal(src)
func FlipHorizontal(src *Raster) (*Raster, error) {
	if err := validate("flip horizontal", src, 0, 0); err != nil {
		return nil, err
	}
	w := src.Width
	return remap(src, src.Width, src.Height, func(x, y int) (int, int) {
		return w - 1 - x, y
	}), nil
}

// FlipVertical mirrors the raster around its horizontal axis:
// out(x, y) = in(x, h-1-y).
func FlipVertical(src *Raster) (*Raster, error) {
	if err := validate("flip vertical", src, 0, 0); err != nil {
		return nil, err
	}
	h := src.Height
	return remap(src, src.Width, src.Height, func(x, y int) (int, int) {
		return x, h - 1 - y
	}), nil
}

// RotateClockwise rotates the raster by 90 degrees clockwise. The output is
// h x w and satisfies out(h-1-y, x) = in(x, y), i.e. out(x', y') =
// in(y', h-1-x').
//
// Arguments:
// - src: The source raster.
//
// Returns:
// - A new raster with width and height swapped.
//
// @example
// rotated, err := RotateClockwise(src) // 640x480 -> 480x640
func RotateClockwise(src *Raster) (*Raster, error) {
	if err := validate("rotate clockwise", src, 0, 0); err != nil {
		return nil, err
	}
	h := src.Height
	return remap(src, src.Height, src.Width, func(x, y int) (int, int) {
		return y, h - 1 - x
	}), nil
}

// ScaleUp doubles both dimensions with nearest-neighbor replication: every
// source pixel becomes a 2x2 block, out(x, y) = in(x/2, y/2).
//
// Arguments:
// - src: The source raster.
//
// Returns:
// - A new 2w x 2h raster.
//
// @example
// big, err := ScaleUp(src)
func ScaleUp(src *Raster) (*Raster, error) {
	if err := validate("scale up", src, 0, 0); err != nil {
		return nil, err
	}
	return remap(src, 2*src.Width, 2*src.Height, func(x, y int) (int, int) {
		return x / 2, y / 2
	}), nil
}

// ScaleDown halves both dimensions with nearest-neighbor decimation,
// out(x, y) = in(2x, 2y). Odd dimensions are floored, so the last source
// row or column is dropped.
//
// Arguments:
// - src: The source raster, at least 2x2.
//
// Returns:
// - A new floor(w/2) x floor(h/2) raster.
// - ErrInvalidDimensions if either source dimension is below 2.
//
// @example
// small, err := ScaleDown(src)
func ScaleDown(src *Raster) (*Raster, error) {
	if err := validate("scale down", src, 2, 2); err != nil {
		return nil, err
	}
	return remap(src, src.Width/2, src.Height/2, func(x, y int) (int, int) {
		return 2 * x, 2 * y
	}), nil
}
