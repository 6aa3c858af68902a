package images

// Cartoonize renders a binary edge map by comparing every pixel with its
// diagonal predecessor.
//
// For every output coordinate (x, y) with x >= 1 and y >= 1 the source pixels
// in(x-1, y-1) and in(x, y) are compared channel by channel. If any absolute
// difference exceeds threshold the output is Black, otherwise White. The
// first row and first column have no diagonal predecessor and keep their
// source value.
//
// This is a one-direction diagonal gradient, not a Sobel or Canny kernel:
// edges running parallel to the main diagonal are missed.
//
// Arguments:
// - src: The source raster, at least 2x2.
// - threshold: Per-channel difference threshold, DefaultCartoonThreshold by default.
//
// Returns:
// - A new raster of the same size.
// - ErrInvalidDimensions if either source dimension is below 2.
//
// @example
// edges, err := Cartoonize(src, DefaultCartoonThreshold)
func Cartoonize(src *Raster, threshold int) (*Raster, error) {
	if err := validate("cartoonize", src, 2, 2); err != nil {
		return nil, err
	}

	// The border row and column are never assigned below, so start from a copy.
	dst := src.Clone()
	w := src.Width

	Parallel(src.Height-1, func(partStart, partEnd int) {
		for i := partStart; i < partEnd; i++ {
			y := i + 1
			for x := 1; x < w; x++ {
				prev := src.Pix[(y-1)*w+x-1]
				cur := src.Pix[y*w+x]
				if EdgeBetween(prev, cur, threshold) {
					dst.Pix[y*w+x] = Black
				} else {
					dst.Pix[y*w+x] = White
				}
			}
		}
	})

	return dst, nil
}

// EdgeBetween reports whether any channel of a and b differs by more than
// threshold.
func EdgeBetween(a, b Pixel, threshold int) bool {
	return absDiff(a.R, b.R) > threshold ||
		absDiff(a.G, b.G) > threshold ||
		absDiff(a.B, b.B) > threshold
}
