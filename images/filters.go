package images

// RedFilter keeps only the red channel of every pixel.
//
// Arguments:
// - src: The source raster.
//
// Returns:
// - A new raster of the same size with green and blue forced to 0.
//
// @example
// red, err := RedFilter(src)
func RedFilter(src *Raster) (*Raster, error) {
	if err := validate("red filter", src, 0, 0); err != nil {
		return nil, err
	}
	return mapPixels(src, func(p Pixel) Pixel {
		return Pixel{R: p.R}
	}), nil
}

// Negative inverts every channel (255 - c).
//
// Arguments:
// - src: The source raster.
//
// Returns:
// - A new raster of the same size.
//
// @example
// neg, err := Negative(src)
func Negative(src *Raster) (*Raster, error) {
	if err := validate("negative", src, 0, 0); err != nil {
		return nil, err
	}
	return mapPixels(src, func(p Pixel) Pixel {
		return RGB(255-int(p.R), 255-int(p.G), 255-int(p.B))
	}), nil
}

// IsRed reports whether p counts as red: R above redFloor while both G and B
// stay below otherCeiling.
func IsRed(p Pixel, redFloor, otherCeiling int) bool {
	return int(p.R) > redFloor && int(p.G) < otherCeiling && int(p.B) < otherCeiling
}

// LeaveColor converts every non-red pixel to gray using the plain integer
// mean of its channels, floor((R+G+B)/3). Red pixels, as defined by IsRed,
// are copied unchanged.
//
// Arguments:
// - src: The source raster.
// - redFloor: Red must be strictly greater than this value.
// - otherCeiling: Green and blue must be strictly less than this value.
//
// Returns:
// - A new raster of the same size.
//
// @example
// out, err := LeaveColor(src, DefaultRedFloor, DefaultOtherCeiling)
func LeaveColor(src *Raster, redFloor, otherCeiling int) (*Raster, error) {
	if err := validate("leave color", src, 0, 0); err != nil {
		return nil, err
	}
	return mapPixels(src, func(p Pixel) Pixel {
		if IsRed(p, redFloor, otherCeiling) {
			return p
		}
		return Gray(p.Sum() / 3)
	}), nil
}

// BlackWhite thresholds the channel sum: pixels with R+G+B strictly greater
// than threshold become black, all others white. A sum equal to the threshold
// is white.
//
// Arguments:
// - src: The source raster.
// - threshold: The channel-sum threshold, DefaultBlackWhiteThreshold by default.
//
// Returns:
// - A new raster containing only Black and White pixels.
//
// @example
// bw, err := BlackWhite(src, DefaultBlackWhiteThreshold)
func BlackWhite(src *Raster, threshold int) (*Raster, error) {
	if err := validate("black & white", src, 0, 0); err != nil {
		return nil, err
	}
	return mapPixels(src, func(p Pixel) Pixel {
		if p.Sum() > threshold {
			return Black
		}
		return White
	}), nil
}
