// Package images - provides the raster transform engine: pure, allocation-per-call
// pixel and geometric transforms over a dense RGB grid.
package images

import (
	"runtime"
	"sync"
)

// Clamp restricts a value to the specified range [min, max].
//
// Arguments:
// - value: The value to Clamp.
// - min: Minimum allowed value.
// - max: Maximum allowed value.
//
// Returns:
// - The clamped value within [min, max].
//
// @example
// clamped := Clamp(300, 0, 255) // Returns 255
// clamped := Clamp(-10, 0, 255) // Returns 0
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampChannel clamps an intermediate channel value into [0, 255].
//
// Every channel written by a transform passes through here, so no transform
// can emit an out-of-range value even if its arithmetic could overflow.
func ClampChannel(value int) uint8 {
	return uint8(Clamp(value, 0, 255))
}

// absDiff returns |a - b| for two channel values.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Parallel executes a function in Parallel across multiple goroutines.
// Each index in [0, dataSize) is handed to exactly one partition, so callers
// that write only output rows in their partition and read only the source
// never race.
//
// Arguments:
// - dataSize: The size of the data to process.
// - fn: Function to execute for each partition (receives start and end indices).
//
// Returns:
// - None.
//
// @example
//
//	Parallel(height, func(start, end int) {
//	    for y := start; y < end; y++ {
//	        // Process row y
//	    }
//	})
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	// Determine number of goroutines to use.
	numGoroutines := runtime.NumCPU()

	// Small grids are processed serially.
	if dataSize < numGoroutines*2 {
		fn(0, dataSize)
		return
	}

	// Calculate partition size for each goroutine.
	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize

		// Last partition gets any remaining data.
		if i == numGoroutines-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}

	wg.Wait()
}

// mapPixels allocates a raster of the same size as src and fills it with
// fn applied to every source pixel.
func mapPixels(src *Raster, fn func(Pixel) Pixel) *Raster {
	dst := newRaster(src.Width, src.Height)
	Parallel(src.Height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			row := y * src.Width
			for x := 0; x < src.Width; x++ {
				dst.Pix[row+x] = fn(src.Pix[row+x])
			}
		}
	})
	return dst
}

// remap allocates a width x height raster where every output pixel (x, y) is
// read from the source coordinate returned by from. Each output coordinate is
// written exactly once.
func remap(src *Raster, width, height int, from func(x, y int) (int, int)) *Raster {
	dst := newRaster(width, height)
	Parallel(height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < width; x++ {
				sx, sy := from(x, y)
				dst.Pix[y*width+x] = src.At(sx, sy)
			}
		}
	})
	return dst
}
