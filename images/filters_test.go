package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedFilter(t *testing.T) {
	src := randomRaster(t, 9, 6, 10)
	before := src.Clone()

	out, err := RedFilter(src)
	require.NoError(t, err)
	require.Equal(t, src.Width, out.Width)
	require.Equal(t, src.Height, out.Height)

	for i, p := range out.Pix {
		assert.Equal(t, src.Pix[i].R, p.R, "red is preserved")
		assert.Zero(t, p.G, "green is zeroed")
		assert.Zero(t, p.B, "blue is zeroed")
	}
	assert.True(t, before.Equal(src), "input must not be mutated")
}

func TestNegative(t *testing.T) {
	src, err := FromPixels([][]Pixel{{{R: 0, G: 128, B: 255}, {R: 10, G: 20, B: 30}}})
	require.NoError(t, err)

	out, err := Negative(src)
	require.NoError(t, err)
	assert.Equal(t, Pixel{R: 255, G: 127, B: 0}, out.At(0, 0))
	assert.Equal(t, Pixel{R: 245, G: 235, B: 225}, out.At(1, 0))
}

func TestNegativeInvolution(t *testing.T) {
	src := randomRaster(t, 13, 8, 11)
	once, err := Negative(src)
	require.NoError(t, err)
	twice, err := Negative(once)
	require.NoError(t, err)
	assert.True(t, src.Equal(twice))
}

func TestLeaveColor(t *testing.T) {
	tests := []struct {
		name string
		in   Pixel
		want Pixel
	}{
		{name: "red pixel kept", in: Pixel{R: 200, G: 10, B: 10}, want: Pixel{R: 200, G: 10, B: 10}},
		{name: "green pixel grayed", in: Pixel{R: 10, G: 200, B: 10}, want: Pixel{R: 73, G: 73, B: 73}},
		{name: "red at floor is not red", in: Pixel{R: 125, G: 0, B: 0}, want: Pixel{R: 41, G: 41, B: 41}},
		{name: "green at ceiling is not red", in: Pixel{R: 200, G: 125, B: 0}, want: Pixel{R: 108, G: 108, B: 108}},
		{name: "white grayed to white", in: White, want: White},
		{name: "floor average", in: Pixel{R: 1, G: 1, B: 0}, want: Pixel{R: 0, G: 0, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := uniformRaster(t, 1, 1, tt.in)
			out, err := LeaveColor(src, DefaultRedFloor, DefaultOtherCeiling)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.At(0, 0))
		})
	}
}

func TestLeaveColorCustomBounds(t *testing.T) {
	src := uniformRaster(t, 2, 2, Pixel{R: 100, G: 10, B: 10})

	out, err := LeaveColor(src, DefaultRedFloor, DefaultOtherCeiling)
	require.NoError(t, err)
	assert.Equal(t, Gray(40), out.At(1, 1))

	out, err = LeaveColor(src, 90, DefaultOtherCeiling)
	require.NoError(t, err)
	assert.Equal(t, Pixel{R: 100, G: 10, B: 10}, out.At(1, 1))
}

func TestBlackWhiteBoundary(t *testing.T) {
	src, err := FromPixels([][]Pixel{
		{{R: 200, G: 0, B: 0}, {R: 0, G: 200, B: 0}},
		{{R: 0, G: 0, B: 200}, {R: 60, G: 60, B: 60}},
	})
	require.NoError(t, err)

	out, err := BlackWhite(src, DefaultBlackWhiteThreshold)
	require.NoError(t, err)

	// Sums are 200, 200, 200 and 180: none is strictly greater than 200.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, White, out.At(x, y), "pixel (%d,%d)", x, y)
		}
	}

	above := uniformRaster(t, 1, 1, Pixel{R: 67, G: 67, B: 67})
	out, err = BlackWhite(above, DefaultBlackWhiteThreshold)
	require.NoError(t, err)
	assert.Equal(t, Black, out.At(0, 0), "sum 201 is above the threshold")
}

func TestBlackWhiteIsBinary(t *testing.T) {
	src := randomRaster(t, 32, 32, 12)
	out, err := BlackWhite(src, DefaultBlackWhiteThreshold)
	require.NoError(t, err)
	for _, p := range out.Pix {
		assert.True(t, p == Black || p == White, "unexpected pixel %v", p)
	}
}

func TestFiltersRejectNil(t *testing.T) {
	_, err := RedFilter(nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Negative(nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = LeaveColor(nil, DefaultRedFloor, DefaultOtherCeiling)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = BlackWhite(nil, DefaultBlackWhiteThreshold)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestFiltersOnEmptyRaster(t *testing.T) {
	empty, err := NewRaster(0, 0)
	require.NoError(t, err)

	for name, fn := range map[string]Transform{
		"red":      RedFilter,
		"negative": Negative,
	} {
		out, err := fn(empty)
		require.NoError(t, err, name)
		assert.True(t, out.Empty(), name)
	}
}
