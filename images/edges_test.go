package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartoonizeUniform(t *testing.T) {
	fill := Pixel{R: 90, G: 30, B: 200}
	src := uniformRaster(t, 6, 5, fill)

	out, err := Cartoonize(src, DefaultCartoonThreshold)
	require.NoError(t, err)

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			if x == 0 || y == 0 {
				assert.Equal(t, fill, out.At(x, y), "border (%d,%d) keeps the source value", x, y)
				continue
			}
			assert.Equal(t, White, out.At(x, y), "interior (%d,%d)", x, y)
		}
	}
}

func TestCartoonizeDiagonalEdge(t *testing.T) {
	// A bright pixel at (1,1) differs from its predecessor (0,0) and from its
	// successor's view at (2,2).
	src := uniformRaster(t, 3, 3, Black)
	src.Set(1, 1, Pixel{R: 51})

	out, err := Cartoonize(src, DefaultCartoonThreshold)
	require.NoError(t, err)
	assert.Equal(t, Black, out.At(1, 1), "diff 51 > 50 at (1,1)")
	assert.Equal(t, Black, out.At(2, 2), "diff 51 > 50 between (1,1) and (2,2)")
	assert.Equal(t, White, out.At(2, 1), "(1,0) vs (2,1) are both black")
	assert.Equal(t, White, out.At(1, 2), "(0,1) vs (1,2) are both black")
}

func TestCartoonizeThresholdIsStrict(t *testing.T) {
	src := uniformRaster(t, 2, 2, Black)
	src.Set(1, 1, Pixel{G: 50})

	out, err := Cartoonize(src, DefaultCartoonThreshold)
	require.NoError(t, err)
	assert.Equal(t, White, out.At(1, 1), "diff equal to the threshold is not an edge")

	out, err = Cartoonize(src, 49)
	require.NoError(t, err)
	assert.Equal(t, Black, out.At(1, 1))
}

func TestCartoonizeInputUntouched(t *testing.T) {
	src := randomRaster(t, 20, 15, 30)
	before := src.Clone()

	out, err := Cartoonize(src, DefaultCartoonThreshold)
	require.NoError(t, err)
	assert.True(t, before.Equal(src))

	for x := 0; x < src.Width; x++ {
		assert.Equal(t, src.At(x, 0), out.At(x, 0))
	}
	for y := 0; y < src.Height; y++ {
		assert.Equal(t, src.At(0, y), out.At(0, y))
	}
	for y := 1; y < out.Height; y++ {
		for x := 1; x < out.Width; x++ {
			p := out.At(x, y)
			assert.True(t, p == Black || p == White)
		}
	}
}

func TestCartoonizeRejectsThinRasters(t *testing.T) {
	for _, sz := range [][2]int{{0, 0}, {1, 5}, {5, 1}} {
		src, err := NewRaster(sz[0], sz[1])
		require.NoError(t, err)
		_, err = Cartoonize(src, DefaultCartoonThreshold)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", sz[0], sz[1])
	}
}

func TestEdgeBetween(t *testing.T) {
	assert.False(t, EdgeBetween(Pixel{R: 10}, Pixel{R: 60}, 50))
	assert.True(t, EdgeBetween(Pixel{B: 61}, Pixel{B: 10}, 50))
	assert.True(t, EdgeBetween(Pixel{G: 0}, Pixel{G: 255}, 50))
}
