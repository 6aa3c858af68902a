package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogMenuOrder(t *testing.T) {
	cat, err := NewCatalog(DefaultOptions())
	require.NoError(t, err)

	var names []string
	for _, e := range cat.Menu() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{
		"Red filter", "Flip horizontal", "Flip vertical", "Rotate clockwise", "Cartoonize",
		"Scale up", "Scale down", "Leave color", "Black & white",
	}, names)

	assert.Len(t, cat.Entries(), 10, "negative is reachable by slug only")
}

func TestCatalogSelect(t *testing.T) {
	cat, err := NewCatalog(DefaultOptions())
	require.NoError(t, err)

	e, err := cat.Select(1)
	require.NoError(t, err)
	assert.Equal(t, SlugRedFilter, e.Slug)

	e, err = cat.Select(9)
	require.NoError(t, err)
	assert.Equal(t, SlugBlackWhite, e.Slug)

	for _, n := range []int{0, -1, 10} {
		_, err = cat.Select(n)
		assert.ErrorIs(t, err, ErrSelectionOutOfRange, "selection %d", n)
	}
}

func TestCatalogLookup(t *testing.T) {
	cat, err := NewCatalog(DefaultOptions())
	require.NoError(t, err)

	e, err := cat.Lookup("  Negative ")
	require.NoError(t, err)
	assert.Equal(t, "Negative", e.Name)

	_, err = cat.Lookup("sepia")
	assert.ErrorIs(t, err, ErrUnknownTransform)
}

func TestCatalogBindsOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.BlackWhiteThreshold = 100
	cat, err := NewCatalog(opts)
	require.NoError(t, err)

	e, err := cat.Lookup(SlugBlackWhite)
	require.NoError(t, err)

	src := uniformRaster(t, 1, 1, Pixel{R: 150})
	out, err := e.Apply(src)
	require.NoError(t, err)
	assert.Equal(t, Black, out.At(0, 0), "150 > 100 with the configured threshold")
}

func TestCatalogRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.CartoonThreshold = 300
	_, err := NewCatalog(opts)
	assert.Error(t, err)
}

func TestResolveChain(t *testing.T) {
	cat, err := NewCatalog(DefaultOptions())
	require.NoError(t, err)

	src := randomRaster(t, 6, 4, 40)

	fn, err := cat.Resolve([]string{SlugRotateClockwise, SlugRotateClockwise, SlugRotateClockwise, SlugRotateClockwise})
	require.NoError(t, err)
	out, err := fn(src)
	require.NoError(t, err)
	assert.True(t, src.Equal(out))

	fn, err = cat.Resolve([]string{SlugScaleUp, SlugScaleDown, SlugNegative})
	require.NoError(t, err)
	out, err = fn(src)
	require.NoError(t, err)
	neg, err := Negative(src)
	require.NoError(t, err)
	assert.True(t, neg.Equal(out))

	_, err = cat.Resolve([]string{SlugScaleUp, "blur"})
	assert.ErrorIs(t, err, ErrUnknownTransform)

	_, err = cat.Resolve(nil)
	assert.ErrorIs(t, err, ErrUnknownTransform)
}

func TestChainStopsOnError(t *testing.T) {
	src := uniformRaster(t, 3, 3, White)
	fn := Chain(ScaleDown, ScaleDown)
	_, err := fn(src)
	assert.ErrorIs(t, err, ErrInvalidDimensions, "second scale down sees a 1x1 raster")

	empty := Chain()
	out, err := empty(src)
	require.NoError(t, err)
	assert.True(t, src.Equal(out))
	assert.NotSame(t, src, out)
}

func TestCatalogEveryEntryIsPure(t *testing.T) {
	cat, err := NewCatalog(DefaultOptions())
	require.NoError(t, err)

	src := randomRaster(t, 8, 6, 41)
	before := src.Clone()
	for _, e := range cat.Entries() {
		out, err := e.Apply(src)
		require.NoError(t, err, e.Slug)
		require.NotNil(t, out, e.Slug)
		assert.True(t, before.Equal(src), "%s mutated its input", e.Slug)
	}
}
