package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/rasterfx/images"
)

// getTestRaster returns a small raster with a red/green/blue gradient.
func getTestRaster(t *testing.T) *images.Raster {
	t.Helper()
	r, err := images.NewRaster(12, 8)
	require.NoError(t, err)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			r.Set(x, y, images.RGB(x*20, y*30, 255-x*10))
		}
	}
	return r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ImageFormat
		wantErr bool
	}{
		{in: "gif", want: FormatGIF},
		{in: ".GIF", want: FormatGIF},
		{in: "jpg", want: FormatJPEG},
		{in: "jpeg", want: FormatJPEG},
		{in: "png", want: FormatPNG},
		{in: ".webp", want: FormatWebP},
		{in: "bmp", want: FormatBMP},
		{in: "tif", want: FormatTIFF},
		{in: "tiff", want: FormatTIFF},
		{in: "psd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("dir/cat.Jpeg")
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, f)

	_, err = FormatFromPath("README")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	assert.True(t, IsSupported("a.png"))
	assert.False(t, IsSupported("a.txt"))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".jpg", FormatJPEG.Extension())
	assert.Equal(t, ".tif", FormatTIFF.Extension())
	assert.Equal(t, ".gif", FormatGIF.Extension())
	for _, f := range Formats() {
		back, err := ParseFormat(f.Extension())
		require.NoError(t, err)
		assert.Equal(t, f, back)
	}
}

func TestLosslessRoundTrip(t *testing.T) {
	src := getTestRaster(t)
	dir := t.TempDir()

	for _, f := range []ImageFormat{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(dir, "out"+f.Extension())
			require.NoError(t, Encode(path, src))

			back, err := Decode(path)
			require.NoError(t, err)
			assert.True(t, src.Equal(back), "%s should round trip exactly", f)
		})
	}
}

func TestGIFRoundTripBinary(t *testing.T) {
	// Black and white are both in the GIF encoder's palette, so a binary
	// raster survives quantization.
	src, err := images.NewRaster(6, 6)
	require.NoError(t, err)
	for i := range src.Pix {
		if i%3 == 0 {
			src.Pix[i] = images.White
		}
	}

	path := filepath.Join(t.TempDir(), "bw.gif")
	require.NoError(t, Encode(path, src))
	back, err := Decode(path)
	require.NoError(t, err)
	assert.True(t, src.Equal(back))
}

func TestLossyFormatsKeepDimensions(t *testing.T) {
	src := getTestRaster(t)

	for _, f := range []ImageFormat{FormatJPEG, FormatWebP} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeTo(&buf, f, src))

			back, err := DecodeBytes(buf.Bytes(), f)
			require.NoError(t, err)
			assert.Equal(t, src.Width, back.Width)
			assert.Equal(t, src.Height, back.Height)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Decode(filepath.Join(dir, "missing.gif"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Decode(filepath.Join(dir, "notes.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))
	_, err = Decode(bad)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = DecodeBytes(nil, FormatPNG)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeErrors(t *testing.T) {
	dir := t.TempDir()

	empty, err := images.NewRaster(0, 0)
	require.NoError(t, err)
	err = Encode(filepath.Join(dir, "empty.png"), empty)
	assert.ErrorIs(t, err, images.ErrInvalidDimensions)

	err = Encode(filepath.Join(dir, "out.xyz"), getTestRaster(t))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var buf bytes.Buffer
	assert.Error(t, EncodeTo(&buf, FormatPNG, nil))
}

func TestEncodeCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.png")
	require.NoError(t, Encode(path, getTestRaster(t)))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
