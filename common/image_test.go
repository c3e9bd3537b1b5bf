package common

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTo(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f))
	return path
}

func TestDecodeImageFileJPEGHasThreeChannels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	path := encodeTo(t, "opaque.jpg", func(f *os.File) error {
		return jpeg.Encode(f, img, nil)
	})

	decoded, err := DecodeImageFile(path, false)
	require.NoError(t, err)

	assert.Equal(t, 8, decoded.Width)
	assert.Equal(t, 4, decoded.Height)
	assert.Equal(t, 3, decoded.Channels)
	assert.Len(t, decoded.Pixels, 8*4*3)
}

func TestDecodeImageFilePNGWithAlphaHasFourChannels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 128})
	path := encodeTo(t, "alpha.png", func(f *os.File) error {
		return png.Encode(f, img)
	})

	decoded, err := DecodeImageFile(path, false)
	require.NoError(t, err)

	assert.Equal(t, 4, decoded.Channels)
	assert.Len(t, decoded.Pixels, 2*2*4)
}

func TestDecodeImageFileGrayPNGHasOneChannel(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	path := encodeTo(t, "gray.png", func(f *os.File) error {
		return png.Encode(f, img)
	})

	decoded, err := DecodeImageFile(path, false)
	require.NoError(t, err)

	assert.Equal(t, 1, decoded.Channels)
	assert.Len(t, decoded.Pixels, 3*3)
}

func TestDecodeImageFileFlipReordersRows(t *testing.T) {
	// Top row red, bottom row blue.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	path := encodeTo(t, "rows.png", func(f *os.File) error {
		return png.Encode(f, img)
	})

	straight, err := DecodeImageFile(path, false)
	require.NoError(t, err)
	require.Equal(t, 4, straight.Channels)
	assert.Equal(t, byte(255), straight.Pixels[0], "row 0 should be red unflipped")

	flipped, err := DecodeImageFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, byte(255), flipped.Pixels[2], "row 0 should be blue flipped")
	assert.Equal(t, byte(255), flipped.Pixels[4], "row 1 should be red flipped")
}

func TestDecodeImageFileMissingFile(t *testing.T) {
	_, err := DecodeImageFile(filepath.Join(t.TempDir(), "missing.png"), false)
	assert.Error(t, err)
}
