package common

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// DecodeImageFile reads and decodes the image at path into tightly packed pixel
// data ready for GPU upload. Supports JPEG and PNG.
//
// When flipVertically is true the rows are reordered so row 0 of the result is
// the bottom row of the image, matching the texture-space convention where V=0
// is the bottom edge.
//
// The channel count reflects the source color model: 1 for grayscale, 3 for
// opaque color (JPEG), 4 for color with alpha (PNG with transparency). Callers
// that only support a subset are expected to inspect Channels and reject the
// rest.
//
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - path: the image file to read
//   - flipVertically: reorder rows bottom-up
//
// Returns:
//   - *DecodedImage: decoded pixel data, or nil on error
//   - error: error if the file cannot be read or decoded
func DecodeImageFile(path string, flipVertically bool) (*DecodedImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file %s: %w", path, err)
	}

	return packImage(img, flipVertically), nil
}

// packImage converts a decoded image.Image into tightly packed bytes with a
// channel count derived from the source color model.
func packImage(img image.Image, flipVertically bool) *DecodedImage {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	channels := channelCount(img)

	pixels := make([]byte, width*height*channels)
	for row := 0; row < height; row++ {
		srcY := bounds.Min.Y + row
		dstRow := row
		if flipVertically {
			dstRow = height - 1 - row
		}
		for col := 0; col < width; col++ {
			r, g, b, a := img.At(bounds.Min.X+col, srcY).RGBA()
			off := (dstRow*width + col) * channels
			switch channels {
			case 1:
				// Rec. 601 luma, same weighting as the image/color gray model.
				pixels[off] = byte((19595*r + 38470*g + 7471*b + 1<<15) >> 24)
			case 3:
				pixels[off] = byte(r >> 8)
				pixels[off+1] = byte(g >> 8)
				pixels[off+2] = byte(b >> 8)
			default:
				pixels[off] = byte(r >> 8)
				pixels[off+1] = byte(g >> 8)
				pixels[off+2] = byte(b >> 8)
				pixels[off+3] = byte(a >> 8)
			}
		}
	}

	return &DecodedImage{
		Pixels:   pixels,
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// channelCount maps the concrete image type to the channel count of the packed
// output. JPEG decodes to YCbCr (opaque color, 3 channels); PNG with an alpha
// channel decodes to NRGBA (4 channels).
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	default:
		return 4
	}
}
