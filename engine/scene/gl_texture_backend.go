package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Carmen-Shannon/tableau-go/common"
)

// glTextureBackend is the OpenGL implementation of TextureBackend.
// All methods must run on the thread that owns the GL context.
type glTextureBackend struct{}

var _ TextureBackend = glTextureBackend{}

// newGLTextureBackend returns the OpenGL texture backend.
func newGLTextureBackend() TextureBackend {
	return glTextureBackend{}
}

func (glTextureBackend) CreateTexture(img *common.DecodedImage) (uint32, error) {
	var internalFormat int32
	var pixelFormat uint32
	switch img.Channels {
	case 3:
		internalFormat = gl.RGB8
		pixelFormat = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		pixelFormat = gl.RGBA
	default:
		return 0, fmt.Errorf("unsupported channel count %d", img.Channels)
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows of tightly packed RGB data are not 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat,
		int32(img.Width), int32(img.Height), 0,
		pixelFormat, gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return handle, nil
}

func (glTextureBackend) BindTextureUnit(unit int, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (glTextureBackend) DeleteTexture(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
