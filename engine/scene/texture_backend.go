package scene

import "github.com/Carmen-Shannon/tableau-go/common"

// TextureBackend is the narrow GPU surface the texture registry allocates
// through. The production implementation talks to OpenGL; tests substitute a
// recording fake.
type TextureBackend interface {
	// CreateTexture uploads the decoded image as a new mipmapped 2D texture
	// with repeat wrapping and bilinear filtering, and leaves no texture bound
	// on return. The image must have 3 or 4 channels.
	//
	// Parameters:
	//   - img: the decoded pixel data to upload
	//
	// Returns:
	//   - uint32: the new texture handle
	//   - error: error if the image cannot be uploaded
	CreateTexture(img *common.DecodedImage) (uint32, error)

	// BindTextureUnit activates the given texture unit and binds the handle
	// to it.
	//
	// Parameters:
	//   - unit: the texture unit index
	//   - handle: the texture handle to bind
	BindTextureUnit(unit int, handle uint32)

	// DeleteTexture releases the texture handle.
	//
	// Parameters:
	//   - handle: the texture handle to delete
	DeleteTexture(handle uint32)
}
