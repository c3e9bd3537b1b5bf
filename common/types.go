// package common contains common types that are used throughout this viewer. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Material holds the coefficients of a Blinn-Phong lighting response for one
// kind of surface. Materials are registered once during scene setup and looked
// up by tag each draw; they are never mutated after registration.
type Material struct {
	// Tag is the short human-readable key the material is resolved by.
	Tag string

	// AmbientColor is the RGB ambient reflectance.
	AmbientColor [3]float32

	// AmbientStrength scales the ambient contribution.
	AmbientStrength float32

	// DiffuseColor is the RGB diffuse reflectance.
	DiffuseColor [3]float32

	// SpecularColor is the RGB specular reflectance.
	SpecularColor [3]float32

	// Shininess is the specular exponent. Higher values produce tighter highlights.
	Shininess float32
}

// LightSource holds the parameters of one analytic light. The scene supports
// up to four light sources, written once at setup into the shader's
// lightSources[i] uniform block.
type LightSource struct {
	// Position is the world-space position of the light.
	Position [3]float32

	// AmbientColor is the RGB ambient contribution of this light.
	AmbientColor [3]float32

	// DiffuseColor is the RGB diffuse contribution of this light.
	DiffuseColor [3]float32

	// SpecularColor is the RGB specular contribution of this light.
	SpecularColor [3]float32

	// FocalStrength controls the spread of the specular highlight.
	FocalStrength float32

	// SpecularIntensity scales the specular contribution.
	SpecularIntensity float32
}

// DecodedImage holds raw pixel data produced by DecodeImageFile, pending GPU upload.
type DecodedImage struct {
	// Pixels is the tightly packed pixel data, Channels bytes per pixel, row-major
	// starting at the bottom row when decoded with vertical flip.
	Pixels []byte

	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Channels is the number of color channels per pixel: 3 for RGB, 4 for RGBA.
	// Other channel counts are reported as-is so callers can produce a precise
	// diagnostic before rejecting the image.
	Channels int
}
