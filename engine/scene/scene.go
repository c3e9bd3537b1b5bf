package scene

import (
	"log"

	"github.com/Carmen-Shannon/tableau-go/common"
	"github.com/Carmen-Shannon/tableau-go/engine/mesh"
	"github.com/Carmen-Shannon/tableau-go/engine/shader"
)

// manager is the implementation of the Manager interface.
type manager struct {
	shader shader.Shader
	meshes mesh.Library

	textures  TextureRegistry
	materials MaterialRegistry
	lights    LightSet

	textureDir string
	logger     *log.Logger
}

// Manager owns the scene-authoring state of the tableau viewer: the texture
// registry, the material registry, the light set, and the fixed per-frame draw
// script. It is the sole writer of the scene shader's object-level uniforms
// (model, objectColor, objectTexture, bUseTexture, bUseLighting, UVscale,
// material.*, lightSources[i].*).
//
// The shader program, mesh library, and window/context are collaborators the
// manager uses but does not own; only the registries and light set are
// destroyed by Destroy. A nil shader is tolerated: every uniform-writing
// operation becomes a no-op, so setup-order mistakes show up as missing
// visuals rather than crashes.
//
// All operations must run on the thread that owns the GL context. There is no
// internal locking; the scene is single-threaded by design.
type Manager interface {
	// PrepareScene performs the one-shot scene setup: loads and binds the
	// tableau's textures, registers its materials, configures its light
	// sources, and generates each required primitive exactly once. Call after
	// the shader program is available and before the first RenderScene.
	PrepareScene()

	// RenderScene walks the fixed draw script once, issuing every draw of the
	// tableau in order. Call once per frame.
	RenderScene()

	// SetTransformations composes the model matrix M = T · Rx · Ry · Rz · S
	// from the given components and writes it to the model uniform. Scale is
	// applied first in object space, then the Z, Y, and X rotations with X
	// outermost, then the translation.
	//
	// Parameters:
	//   - scale: non-uniform scale along each axis
	//   - rxDeg, ryDeg, rzDeg: rotation about each world axis in degrees
	//   - position: world-space translation
	SetTransformations(scale [3]float32, rxDeg, ryDeg, rzDeg float32, position [3]float32)

	// SetShaderColor selects the solid-color path for the next draw: clears
	// bUseTexture and writes objectColor.
	//
	// Parameters:
	//   - r, g, b, a: the color components
	SetShaderColor(r, g, b, a float32)

	// SetShaderTexture selects the textured path for the next draw: sets
	// bUseTexture and writes the tag's resolved texture unit to the
	// objectTexture sampler. An unknown tag resolves to -1, which is written
	// as-is and samples unit 0 in practice, never fatal.
	//
	// Parameters:
	//   - tag: the texture tag to resolve
	SetShaderTexture(tag string)

	// SetTextureUVScale writes the UVscale uniform, multiplied into the
	// interpolated UVs in the fragment stage.
	//
	// Parameters:
	//   - u, v: the UV scale factors
	SetTextureUVScale(u, v float32)

	// SetShaderMaterial resolves the tag in the material registry and, on a
	// hit, writes the five material uniforms. On a miss, or when the registry
	// is empty, no uniforms are touched.
	//
	// Parameters:
	//   - tag: the material tag to resolve
	SetShaderMaterial(tag string)

	// SetLightSource stores the light in the light set and writes its six
	// uniforms under lightSources[index]. Indices outside [0, MaxLightSources)
	// are ignored.
	//
	// Parameters:
	//   - index: the light slot, 0..3
	//   - src: the light parameters
	SetLightSource(index int, src common.LightSource)

	// Textures returns the texture registry.
	//
	// Returns:
	//   - TextureRegistry: the scene's texture registry
	Textures() TextureRegistry

	// Materials returns the material registry.
	//
	// Returns:
	//   - MaterialRegistry: the scene's material registry
	Materials() MaterialRegistry

	// Lights returns the scene's light set.
	//
	// Returns:
	//   - *LightSet: the light set
	Lights() *LightSet

	// Destroy releases the GPU resources the manager owns, namely the
	// registered textures. The shader program and mesh library are shared
	// collaborators and are left alone.
	Destroy()
}

var _ Manager = &manager{}

// NewManager creates a scene Manager wired to the given shader program and
// mesh library. The mesh library is required and NewManager panics if it is
// nil; the shader may be nil, in which case all uniform writes are no-ops.
//
// Parameters:
//   - s: the scene shader program (may be nil)
//   - meshes: the primitive mesh library (must not be nil)
//   - options: functional options to further configure the manager
//
// Returns:
//   - Manager: the newly created scene manager
func NewManager(s shader.Shader, meshes mesh.Library, options ...ManagerOption) Manager {
	if meshes == nil {
		panic("scene: NewManager requires a non-nil mesh Library")
	}

	m := &manager{
		shader:    s,
		meshes:    meshes,
		materials: NewMaterialRegistry(),
	}

	for _, option := range options {
		option(m)
	}

	m.textureDir = common.Coalesce(m.textureDir, "textures")
	if m.logger == nil {
		m.logger = log.Default()
	}
	if m.textures == nil {
		m.textures = NewTextureRegistry(newGLTextureBackend(), m.logger)
	}

	return m
}

func (m *manager) Textures() TextureRegistry {
	return m.textures
}

func (m *manager) Materials() MaterialRegistry {
	return m.materials
}

func (m *manager) Lights() *LightSet {
	return &m.lights
}

func (m *manager) Destroy() {
	m.textures.Destroy()
}
