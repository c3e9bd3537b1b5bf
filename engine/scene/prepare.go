package scene

import (
	"path/filepath"

	"github.com/Carmen-Shannon/tableau-go/common"
)

// sceneTextures lists the tableau's texture images in registration order. The
// order is load-bearing: after BindAll, each tag samples from the unit equal
// to its position here.
var sceneTextures = []TextureFile{
	{Path: "bluefur.jpg", Tag: "fur"},
	{Path: "blackplastic.jpg", Tag: "black"},
	{Path: "glass.jpg", Tag: "glass"},
	{Path: "drywall.jpg", Tag: "wall"},
	{Path: "keyboard.jpg", Tag: "keyboard"},
	{Path: "screen.jpg", Tag: "screen"},
	{Path: "book.jpg", Tag: "book"},
	{Path: "pages.jpg", Tag: "pages"},
	{Path: "headphones.jpg", Tag: "headphones"},
	{Path: "room.jpg", Tag: "floor"},
}

func (m *manager) PrepareScene() {
	m.loadSceneTextures()
	m.defineObjectMaterials()
	m.setupSceneLights()

	// One resident copy of each primitive serves every draw in the script.
	m.meshes.LoadPlaneMesh()
	m.meshes.LoadBoxMesh()
	m.meshes.LoadPrismMesh()
	m.meshes.LoadCylinderMesh()
	m.meshes.LoadTaperedCylinderMesh()
	m.meshes.LoadConeMesh()
	m.meshes.LoadSphereMesh()
	m.meshes.LoadTorusMesh()
}

// loadSceneTextures loads the tableau's images and binds them to their units.
func (m *manager) loadSceneTextures() {
	files := make([]TextureFile, len(sceneTextures))
	for i, f := range sceneTextures {
		files[i] = TextureFile{Path: filepath.Join(m.textureDir, f.Path), Tag: f.Tag}
	}
	m.textures.LoadAll(files)
	m.textures.BindAll()
}

// defineObjectMaterials registers the tableau's material set.
func (m *manager) defineObjectMaterials() {
	m.materials.Register(common.Material{
		Tag:             "fur",
		AmbientColor:    [3]float32{0.1, 0.1, 0.1},
		AmbientStrength: 0.3,
		DiffuseColor:    [3]float32{0.1, 0.1, 0.1},
		SpecularColor:   [3]float32{0.1, 0.1, 0.1},
		Shininess:       0.2,
	})

	m.materials.Register(common.Material{
		Tag:             "wall",
		AmbientColor:    [3]float32{0.01, 0.01, 0.01},
		AmbientStrength: 0.1,
		DiffuseColor:    [3]float32{0, 0, 0},
		SpecularColor:   [3]float32{0, 0, 0},
		Shininess:       0.1,
	})
}

// setupSceneLights configures the two scene lights and enables the lighting
// path in the fragment stage.
func (m *manager) setupSceneLights() {
	if m.shader != nil {
		m.shader.SetIntValue(uniformUseLighting, 1)
	}

	m.SetLightSource(0, common.LightSource{
		Position:          [3]float32{0, 3, 20},
		AmbientColor:      [3]float32{0.1, 0.1, 0.1},
		DiffuseColor:      [3]float32{0.2, 0.2, 0.2},
		SpecularColor:     [3]float32{0, 0, 0},
		FocalStrength:     12,
		SpecularIntensity: 0.2,
	})

	m.SetLightSource(1, common.LightSource{
		Position:          [3]float32{-3, 4, 6},
		AmbientColor:      [3]float32{0.01, 0.01, 0.01},
		DiffuseColor:      [3]float32{0.5, 0.5, 0.5},
		SpecularColor:     [3]float32{0.2, 0.2, 0.2},
		FocalStrength:     32,
		SpecularIntensity: 0.2,
	})
}
