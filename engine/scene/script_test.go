package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawObservation captures what was bound at the moment of one draw call: the
// primitive, the texture tag sampled (empty for the solid-color path), and the
// material whose uniforms were pushed since the previous draw (empty when the
// draw reuses whatever material state was already loaded).
type drawObservation struct {
	shape       string
	textureTag  string
	materialTag string
}

// newPreparedScene builds a manager on recording collaborators with all of the
// tableau's texture images present, and runs PrepareScene.
func newPreparedScene(t *testing.T) (Manager, *recordingShader, *recordingLibrary, *recordingBackend) {
	t.Helper()
	dir := t.TempDir()
	for _, f := range sceneTextures {
		writeTestJPEG(t, dir, f.Path, 2, 2)
	}

	sh := &recordingShader{}
	lib := newRecordingLibrary()
	backend := newRecordingBackend()
	registry := NewTextureRegistry(backend, quietLogger())
	mgr := NewManager(sh, lib,
		WithLogger(quietLogger()),
		WithTextureRegistry(registry),
		WithTextureDirectory(dir),
	)
	mgr.PrepareScene()
	return mgr, sh, lib, backend
}

func TestPrepareSceneLoadsEachPrimitiveOnce(t *testing.T) {
	_, _, lib, _ := newPreparedScene(t)

	shapes := []string{"plane", "box", "prism", "cylinder", "tapered cylinder", "cone", "sphere", "torus"}
	for _, shape := range shapes {
		assert.Equal(t, 1, lib.loads[shape], shape)
	}
}

func TestPrepareSceneRegistersTexturesInDocumentedOrder(t *testing.T) {
	mgr, _, _, backend := newPreparedScene(t)

	require.Equal(t, len(sceneTextures), mgr.Textures().Count())
	for i, f := range sceneTextures {
		assert.Equal(t, i, mgr.Textures().ResolveUnit(f.Tag), f.Tag)
	}

	// BindAll ran as part of setup: entry i on unit i.
	require.Len(t, backend.bound, len(sceneTextures))
	for i, b := range backend.bound {
		assert.Equal(t, i, b.unit)
	}
}

func TestPrepareSceneConfiguresMaterialsAndLights(t *testing.T) {
	mgr, sh, _, _ := newPreparedScene(t)

	fur, found := mgr.Materials().Resolve("fur")
	require.True(t, found)
	assert.InDelta(t, 0.3, fur.AmbientStrength, 1e-6)

	wall, found := mgr.Materials().Resolve("wall")
	require.True(t, found)
	assert.InDelta(t, 0.1, wall.AmbientStrength, 1e-6)

	assert.Equal(t, 2, mgr.Lights().Count())
	light0, _ := mgr.Lights().Get(0)
	assert.Equal(t, [3]float32{0, 3, 20}, light0.Position)
	assert.Equal(t, float32(12), light0.FocalStrength)
	light1, _ := mgr.Lights().Get(1)
	assert.Equal(t, [3]float32{-3, 4, 6}, light1.Position)
	assert.Equal(t, float32(32), light1.FocalStrength)

	lighting, ok := sh.last(uniformUseLighting)
	require.True(t, ok)
	assert.Equal(t, int32(1), lighting)
}

func TestRenderSceneDrawScript(t *testing.T) {
	mgr, sh, lib, _ := newPreparedScene(t)

	unitTags := map[int32]string{}
	for i, f := range sceneTextures {
		unitTags[int32(i)] = f.Tag
	}

	var got []drawObservation
	mark := len(sh.writes)
	lib.onDraw = func(shape string) {
		obs := drawObservation{shape: shape}
		if flag, ok := sh.last(uniformUseTexture); ok && flag.(int32) == 1 {
			unit, _ := sh.last(uniformTexture)
			obs.textureTag = unitTags[unit.(int32)]
		}
		for _, w := range sh.writes[mark:] {
			if w.name != "material.ambientStrength" {
				continue
			}
			switch w.value.(float32) {
			case 0.3:
				obs.materialTag = "fur"
			case 0.1:
				obs.materialTag = "wall"
			}
		}
		mark = len(sh.writes)
		got = append(got, obs)
	}

	mgr.RenderScene()

	expected := []drawObservation{
		{"cylinder", "glass", "wall"},
		{"plane", "wall", "wall"},
		{"plane", "floor", "wall"},
		{"cylinder", "fur", "fur"},
		{"tapered cylinder", "fur", "fur"},
		{"sphere", "fur", "fur"},
		{"cone", "fur", "fur"},
		{"sphere", "fur", "fur"},
		{"prism", "fur", "fur"},
		{"prism", "fur", "fur"},
		{"prism", "fur", "fur"},
		{"sphere", "black", "fur"},
		{"sphere", "black", "fur"},
		{"box", "keyboard", ""},
		{"box", "screen", ""},
		{"box", "book", ""},
		{"box", "pages", ""},
		{"torus", "black", ""},
		{"tapered cylinder", "headphones", ""},
		{"tapered cylinder", "headphones", ""},
	}
	assert.Equal(t, expected, got)
}

func TestRenderSceneWritesModelAndUVBeforeEveryDraw(t *testing.T) {
	mgr, sh, lib, _ := newPreparedScene(t)

	mark := len(sh.writes)
	lib.onDraw = func(shape string) {
		var sawModel, sawUV bool
		for _, w := range sh.writes[mark:] {
			switch w.name {
			case uniformModel:
				sawModel = true
			case uniformUVScale:
				sawUV = true
			}
		}
		assert.True(t, sawModel, "draw of %s without a model write", shape)
		assert.True(t, sawUV, "draw of %s without a UV scale write", shape)
		mark = len(sh.writes)
	}

	mgr.RenderScene()
	assert.Len(t, lib.draws, 20)
}

func TestManagerDestroyReleasesTextures(t *testing.T) {
	mgr, _, _, backend := newPreparedScene(t)

	mgr.Destroy()

	assert.ElementsMatch(t, backend.created, backend.deleted)
	assert.Equal(t, 0, mgr.Textures().Count())
}
