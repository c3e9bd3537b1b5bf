package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/tableau-go/common"
)

func TestMaterialRegistryResolve(t *testing.T) {
	registry := NewMaterialRegistry()
	registry.Register(common.Material{Tag: "fur", AmbientStrength: 0.3, Shininess: 0.2})
	registry.Register(common.Material{Tag: "wall", AmbientStrength: 0.1, Shininess: 0.1})

	m, found := registry.Resolve("wall")
	assert.True(t, found)
	assert.Equal(t, "wall", m.Tag)
	assert.InDelta(t, 0.1, m.AmbientStrength, 1e-6)

	_, found = registry.Resolve("chrome")
	assert.False(t, found)

	assert.Equal(t, 2, registry.Count())
}

func TestMaterialRegistryResolveOnEmptyRegistry(t *testing.T) {
	registry := NewMaterialRegistry()

	m, found := registry.Resolve("fur")
	assert.False(t, found)
	assert.Equal(t, common.Material{}, m)
}

func TestMaterialRegistryClampsOnRegister(t *testing.T) {
	registry := NewMaterialRegistry()
	registry.Register(common.Material{
		Tag:           "hot",
		AmbientColor:  [3]float32{-0.5, 1.5, 0.5},
		DiffuseColor:  [3]float32{2, 2, 2},
		SpecularColor: [3]float32{-1, -1, -1},
		Shininess:     -4,
	})

	m, found := registry.Resolve("hot")
	assert.True(t, found)
	assert.Equal(t, [3]float32{0, 1, 0.5}, m.AmbientColor)
	assert.Equal(t, [3]float32{1, 1, 1}, m.DiffuseColor)
	assert.Equal(t, [3]float32{0, 0, 0}, m.SpecularColor)
	assert.Equal(t, float32(0), m.Shininess)
}

func TestMaterialRegistryResolvesFirstOfDuplicateTags(t *testing.T) {
	registry := NewMaterialRegistry()
	registry.Register(common.Material{Tag: "fur", Shininess: 1})
	registry.Register(common.Material{Tag: "fur", Shininess: 2})

	m, found := registry.Resolve("fur")
	assert.True(t, found)
	assert.Equal(t, float32(1), m.Shininess)
}
