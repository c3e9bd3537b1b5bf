package scene

import "github.com/Carmen-Shannon/tableau-go/common"

// materialRegistry is the implementation of the MaterialRegistry interface.
type materialRegistry struct {
	materials []common.Material
}

// MaterialRegistry holds the scene's named material property sets. Materials
// are registered once at setup and resolved by tag each draw; there is no
// update or removal.
type MaterialRegistry interface {
	// Register appends the material. Color components are clamped to [0, 1]
	// and shininess is floored at 0 before storing.
	//
	// Parameters:
	//   - m: the material to register
	Register(m common.Material)

	// Resolve linearly searches for the material registered under tag.
	//
	// Parameters:
	//   - tag: the material tag to look up
	//
	// Returns:
	//   - common.Material: the material, zero-valued on a miss
	//   - bool: true if the tag was found
	Resolve(tag string) (common.Material, bool)

	// Count returns the number of registered materials.
	//
	// Returns:
	//   - int: the material count
	Count() int
}

var _ MaterialRegistry = &materialRegistry{}

// NewMaterialRegistry creates an empty material registry.
//
// Returns:
//   - MaterialRegistry: the newly created registry
func NewMaterialRegistry() MaterialRegistry {
	return &materialRegistry{}
}

func (r *materialRegistry) Register(m common.Material) {
	m.AmbientColor = clampColor(m.AmbientColor)
	m.DiffuseColor = clampColor(m.DiffuseColor)
	m.SpecularColor = clampColor(m.SpecularColor)
	if m.Shininess < 0 {
		m.Shininess = 0
	}
	r.materials = append(r.materials, m)
}

func (r *materialRegistry) Resolve(tag string) (common.Material, bool) {
	if len(r.materials) == 0 {
		return common.Material{}, false
	}
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return common.Material{}, false
}

func (r *materialRegistry) Count() int {
	return len(r.materials)
}

func clampColor(c [3]float32) [3]float32 {
	for i, v := range c {
		if v < 0 {
			c[i] = 0
		} else if v > 1 {
			c[i] = 1
		}
	}
	return c
}
