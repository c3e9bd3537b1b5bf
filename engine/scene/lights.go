package scene

import "github.com/Carmen-Shannon/tableau-go/common"

// MaxLightSources is the light table capacity, matching the lightSources
// array length in the scene shader.
const MaxLightSources = 4

// LightSet is the scene's fixed-size table of analytic light sources. Slots
// are written once at setup through Manager.SetLightSource; the table exists
// so the configured lights remain observable after their uniforms are pushed.
type LightSet struct {
	sources [MaxLightSources]common.LightSource
	set     [MaxLightSources]bool
}

// Set stores the light in the given slot. Out-of-range indices are ignored.
//
// Parameters:
//   - index: the light slot, 0..3
//   - src: the light parameters
//
// Returns:
//   - bool: true if the slot was written
func (ls *LightSet) Set(index int, src common.LightSource) bool {
	if index < 0 || index >= MaxLightSources {
		return false
	}
	ls.sources[index] = src
	ls.set[index] = true
	return true
}

// Get returns the light in the given slot.
//
// Parameters:
//   - index: the light slot, 0..3
//
// Returns:
//   - common.LightSource: the light parameters, zero-valued if never set
//   - bool: true if the slot has been written
func (ls *LightSet) Get(index int) (common.LightSource, bool) {
	if index < 0 || index >= MaxLightSources {
		return common.LightSource{}, false
	}
	return ls.sources[index], ls.set[index]
}

// Count returns the number of slots that have been written.
//
// Returns:
//   - int: the configured light count
func (ls *LightSet) Count() int {
	n := 0
	for _, s := range ls.set {
		if s {
			n++
		}
	}
	return n
}
