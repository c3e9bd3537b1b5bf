package scene

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureRegistryAssignsUnitsInLoadOrder(t *testing.T) {
	dir := t.TempDir()
	backend := newRecordingBackend()
	registry := NewTextureRegistry(backend, quietLogger())

	tags := []string{"fur", "glass", "wall"}
	for _, tag := range tags {
		path := writeTestJPEG(t, dir, tag+".jpg", 4, 4)
		require.True(t, registry.Load(path, tag))
	}

	assert.Equal(t, 3, registry.Count())
	for i, tag := range tags {
		assert.Equal(t, i, registry.ResolveUnit(tag))
	}
	assert.Equal(t, int64(backend.created[0]), registry.ResolveHandle("fur"))
}

func TestTextureRegistryUnknownTagResolvesToSentinel(t *testing.T) {
	registry := NewTextureRegistry(newRecordingBackend(), quietLogger())

	assert.Equal(t, -1, registry.ResolveUnit("missing"))
	assert.Equal(t, int64(-1), registry.ResolveHandle("missing"))
}

func TestTextureRegistryLoadFailuresAreSkipped(t *testing.T) {
	dir := t.TempDir()
	backend := newRecordingBackend()
	registry := NewTextureRegistry(backend, quietLogger())

	assert.False(t, registry.Load(filepath.Join(dir, "nope.jpg"), "nope"))

	grayPath := writeTestGrayPNG(t, dir, "gray.png")
	assert.False(t, registry.Load(grayPath, "gray"))

	assert.Equal(t, 0, registry.Count())
	assert.Empty(t, backend.created)
}

func TestTextureRegistryRejectsLoadsBeyondCapacity(t *testing.T) {
	dir := t.TempDir()
	backend := newRecordingBackend()
	registry := NewTextureRegistry(backend, quietLogger())

	path := writeTestJPEG(t, dir, "tile.jpg", 2, 2)
	for i := 0; i < MaxTextures; i++ {
		require.True(t, registry.Load(path, fmt.Sprintf("tile%d", i)))
	}

	assert.False(t, registry.Load(path, "overflow"))
	assert.Equal(t, MaxTextures, registry.Count())
	assert.Equal(t, -1, registry.ResolveUnit("overflow"))
}

func TestTextureRegistryLoadAllPreservesSliceOrder(t *testing.T) {
	dir := t.TempDir()
	backend := newRecordingBackend()
	registry := NewTextureRegistry(backend, quietLogger())

	files := []TextureFile{
		{Path: writeTestJPEG(t, dir, "a.jpg", 2, 2), Tag: "a"},
		{Path: filepath.Join(dir, "missing.jpg"), Tag: "b"},
		{Path: writeTestJPEG(t, dir, "c.jpg", 2, 2), Tag: "c"},
		{Path: writeTestJPEG(t, dir, "d.jpg", 2, 2), Tag: "d"},
	}

	loaded := registry.LoadAll(files)

	assert.Equal(t, 3, loaded)
	assert.Equal(t, 0, registry.ResolveUnit("a"))
	assert.Equal(t, -1, registry.ResolveUnit("b"))
	assert.Equal(t, 1, registry.ResolveUnit("c"))
	assert.Equal(t, 2, registry.ResolveUnit("d"))
}

func TestTextureRegistryBindAllBindsEntryToItsUnit(t *testing.T) {
	dir := t.TempDir()
	backend := newRecordingBackend()
	registry := NewTextureRegistry(backend, quietLogger())

	registry.Load(writeTestJPEG(t, dir, "a.jpg", 2, 2), "a")
	registry.Load(writeTestJPEG(t, dir, "b.jpg", 2, 2), "b")

	registry.BindAll()

	require.Len(t, backend.bound, 2)
	for i, b := range backend.bound {
		assert.Equal(t, i, b.unit)
		assert.Equal(t, backend.created[i], b.handle)
	}
}

func TestTextureRegistryDestroyReleasesEveryHandle(t *testing.T) {
	dir := t.TempDir()
	backend := newRecordingBackend()
	registry := NewTextureRegistry(backend, quietLogger())

	registry.Load(writeTestJPEG(t, dir, "a.jpg", 2, 2), "a")
	registry.Load(writeTestJPEG(t, dir, "b.jpg", 2, 2), "b")

	registry.Destroy()

	assert.ElementsMatch(t, backend.created, backend.deleted)
	assert.Equal(t, 0, registry.Count())
	assert.Equal(t, -1, registry.ResolveUnit("a"))
}

func TestNewTextureRegistryPanicsWithoutCollaborators(t *testing.T) {
	assert.Panics(t, func() { NewTextureRegistry(nil, quietLogger()) })
	assert.Panics(t, func() { NewTextureRegistry(newRecordingBackend(), nil) })
}
