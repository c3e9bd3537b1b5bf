package scene

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/tableau-go/common"
)

// MaxTextures is the registry capacity, matching the 16 simultaneously bound
// texture units every conformant GL implementation guarantees.
const MaxTextures = 16

// TextureFile names one image on disk and the tag it registers under.
type TextureFile struct {
	// Path is the image file to decode.
	Path string

	// Tag is the short key the texture resolves by after a successful load.
	Tag string
}

// textureEntry is one live registry slot. The slot's position in the table is
// the texture unit the entry binds to.
type textureEntry struct {
	tag    string
	handle uint32
}

// textureRegistry is the implementation of the TextureRegistry interface.
type textureRegistry struct {
	entries [MaxTextures]textureEntry
	count   int

	backend TextureBackend
	logger  *log.Logger
}

// TextureRegistry owns the scene's GPU-resident texture images. Entries are
// keyed by tag and occupy texture units in insertion order: the i-th
// successful load binds to unit i. The registry never exceeds MaxTextures
// entries and is the sole allocator of the scene's texture units.
//
// A failed load is reported to the diagnostic sink and skipped; the missing
// tag later resolves to -1 and draws referencing it render with unit 0 bound.
// Adding a texture to an authoring scene is an iterative act and must never
// be fatal.
type TextureRegistry interface {
	// Load decodes the image at path (flipped vertically so V=0 is the bottom
	// edge), uploads it as a mipmapped GPU texture, and appends an entry under
	// tag. Only 3-channel (RGB) and 4-channel (RGBA) images are accepted.
	//
	// Parameters:
	//   - path: the image file to load
	//   - tag: the key to register the texture under
	//
	// Returns:
	//   - bool: true if the texture was decoded, uploaded, and registered
	Load(path, tag string) bool

	// LoadAll decodes the given files concurrently, then uploads and registers
	// the successful ones serially in slice order, so unit indices still equal
	// insertion order. Failures are reported and skipped like Load.
	//
	// Parameters:
	//   - files: the images to load, in registration order
	//
	// Returns:
	//   - int: the number of textures successfully registered
	LoadAll(files []TextureFile) int

	// BindAll binds each live entry's texture to its unit: entry i to unit i.
	// Call once after loading; the shader then samples by fixed unit index.
	BindAll()

	// ResolveUnit returns the texture unit for tag, or -1 if the tag is not
	// registered.
	//
	// Parameters:
	//   - tag: the texture tag to look up
	//
	// Returns:
	//   - int: the unit index, or -1
	ResolveUnit(tag string) int

	// ResolveHandle returns the GPU texture handle for tag, or -1 if the tag
	// is not registered.
	//
	// Parameters:
	//   - tag: the texture tag to look up
	//
	// Returns:
	//   - int64: the texture handle, or -1
	ResolveHandle(tag string) int64

	// Count returns the number of live entries.
	//
	// Returns:
	//   - int: the entry count
	Count() int

	// Destroy deletes every registered GPU texture and clears the registry.
	Destroy()
}

var _ TextureRegistry = &textureRegistry{}

// NewTextureRegistry creates an empty texture registry on the given backend.
// Both arguments are required; NewTextureRegistry panics if either is nil.
//
// Parameters:
//   - backend: the GPU texture backend (must not be nil)
//   - logger: the diagnostic sink for load reporting (must not be nil)
//
// Returns:
//   - TextureRegistry: the newly created registry
func NewTextureRegistry(backend TextureBackend, logger *log.Logger) TextureRegistry {
	if backend == nil {
		panic("scene: NewTextureRegistry requires a non-nil TextureBackend")
	}
	if logger == nil {
		panic("scene: NewTextureRegistry requires a non-nil logger")
	}
	return &textureRegistry{
		backend: backend,
		logger:  logger,
	}
}

func (r *textureRegistry) Load(path, tag string) bool {
	img, err := common.DecodeImageFile(path, true)
	if err != nil {
		r.logger.Printf("could not load image %s: %v", path, err)
		return false
	}
	return r.register(path, tag, img)
}

func (r *textureRegistry) LoadAll(files []TextureFile) int {
	if len(files) == 0 {
		return 0
	}

	// Decoding is the only CPU-heavy part and has no GL dependency, so it runs
	// on a worker pool. The pool's workers idle-exit after the batch drains.
	decoded := make([]*common.DecodedImage, len(files))
	errs := make([]error, len(files))

	pool := worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), len(files), time.Second)
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		idx := i
		path := file.Path
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				decoded[idx], errs[idx] = common.DecodeImageFile(path, true)
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Upload serially in slice order on the calling (GL) thread so that unit
	// indices equal insertion order.
	loaded := 0
	for i, file := range files {
		if errs[i] != nil {
			r.logger.Printf("could not load image %s: %v", file.Path, errs[i])
			continue
		}
		if r.register(file.Path, file.Tag, decoded[i]) {
			loaded++
		}
	}
	return loaded
}

// register validates the decoded image, uploads it, and appends the entry.
func (r *textureRegistry) register(path, tag string, img *common.DecodedImage) bool {
	if r.count == MaxTextures {
		r.logger.Printf("cannot load image %s: all %d texture slots are in use", path, MaxTextures)
		return false
	}
	if img.Channels != 3 && img.Channels != 4 {
		r.logger.Printf("not implemented to handle image %s with %d channels", path, img.Channels)
		return false
	}

	handle, err := r.backend.CreateTexture(img)
	if err != nil {
		r.logger.Printf("could not upload image %s: %v", path, err)
		return false
	}

	r.entries[r.count] = textureEntry{tag: tag, handle: handle}
	r.count++

	r.logger.Printf("successfully loaded image %s, width: %d, height: %d, channels: %d",
		path, img.Width, img.Height, img.Channels)
	return true
}

func (r *textureRegistry) BindAll() {
	for i := 0; i < r.count; i++ {
		r.backend.BindTextureUnit(i, r.entries[i].handle)
	}
}

func (r *textureRegistry) ResolveUnit(tag string) int {
	for i := 0; i < r.count; i++ {
		if r.entries[i].tag == tag {
			return i
		}
	}
	return -1
}

func (r *textureRegistry) ResolveHandle(tag string) int64 {
	for i := 0; i < r.count; i++ {
		if r.entries[i].tag == tag {
			return int64(r.entries[i].handle)
		}
	}
	return -1
}

func (r *textureRegistry) Count() int {
	return r.count
}

func (r *textureRegistry) Destroy() {
	for i := 0; i < r.count; i++ {
		r.backend.DeleteTexture(r.entries[i].handle)
		r.entries[i] = textureEntry{}
	}
	r.count = 0
}
