package scene

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/tableau-go/common"
	"github.com/Carmen-Shannon/tableau-go/engine/mesh"
	"github.com/Carmen-Shannon/tableau-go/engine/shader"
)

var (
	_ shader.Shader  = &recordingShader{}
	_ TextureBackend = &recordingBackend{}
	_ mesh.Library   = &recordingLibrary{}
)

// uniformWrite records one uniform store on the recording shader.
type uniformWrite struct {
	name  string
	value any
}

// recordingShader implements shader.Shader and records every uniform write in
// order.
type recordingShader struct {
	writes   []uniformWrite
	useCalls int
}

func (s *recordingShader) Handle() uint32 { return 1 }
func (s *recordingShader) Use()           { s.useCalls++ }
func (s *recordingShader) Destroy()       {}

func (s *recordingShader) SetMat4Value(name string, value mgl32.Mat4) {
	s.writes = append(s.writes, uniformWrite{name, value})
}

func (s *recordingShader) SetIntValue(name string, value int32) {
	s.writes = append(s.writes, uniformWrite{name, value})
}

func (s *recordingShader) SetFloatValue(name string, value float32) {
	s.writes = append(s.writes, uniformWrite{name, value})
}

func (s *recordingShader) SetVec2Value(name string, x, y float32) {
	s.writes = append(s.writes, uniformWrite{name, [2]float32{x, y}})
}

func (s *recordingShader) SetVec3Value(name string, x, y, z float32) {
	s.writes = append(s.writes, uniformWrite{name, [3]float32{x, y, z}})
}

func (s *recordingShader) SetVec4Value(name string, x, y, z, w float32) {
	s.writes = append(s.writes, uniformWrite{name, [4]float32{x, y, z, w}})
}

func (s *recordingShader) SetSampler2DValue(name string, unit int32) {
	s.writes = append(s.writes, uniformWrite{name, unit})
}

// last returns the most recent write of the given uniform.
func (s *recordingShader) last(name string) (any, bool) {
	for i := len(s.writes) - 1; i >= 0; i-- {
		if s.writes[i].name == name {
			return s.writes[i].value, true
		}
	}
	return nil, false
}

// names returns every written uniform name in order.
func (s *recordingShader) names() []string {
	out := make([]string, len(s.writes))
	for i, w := range s.writes {
		out[i] = w.name
	}
	return out
}

// boundTexture records one BindTextureUnit call.
type boundTexture struct {
	unit   int
	handle uint32
}

// recordingBackend implements TextureBackend without touching the GPU.
// Handles are allocated sequentially starting at 101.
type recordingBackend struct {
	nextHandle uint32
	created    []uint32
	bound      []boundTexture
	deleted    []uint32
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{nextHandle: 101}
}

func (b *recordingBackend) CreateTexture(img *common.DecodedImage) (uint32, error) {
	handle := b.nextHandle
	b.nextHandle++
	b.created = append(b.created, handle)
	return handle, nil
}

func (b *recordingBackend) BindTextureUnit(unit int, handle uint32) {
	b.bound = append(b.bound, boundTexture{unit, handle})
}

func (b *recordingBackend) DeleteTexture(handle uint32) {
	b.deleted = append(b.deleted, handle)
}

// recordingLibrary implements mesh.Library and counts loads and draws. onDraw,
// when set, observes the shape name at the moment of each draw call.
type recordingLibrary struct {
	loads  map[string]int
	draws  []string
	onDraw func(shape string)
}

func newRecordingLibrary() *recordingLibrary {
	return &recordingLibrary{loads: map[string]int{}}
}

func (l *recordingLibrary) load(shape string) { l.loads[shape]++ }

func (l *recordingLibrary) draw(shape string) {
	l.draws = append(l.draws, shape)
	if l.onDraw != nil {
		l.onDraw(shape)
	}
}

func (l *recordingLibrary) LoadPlaneMesh()           { l.load("plane") }
func (l *recordingLibrary) LoadBoxMesh()             { l.load("box") }
func (l *recordingLibrary) LoadPrismMesh()           { l.load("prism") }
func (l *recordingLibrary) LoadCylinderMesh()        { l.load("cylinder") }
func (l *recordingLibrary) LoadTaperedCylinderMesh() { l.load("tapered cylinder") }
func (l *recordingLibrary) LoadConeMesh()            { l.load("cone") }
func (l *recordingLibrary) LoadSphereMesh()          { l.load("sphere") }
func (l *recordingLibrary) LoadTorusMesh()           { l.load("torus") }

func (l *recordingLibrary) DrawPlaneMesh()           { l.draw("plane") }
func (l *recordingLibrary) DrawBoxMesh()             { l.draw("box") }
func (l *recordingLibrary) DrawPrismMesh()           { l.draw("prism") }
func (l *recordingLibrary) DrawCylinderMesh()        { l.draw("cylinder") }
func (l *recordingLibrary) DrawTaperedCylinderMesh() { l.draw("tapered cylinder") }
func (l *recordingLibrary) DrawConeMesh()            { l.draw("cone") }
func (l *recordingLibrary) DrawSphereMesh()          { l.draw("sphere") }
func (l *recordingLibrary) DrawTorusMesh()           { l.draw("torus") }

func (l *recordingLibrary) Destroy() {}

// quietLogger discards diagnostics so test output stays readable.
func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// writeTestJPEG encodes a small solid-color JPEG into dir and returns its path.
func writeTestJPEG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 60, B: 30, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

// writeTestGrayPNG encodes a grayscale PNG, which decodes to a single channel.
func writeTestGrayPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}
