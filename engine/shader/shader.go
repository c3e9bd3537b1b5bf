package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glShader is the OpenGL implementation of the Shader interface.
type glShader struct {
	handle    uint32
	locations map[string]int32
}

// Shader defines the interface for a compiled and linked GPU shader program.
// It exposes typed setters for named uniforms; uniform locations are resolved
// once per name and cached. Setters bind the program before writing, so callers
// do not need to pair every write with Use.
//
// All methods must be called on the thread that owns the GL context.
type Shader interface {
	// Handle returns the underlying GL program object name.
	//
	// Returns:
	//   - uint32: the GL program handle
	Handle() uint32

	// Use makes this program the active program for subsequent draws.
	Use()

	// SetMat4Value writes a 4x4 matrix uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the column-major matrix value
	SetMat4Value(name string, value mgl32.Mat4)

	// SetIntValue writes an int (or bool-as-int) uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the integer value
	SetIntValue(name string, value int32)

	// SetFloatValue writes a float uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the float value
	SetFloatValue(name string, value float32)

	// SetVec2Value writes a 2-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - x, y: the vector components
	SetVec2Value(name string, x, y float32)

	// SetVec3Value writes a 3-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - x, y, z: the vector components
	SetVec3Value(name string, x, y, z float32)

	// SetVec4Value writes a 4-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - x, y, z, w: the vector components
	SetVec4Value(name string, x, y, z, w float32)

	// SetSampler2DValue writes a sampler uniform. The value is a texture unit
	// index, not a texture handle.
	//
	// Parameters:
	//   - name: the sampler uniform name
	//   - unit: the texture unit index to sample from
	SetSampler2DValue(name string, unit int32)

	// Destroy deletes the GL program object. The shader must not be used
	// afterwards.
	Destroy()
}

var _ Shader = &glShader{}

// NewShader compiles the given vertex and fragment sources and links them into
// a program. Must be called on the thread that owns the GL context, after the
// GL bindings have been initialized.
//
// Parameters:
//   - vertexSource: GLSL vertex shader source
//   - fragmentSource: GLSL fragment shader source
//
// Returns:
//   - Shader: the linked shader program
//   - error: error if compilation or linking fails, including the GL info log
func NewShader(vertexSource, fragmentSource string) (Shader, error) {
	vert, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	frag, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	// The shader objects are no longer needed once the program is linked.
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program: %s", strings.TrimRight(infoLog, "\x00"))
	}

	return &glShader{
		handle:    program,
		locations: make(map[string]int32),
	}, nil
}

// compileShader compiles a single shader stage and returns its GL object name.
func compileShader(shaderType uint32, source string) (uint32, error) {
	handle := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("compile error: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return handle, nil
}

// location resolves and caches the uniform location for name. Unknown names
// resolve to -1, which GL silently ignores on write.
func (s *glShader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.handle, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

func (s *glShader) Handle() uint32 {
	return s.handle
}

func (s *glShader) Use() {
	gl.UseProgram(s.handle)
}

func (s *glShader) SetMat4Value(name string, value mgl32.Mat4) {
	s.Use()
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}

func (s *glShader) SetIntValue(name string, value int32) {
	s.Use()
	gl.Uniform1i(s.location(name), value)
}

func (s *glShader) SetFloatValue(name string, value float32) {
	s.Use()
	gl.Uniform1f(s.location(name), value)
}

func (s *glShader) SetVec2Value(name string, x, y float32) {
	s.Use()
	gl.Uniform2f(s.location(name), x, y)
}

func (s *glShader) SetVec3Value(name string, x, y, z float32) {
	s.Use()
	gl.Uniform3f(s.location(name), x, y, z)
}

func (s *glShader) SetVec4Value(name string, x, y, z, w float32) {
	s.Use()
	gl.Uniform4f(s.location(name), x, y, z, w)
}

func (s *glShader) SetSampler2DValue(name string, unit int32) {
	s.Use()
	gl.Uniform1i(s.location(name), unit)
}

func (s *glShader) Destroy() {
	gl.DeleteProgram(s.handle)
	s.handle = 0
	s.locations = nil
}
