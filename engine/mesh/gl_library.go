package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// slot identifies one primitive's storage in the library.
type slot int

const (
	slotPlane slot = iota
	slotBox
	slotPrism
	slotCylinder
	slotTaperedCylinder
	slotCone
	slotSphere
	slotTorus
	slotCount
)

// meshBuffers holds the OpenGL buffer objects for one uploaded primitive.
type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// glLibrary is the OpenGL implementation of the Library interface.
// All methods must run on the thread that owns the GL context.
type glLibrary struct {
	slots [slotCount]*meshBuffers
}

var _ Library = &glLibrary{}

// NewLibrary creates an empty primitive library backed by OpenGL buffers.
// Nothing is generated or uploaded until the individual Load calls.
//
// Returns:
//   - Library: the newly created library
func NewLibrary() Library {
	return &glLibrary{}
}

// load generates and uploads the slot's geometry if it is not resident yet.
func (l *glLibrary) load(s slot, generate func() *geometry) {
	if l.slots[s] != nil {
		return
	}
	l.slots[s] = upload(generate())
}

// draw issues the slot's draw call, or does nothing if the slot was never loaded.
func (l *glLibrary) draw(s slot) {
	buffers := l.slots[s]
	if buffers == nil {
		return
	}
	gl.BindVertexArray(buffers.vao)
	gl.DrawElements(gl.TRIANGLES, buffers.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// upload pushes interleaved vertex data and indices into a fresh VAO/VBO/EBO.
// Attribute layout matches the scene shader: location 0 position, 1 normal, 2 UV.
func upload(g *geometry) *meshBuffers {
	buffers := &meshBuffers{indexCount: int32(len(g.indices))}

	gl.GenVertexArrays(1, &buffers.vao)
	gl.BindVertexArray(buffers.vao)

	gl.GenBuffers(1, &buffers.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffers.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.vertices)*4, gl.Ptr(g.vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buffers.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffers.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.indices)*4, gl.Ptr(g.indices), gl.STATIC_DRAW)

	const stride = 8 * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return buffers
}

func (l *glLibrary) LoadPlaneMesh() { l.load(slotPlane, planeGeometry) }
func (l *glLibrary) LoadBoxMesh()   { l.load(slotBox, boxGeometry) }
func (l *glLibrary) LoadPrismMesh() { l.load(slotPrism, prismGeometry) }

func (l *glLibrary) LoadCylinderMesh() {
	l.load(slotCylinder, func() *geometry { return cylinderGeometry(1, 1) })
}

func (l *glLibrary) LoadTaperedCylinderMesh() {
	l.load(slotTaperedCylinder, func() *geometry { return cylinderGeometry(1, 0.5) })
}

func (l *glLibrary) LoadConeMesh()   { l.load(slotCone, coneGeometry) }
func (l *glLibrary) LoadSphereMesh() { l.load(slotSphere, sphereGeometry) }
func (l *glLibrary) LoadTorusMesh()  { l.load(slotTorus, torusGeometry) }

func (l *glLibrary) DrawPlaneMesh()           { l.draw(slotPlane) }
func (l *glLibrary) DrawBoxMesh()             { l.draw(slotBox) }
func (l *glLibrary) DrawPrismMesh()           { l.draw(slotPrism) }
func (l *glLibrary) DrawCylinderMesh()        { l.draw(slotCylinder) }
func (l *glLibrary) DrawTaperedCylinderMesh() { l.draw(slotTaperedCylinder) }
func (l *glLibrary) DrawConeMesh()            { l.draw(slotCone) }
func (l *glLibrary) DrawSphereMesh()          { l.draw(slotSphere) }
func (l *glLibrary) DrawTorusMesh()           { l.draw(slotTorus) }

func (l *glLibrary) Destroy() {
	for i, buffers := range l.slots {
		if buffers == nil {
			continue
		}
		gl.DeleteBuffers(1, &buffers.vbo)
		gl.DeleteBuffers(1, &buffers.ebo)
		gl.DeleteVertexArrays(1, &buffers.vao)
		l.slots[i] = nil
	}
}
