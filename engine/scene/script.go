package scene

// Shape identifies one of the mesh library's procedural primitives.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapePrism
	ShapeCylinder
	ShapeTaperedCylinder
	ShapeCone
	ShapeSphere
	ShapeTorus
)

// String returns the primitive's name.
func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapePrism:
		return "prism"
	case ShapeCylinder:
		return "cylinder"
	case ShapeTaperedCylinder:
		return "tapered cylinder"
	case ShapeCone:
		return "cone"
	case ShapeSphere:
		return "sphere"
	case ShapeTorus:
		return "torus"
	default:
		return "unknown"
	}
}

// DrawRecord is one entry of the scene's draw script: a primitive, its
// placement, and its surface. When Texture is empty the draw uses the solid
// Color instead; when Material is empty no material is applied.
type DrawRecord struct {
	Shape       Shape
	Scale       [3]float32
	RotationDeg [3]float32
	Position    [3]float32
	Texture     string
	Color       [4]float32
	Material    string
	UVScale     [2]float32
}

// The tableau's composer tables. Each is a literal, ordered sequence of draw
// records; RenderScene interprets them back to back. Ordering within and
// across tables is part of the scene's contract.

// columnAndBackdrop places the glass display column and the back wall.
var columnAndBackdrop = []DrawRecord{
	{Shape: ShapeCylinder, Scale: [3]float32{15, 0.5, 15}, Position: [3]float32{0, -2, 0},
		Texture: "glass", Material: "wall", UVScale: [2]float32{1, 1}},
	{Shape: ShapePlane, Scale: [3]float32{50, 1, 50}, RotationDeg: [3]float32{90, 0, 0}, Position: [3]float32{0, 15, -20},
		Texture: "wall", Material: "wall", UVScale: [2]float32{1, 1}},
}

// floor places the room floor below the column.
var floor = []DrawRecord{
	{Shape: ShapePlane, Scale: [3]float32{50, 1, 50}, Position: [3]float32{0, -27.5, 0},
		Texture: "floor", Material: "wall", UVScale: [2]float32{1, 1}},
}

// dolphin composes the dolphin figure: body, tail, head, snout, fins, eyes.
var dolphin = []DrawRecord{
	// Main body.
	{Shape: ShapeCylinder, Scale: [3]float32{2, 5, 2}, RotationDeg: [3]float32{0, 45, 90}, Position: [3]float32{7, 1, 7},
		Texture: "fur", Material: "fur", UVScale: [2]float32{1, 1}},
	// Tail-side taper.
	{Shape: ShapeTaperedCylinder, Scale: [3]float32{2, 4, 2}, RotationDeg: [3]float32{0, 45, 270}, Position: [3]float32{7, 1, 7},
		Texture: "fur", Material: "fur", UVScale: [2]float32{1, 1}},
	// Head.
	{Shape: ShapeSphere, Scale: [3]float32{2, 2, 2}, Position: [3]float32{3, 1, 11},
		Texture: "fur", Material: "fur", UVScale: [2]float32{1, 1}},
	// Snout.
	{Shape: ShapeCone, Scale: [3]float32{1, 2, 1}, RotationDeg: [3]float32{0, 45, 100}, Position: [3]float32{2, 0.5, 12},
		Texture: "fur", Material: "fur", UVScale: [2]float32{1, 1}},
	// Rounds out the tail.
	{Shape: ShapeSphere, Scale: [3]float32{0.9, 0.9, 0.9}, Position: [3]float32{9.95, 1.05, 4.25},
		Texture: "fur", Material: "fur", UVScale: [2]float32{1, 1}},
	// Top fin.
	{Shape: ShapePrism, Scale: [3]float32{1, 0.25, 1.5}, RotationDeg: [3]float32{-90, 0, 45}, Position: [3]float32{5, 3.5, 9},
		Texture: "fur", Material: "fur", UVScale: [2]float32{1, 1}},
	// Side fin.
	{Shape: ShapePrism, Scale: [3]float32{1, 0.5, 2}, RotationDeg: [3]float32{15, 25, 0}, Position: [3]float32{6, 0, 11.5},
		Texture: "fur", Material: "fur", UVScale: [2]float32{1, 1}},
	// Tail fins.
	{Shape: ShapePrism, Scale: [3]float32{2, 0.5, 2}, RotationDeg: [3]float32{10, -45, 0}, Position: [3]float32{10.8, 1, 4},
		Texture: "fur", Material: "fur", UVScale: [2]float32{1, 1}},
	// Eyes.
	{Shape: ShapeSphere, Scale: [3]float32{0.25, 0.45, 0.25}, Position: [3]float32{3.25, 1.6, 13.15},
		Texture: "black", Material: "fur", UVScale: [2]float32{1, 1}},
	{Shape: ShapeSphere, Scale: [3]float32{0.25, 0.45, 0.25}, Position: [3]float32{1.25, 1.6, 11},
		Texture: "black", Material: "fur", UVScale: [2]float32{1, 1}},
}

// laptop composes the laptop: keyboard deck and tilted screen.
var laptop = []DrawRecord{
	{Shape: ShapeBox, Scale: [3]float32{10.25, 0.2, 8.25}, RotationDeg: [3]float32{5, 0, 0}, Position: [3]float32{-0.5, 0, 4},
		Texture: "keyboard", UVScale: [2]float32{1, 1}},
	{Shape: ShapeBox, Scale: [3]float32{10.25, 0.2, 8.25}, RotationDeg: [3]float32{90, 0, 0}, Position: [3]float32{-0.5, 3, -0.5},
		Texture: "screen", UVScale: [2]float32{1, 1}},
}

// book composes the book: cover and inset page block.
var book = []DrawRecord{
	{Shape: ShapeBox, Scale: [3]float32{7, 1.5, 5}, RotationDeg: [3]float32{0, -20, 0}, Position: [3]float32{-5.5, 0, 9.75},
		Texture: "book", UVScale: [2]float32{1, 1}},
	{Shape: ShapeBox, Scale: [3]float32{6.8, 1.3, 4.8}, RotationDeg: [3]float32{0, -20, 0}, Position: [3]float32{-5.375, 0, 9.75},
		Texture: "pages", UVScale: [2]float32{1, 1}},
}

// headphones composes the headphones: head band and two ear cups.
var headphones = []DrawRecord{
	{Shape: ShapeTorus, Scale: [3]float32{2.5, 2.5, 1.5}, RotationDeg: [3]float32{90, 0, 0}, Position: [3]float32{-5.375, 1, 9.75},
		Texture: "black", UVScale: [2]float32{1, 1}},
	{Shape: ShapeTaperedCylinder, Scale: [3]float32{1.65, 0.75, 1.65}, Position: [3]float32{-3.75, 0.8, 11.5},
		Texture: "headphones", UVScale: [2]float32{1, 1}},
	{Shape: ShapeTaperedCylinder, Scale: [3]float32{1.65, 0.75, 1.65}, Position: [3]float32{-3, 0.8, 9.75},
		Texture: "headphones", UVScale: [2]float32{1, 1}},
}

// sceneScript is the full per-frame draw order.
var sceneScript = [][]DrawRecord{
	columnAndBackdrop,
	floor,
	dolphin,
	laptop,
	book,
	headphones,
}

func (m *manager) RenderScene() {
	for _, group := range sceneScript {
		for _, record := range group {
			m.drawRecord(record)
		}
	}
}

// drawRecord interprets one draw record: transform, then surface (and
// optional material), then UV scale, then the primitive draw.
func (m *manager) drawRecord(record DrawRecord) {
	m.SetTransformations(record.Scale,
		record.RotationDeg[0], record.RotationDeg[1], record.RotationDeg[2],
		record.Position)

	if record.Texture != "" {
		m.SetShaderTexture(record.Texture)
	} else {
		m.SetShaderColor(record.Color[0], record.Color[1], record.Color[2], record.Color[3])
	}
	if record.Material != "" {
		m.SetShaderMaterial(record.Material)
	}
	m.SetTextureUVScale(record.UVScale[0], record.UVScale[1])

	m.drawShape(record.Shape)
}

// drawShape dispatches the primitive draw to the mesh library.
func (m *manager) drawShape(shape Shape) {
	switch shape {
	case ShapePlane:
		m.meshes.DrawPlaneMesh()
	case ShapeBox:
		m.meshes.DrawBoxMesh()
	case ShapePrism:
		m.meshes.DrawPrismMesh()
	case ShapeCylinder:
		m.meshes.DrawCylinderMesh()
	case ShapeTaperedCylinder:
		m.meshes.DrawTaperedCylinderMesh()
	case ShapeCone:
		m.meshes.DrawConeMesh()
	case ShapeSphere:
		m.meshes.DrawSphereMesh()
	case ShapeTorus:
		m.meshes.DrawTorusMesh()
	}
}
