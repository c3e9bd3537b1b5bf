package mesh

// Library defines the interface for the fixed set of procedural primitives the
// scene draws from. Each primitive is generated and uploaded at most once no
// matter how often its Load operation is called; Draw operations for a
// primitive that has not been loaded are no-ops.
//
// Primitives are unit-sized and centered at or near the origin: the plane,
// box, prism, sphere, and torus are centered, while the cylinder family sits
// with its base circle on the XZ plane. Placement and sizing are the caller's
// model matrix's job.
type Library interface {
	// LoadPlaneMesh generates and uploads the plane primitive.
	LoadPlaneMesh()

	// LoadBoxMesh generates and uploads the box primitive.
	LoadBoxMesh()

	// LoadPrismMesh generates and uploads the triangular prism primitive.
	LoadPrismMesh()

	// LoadCylinderMesh generates and uploads the cylinder primitive.
	LoadCylinderMesh()

	// LoadTaperedCylinderMesh generates and uploads the tapered cylinder
	// primitive (top radius half the bottom radius).
	LoadTaperedCylinderMesh()

	// LoadConeMesh generates and uploads the cone primitive.
	LoadConeMesh()

	// LoadSphereMesh generates and uploads the sphere primitive.
	LoadSphereMesh()

	// LoadTorusMesh generates and uploads the torus primitive.
	LoadTorusMesh()

	// DrawPlaneMesh issues the draw call for the plane primitive.
	DrawPlaneMesh()

	// DrawBoxMesh issues the draw call for the box primitive.
	DrawBoxMesh()

	// DrawPrismMesh issues the draw call for the triangular prism primitive.
	DrawPrismMesh()

	// DrawCylinderMesh issues the draw call for the cylinder primitive.
	DrawCylinderMesh()

	// DrawTaperedCylinderMesh issues the draw call for the tapered cylinder primitive.
	DrawTaperedCylinderMesh()

	// DrawConeMesh issues the draw call for the cone primitive.
	DrawConeMesh()

	// DrawSphereMesh issues the draw call for the sphere primitive.
	DrawSphereMesh()

	// DrawTorusMesh issues the draw call for the torus primitive.
	DrawTorusMesh()

	// Destroy releases all uploaded GPU buffers. The library may be reused;
	// subsequent Load calls re-upload.
	Destroy()
}
