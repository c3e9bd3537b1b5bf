package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbitControllerPositionFromSphericalCoords(t *testing.T) {
	ctrl := NewOrbitController(
		WithTarget(mgl32.Vec3{1, 2, 3}),
		WithRadius(10),
		WithAngles(0, 0),
	)

	// Zero azimuth and elevation puts the camera straight down +Z from the
	// target.
	pos := ctrl.Position()
	assert.InDelta(t, 1, pos.X(), 1e-5)
	assert.InDelta(t, 2, pos.Y(), 1e-5)
	assert.InDelta(t, 13, pos.Z(), 1e-5)

	ctrl.Orbit(0, float32(math.Pi/2-0.05))
	pos = ctrl.Position()
	assert.Greater(t, pos.Y(), float32(11), "camera should be nearly overhead")
}

func TestOrbitControllerKeepsDistanceWhileOrbiting(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(10))

	for i := 0; i < 8; i++ {
		ctrl.Orbit(0.3, 0.05)
		dist := ctrl.Position().Sub(ctrl.Target()).Len()
		assert.InDelta(t, 10, dist, 1e-4)
	}
}

func TestOrbitControllerClampsRadiusAndElevation(t *testing.T) {
	ctrl := NewOrbitController(
		WithRadius(10),
		WithRadiusBounds(5, 50),
	)

	ctrl.SetRadius(1000)
	assert.Equal(t, float32(50), ctrl.Radius())

	// Zooming in past the near bound sticks at the bound.
	for i := 0; i < 100; i++ {
		ctrl.Zoom(1)
	}
	assert.Equal(t, float32(5), ctrl.Radius())

	ctrl.Orbit(0, 100)
	assert.LessOrEqual(t, ctrl.Elevation(), float32(math.Pi/2))
	ctrl.Orbit(0, -200)
	assert.GreaterOrEqual(t, ctrl.Elevation(), -float32(math.Pi/2))
}

func TestOrbitControllerPanMovesTargetNotRadius(t *testing.T) {
	ctrl := NewOrbitController(WithRadius(10))
	before := ctrl.Target()

	ctrl.Pan(100, 50)

	assert.NotEqual(t, before, ctrl.Target())
	dist := ctrl.Position().Sub(ctrl.Target()).Len()
	assert.InDelta(t, 10, dist, 1e-4)
}

func TestCameraMatricesFollowController(t *testing.T) {
	ctrl := NewOrbitController(
		WithTarget(mgl32.Vec3{0, 2, 0}),
		WithRadius(30),
		WithAngles(0.5, 0.35),
	)
	cam := NewCamera(
		WithFov(mgl32.DegToRad(45)),
		WithAspect(16.0/9.0),
		WithClipPlanes(0.1, 200),
		WithController(ctrl),
	)

	expectedView := mgl32.LookAtV(ctrl.Position(), ctrl.Target(), mgl32.Vec3{0, 1, 0})
	assert.True(t, cam.ViewMatrix().ApproxEqualThreshold(expectedView, 1e-6))

	expectedProj := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 200)
	assert.True(t, cam.ProjectionMatrix().ApproxEqualThreshold(expectedProj, 1e-6))

	// Moving the controller takes effect on the next Update.
	ctrl.Orbit(0.4, 0)
	assert.True(t, cam.ViewMatrix().ApproxEqualThreshold(expectedView, 1e-6))
	cam.Update()
	moved := mgl32.LookAtV(ctrl.Position(), ctrl.Target(), mgl32.Vec3{0, 1, 0})
	assert.True(t, cam.ViewMatrix().ApproxEqualThreshold(moved, 1e-6))
	assert.False(t, cam.ViewMatrix().ApproxEqualThreshold(expectedView, 1e-4))
}

func TestCameraSetAspectRebuildsProjection(t *testing.T) {
	cam := NewCamera(WithController(NewOrbitController()))
	require.Equal(t, float32(1), cam.Aspect())

	cam.SetAspect(2)

	expected := mgl32.Perspective(cam.Fov(), 2, cam.Near(), cam.Far())
	assert.True(t, cam.ProjectionMatrix().ApproxEqualThreshold(expected, 1e-6))
}

func TestCameraWithoutControllerIsInert(t *testing.T) {
	cam := NewCamera()

	assert.Equal(t, mgl32.Vec3{}, cam.Position())
	assert.True(t, cam.ViewMatrix().ApproxEqualThreshold(mgl32.Ident4(), 1e-6))
	assert.NotPanics(t, cam.Update)
}
