package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// orbitControllerImpl keeps the camera on a sphere around the target. Position
// is derived from spherical coordinates (radius, azimuth, elevation); panning
// translates the target along the camera's local right and up axes so the orbit
// relationship is preserved.
type orbitControllerImpl struct {
	mu *sync.Mutex

	target mgl32.Vec3

	radius    float32
	azimuth   float32
	elevation float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32
}

// OrbitController owns the camera's positional state. The window's input
// callbacks drive Orbit/Zoom/Pan, and Camera.Update reads Position and Target
// back out to rebuild the view matrix.
type OrbitController interface {
	// Position returns the camera's world-space position, derived from the
	// target and the spherical coordinates.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// SetTarget sets the look-at point.
	//
	// Parameters:
	//   - target: world-space coordinates
	SetTarget(target mgl32.Vec3)

	// Orbit rotates the camera around the target. Deltas are in radians;
	// elevation is clamped to the controller's bounds.
	//
	// Parameters:
	//   - dAzimuth: horizontal rotation around the Y axis
	//   - dElevation: vertical rotation from the horizontal plane
	Orbit(dAzimuth, dElevation float32)

	// Zoom adjusts the orbit radius, clamped to the controller's bounds.
	// Positive delta moves toward the target.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)

	// Pan translates the target (and with it the camera) along the camera's
	// local right and up axes.
	//
	// Parameters:
	//   - dx: rightward pan amount scaled by PanSpeed
	//   - dy: upward pan amount scaled by PanSpeed
	Pan(dx, dy float32)

	// Radius returns the current distance from the target.
	//
	// Returns:
	//   - float32: orbit radius
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to bounds.
	//
	// Parameters:
	//   - radius: new distance from the target
	SetRadius(radius float32)

	// Azimuth returns the horizontal angle around the Y axis in radians.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// Elevation returns the vertical angle from the horizontal plane in radians.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// MouseSensitivity returns the multiplier applied to mouse drag deltas.
	//
	// Returns:
	//   - float32: radians per pixel of drag
	MouseSensitivity() float32

	// ZoomSpeed returns the multiplier applied to zoom input.
	//
	// Returns:
	//   - float32: world units per scroll step
	ZoomSpeed() float32

	// PanSpeed returns the multiplier applied to pan input.
	//
	// Returns:
	//   - float32: world units per pixel of drag
	PanSpeed() float32
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an orbit controller with defaults sized for the
// tableau: a 25-unit radius looking slightly down at the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	cc := &orbitControllerImpl{
		mu: &sync.Mutex{},

		radius:    25.0,
		azimuth:   0.0,
		elevation: float32(math.Pi / 8),

		minRadius:    2.0,
		maxRadius:    200.0,
		minElevation: -float32(math.Pi/2 - 0.05),
		maxElevation: float32(math.Pi/2 - 0.05),

		mouseSensitivity: 0.005,
		zoomSpeed:        1.5,
		panSpeed:         0.02,
	}

	for _, option := range options {
		option(cc)
	}

	cc.clamp()
	return cc
}

// position derives the camera position from the spherical coordinates.
// Caller must hold the mutex.
func (cc *orbitControllerImpl) position() mgl32.Vec3 {
	cosElev := float32(math.Cos(float64(cc.elevation)))
	sinElev := float32(math.Sin(float64(cc.elevation)))
	cosAzim := float32(math.Cos(float64(cc.azimuth)))
	sinAzim := float32(math.Sin(float64(cc.azimuth)))

	return mgl32.Vec3{
		cc.target.X() + cc.radius*cosElev*sinAzim,
		cc.target.Y() + cc.radius*sinElev,
		cc.target.Z() + cc.radius*cosElev*cosAzim,
	}
}

// clamp keeps radius and elevation inside their bounds.
// Caller must hold the mutex.
func (cc *orbitControllerImpl) clamp() {
	cc.radius = mgl32.Clamp(cc.radius, cc.minRadius, cc.maxRadius)
	cc.elevation = mgl32.Clamp(cc.elevation, cc.minElevation, cc.maxElevation)
}

func (cc *orbitControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position()
}

func (cc *orbitControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *orbitControllerImpl) SetTarget(target mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = target
}

func (cc *orbitControllerImpl) Orbit(dAzimuth, dElevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += dAzimuth
	cc.elevation += dElevation
	cc.clamp()
}

func (cc *orbitControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius -= delta * cc.zoomSpeed
	cc.clamp()
}

func (cc *orbitControllerImpl) Pan(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	backward := cc.position().Sub(cc.target)
	if backward.Len() < 1e-6 {
		return
	}
	backward = backward.Normalize()

	worldUp := mgl32.Vec3{0, 1, 0}
	right := worldUp.Cross(backward)
	if right.Len() < 1e-6 {
		return
	}
	right = right.Normalize()
	up := backward.Cross(right)

	offset := right.Mul(dx * cc.panSpeed).Add(up.Mul(dy * cc.panSpeed))
	cc.target = cc.target.Add(offset)
}

func (cc *orbitControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *orbitControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clamp()
}

func (cc *orbitControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *orbitControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *orbitControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

func (cc *orbitControllerImpl) ZoomSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}

func (cc *orbitControllerImpl) PanSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.panSpeed
}
