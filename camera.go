package canvas

import (
	"github.com/disasterengine/canvas/internal/mathx"
	"github.com/disasterengine/canvas/math3d"
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position math3d.Vec3
	Target   math3d.Vec3
	Up       math3d.Vec3
	FOV      float64 // vertical field of view in degrees
	Near     float64
	Far      float64
}

// DefaultCamera looks at the origin from (0, 10, 10) with a 45 degree
// field of view.
func DefaultCamera() Camera {
	return Camera{
		Position: math3d.V3(0, 10, 10),
		Up:       math3d.V3(0, 1, 0),
		FOV:      45,
		Near:     0.1,
		Far:      1000,
	}
}

// View returns the world to camera matrix.
func (c Camera) View() math3d.Mat4 {
	return math3d.LookAt(c.Position, c.Target, c.Up)
}

// Projection returns the camera to clip matrix for the given aspect ratio.
func (c Camera) Projection(aspect float64) math3d.Mat4 {
	return math3d.Perspective(math3d.Radians(c.FOV), aspect, c.Near, c.Far)
}

// Forward returns the unit view direction.
func (c Camera) Forward() math3d.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// CameraTransform describes the camera basis.
type CameraTransform struct {
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler degrees, roll always zero
	Forward  math3d.Vec3
	Up       math3d.Vec3
	Right    math3d.Vec3
}

// Camera returns the current camera.
func (cv *Canvas) Camera() Camera {
	return cv.camera
}

// SetCamera places the camera at pos facing the Euler rotation rot
// (degrees; pitch X, yaw Y). Zero rotation faces -Z.
func (cv *Canvas) SetCamera(pos, rot math3d.Vec3) {
	cv.camera.Position = pos
	cv.camera.Target = pos.Add(math3d.EulerToForward(rot))
}

// SetCameraLookAt places the camera at pos looking at target.
func (cv *Canvas) SetCameraLookAt(pos, target math3d.Vec3) {
	cv.camera.Position = pos
	cv.camera.Target = target
}

// SetFOV sets the vertical field of view in degrees, clamped to [1, 179].
func (cv *Canvas) SetFOV(deg float64) {
	cv.camera.FOV = mathx.Clamp(deg, 1, 179)
}

// CameraTransform returns the camera position, rotation and basis.
func (cv *Canvas) CameraTransform() CameraTransform {
	c := cv.camera
	f := c.Forward()
	r := f.Cross(c.Up).Normalize()
	return CameraTransform{
		Position: c.Position,
		Rotation: math3d.ForwardToEuler(f),
		Forward:  f,
		Up:       r.Cross(f),
		Right:    r,
	}
}

// projector maps world points to target pixels for one camera and target
// size.
type projector struct {
	view math3d.Mat4
	proj math3d.Mat4
	near float64
	w, h int
}

func newProjector(c Camera, w, h int) projector {
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	return projector{
		view: c.View(),
		proj: c.Projection(aspect),
		near: c.Near,
		w:    w,
		h:    h,
	}
}

// toScreen projects a camera-space point; it fails at or behind the near
// plane.
func (p projector) toScreen(v math3d.Vec3) (Vec2, bool) {
	if -v.Z <= p.near {
		return Vec2{}, false
	}
	s := math3d.Project(v, math3d.Identity(), p.proj, p.w, p.h)
	return Vec2{X: s.X, Y: s.Y}, true
}

// Project maps a world point to pixel coordinates of a w x h target. It
// returns false for points at or behind the near plane.
func (c Camera) Project(p math3d.Vec3, w, h int) (Vec2, bool) {
	pr := newProjector(c, w, h)
	return pr.toScreen(pr.view.MulPoint(p))
}

// WorldToScreenPoint projects a world point onto the screen buffer. It
// returns false for points at or behind the camera's near plane.
func (cv *Canvas) WorldToScreenPoint(p math3d.Vec3) (Vec2, bool) {
	return cv.camera.Project(p, cv.ScreenWidth(), cv.ScreenHeight())
}
