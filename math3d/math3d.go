// Package math3d provides the vector and matrix types used to project
// meshes onto the canvas.
//
// Matrices are mgl64 matrices: column-major 4x4 (m[col*4+row]) following
// the OpenGL conventions, with a right-handed world, the camera looking
// down -Z and clip space depth in [-1, 1]. Vectors keep named fields so
// meshes and cameras read naturally.
package math3d

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a homogeneous 4D vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// V3 returns Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func fromGL(v mgl64.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }

func (v Vec3) gl() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func (v Vec3) Add(o Vec3) Vec3     { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3     { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3  { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64  { return v.gl().Dot(o.gl()) }
func (v Vec3) Len() float64        { return v.gl().Len() }
func (v Vec3) Cross(o Vec3) Vec3   { return fromGL(v.gl().Cross(o.gl())) }
func (v Vec3) Vec4(w float64) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Mat4 is a column-major 4x4 matrix.
type Mat4 mgl64.Mat4

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4(mgl64.Ident4())
}

// Mul returns a*b (b is applied first).
func (a Mat4) Mul(b Mat4) Mat4 {
	return Mat4(mgl64.Mat4(a).Mul4(mgl64.Mat4(b)))
}

// MulV4 transforms v.
func (a Mat4) MulV4(v Vec4) Vec4 {
	r := mgl64.Mat4(a).Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, v.W})
	return Vec4{r[0], r[1], r[2], r[3]}
}

// MulPoint transforms a point (w = 1) and drops w.
func (a Mat4) MulPoint(p Vec3) Vec3 {
	return a.MulV4(p.Vec4(1)).Vec3()
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4(mgl64.Translate3D(v.X, v.Y, v.Z))
}

// Scale returns a scale matrix.
func Scale(v Vec3) Mat4 {
	return Mat4(mgl64.Scale3D(v.X, v.Y, v.Z))
}

// RotateX returns a rotation of rad radians about the X axis.
func RotateX(rad float64) Mat4 { return Mat4(mgl64.HomogRotate3DX(rad)) }

// RotateY returns a rotation of rad radians about the Y axis.
func RotateY(rad float64) Mat4 { return Mat4(mgl64.HomogRotate3DY(rad)) }

// RotateZ returns a rotation of rad radians about the Z axis.
func RotateZ(rad float64) Mat4 { return Mat4(mgl64.HomogRotate3DZ(rad)) }

// LookAt returns a view matrix for an eye looking at target. When target
// equals eye or up is parallel to the view direction the camera keeps
// facing -Z.
func LookAt(eye, target, up Vec3) Mat4 {
	if target.Sub(eye).Cross(up) == (Vec3{}) {
		return Translate(eye.Mul(-1))
	}
	return Mat4(mgl64.LookAtV(eye.gl(), target.gl(), up.gl()))
}

// Perspective returns a perspective projection with a vertical field of
// view in radians. A zero aspect is treated as 1.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	return Mat4(mgl64.Perspective(fovY, aspect, near, far))
}

// Project maps p through modelview and projection onto a w x h viewport
// with y growing downwards. Z is the window depth in [0, 1] for points
// between the clip planes.
func Project(p Vec3, modelview, projection Mat4, w, h int) Vec3 {
	win := mgl64.Project(p.gl(), mgl64.Mat4(modelview), mgl64.Mat4(projection), 0, 0, w, h)
	return Vec3{X: win[0], Y: float64(h) - win[1], Z: win[2]}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return mgl64.DegToRad(deg) }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return mgl64.RadToDeg(rad) }
