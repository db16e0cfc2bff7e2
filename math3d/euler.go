package math3d

import "math"

// Euler builds the rotation Rz * Ry * Rx from angles in degrees.
func Euler(deg Vec3) Mat4 {
	return RotateZ(Radians(deg.Z)).Mul(RotateY(Radians(deg.Y))).Mul(RotateX(Radians(deg.X)))
}

// TRS composes translation, Euler rotation (degrees) and scale:
// T * R * S.
func TRS(pos, rotDeg, scale Vec3) Mat4 {
	return Translate(pos).Mul(Euler(rotDeg)).Mul(Scale(scale))
}

// EulerToForward converts pitch (X) and yaw (Y) in degrees to a unit
// forward vector. Zero rotation faces -Z; positive pitch looks up.
func EulerToForward(deg Vec3) Vec3 {
	pitch, yaw := Radians(deg.X), Radians(deg.Y)
	return Vec3{
		X: -math.Sin(yaw) * math.Cos(pitch),
		Y: math.Sin(pitch),
		Z: -math.Cos(yaw) * math.Cos(pitch),
	}
}

// ForwardToEuler is the inverse of EulerToForward; roll is always zero.
func ForwardToEuler(f Vec3) Vec3 {
	f = f.Normalize()
	if f == (Vec3{}) {
		return Vec3{}
	}
	pitch := math.Asin(math.Max(-1, math.Min(1, f.Y)))
	yaw := math.Atan2(-f.X, -f.Z)
	return Vec3{X: Degrees(pitch), Y: Degrees(yaw)}
}
