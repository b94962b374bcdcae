package math

import "math"

// quatEpsilon guards normalization of degenerate (near-zero length) quaternions.
const quatEpsilon = 1e-10

// slerpLinearThreshold is the dot product above which Slerp falls back to
// normalized linear interpolation; sin(theta) is too small for a stable
// spherical weight beyond it.
const slerpLinearThreshold = 0.9995

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// QuatFromSlice builds a quaternion from at least four xyzw components.
// Shorter slices yield the identity quaternion.
func QuatFromSlice(v []float32) Quat {
	if len(v) < 4 {
		return QuatIdentity()
	}
	return Quat{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Slice returns the components as xyzw.
func (q Quat) Slice() []float32 {
	return []float32{q.X, q.Y, q.Z, q.W}
}

// Length returns the magnitude.
func (q Quat) Length() float32 {
	return float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
}

// Normalize returns a unit quaternion. Degenerate near-zero quaternions
// normalize to identity rather than dividing by ~0.
func (q Quat) Normalize() Quat {
	length := q.Length()
	if length < quatEpsilon {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Conjugate returns the quaternion conjugate (-x, -y, -z, w).
// For unit quaternions this is the inverse rotation.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Neg returns the component-wise negation. It represents the same rotation.
func (q Quat) Neg() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1]. The result is always unit length.
func (q Quat) Slerp(other Quat, t float32) Quat {
	dot := q.Dot(other)

	// Negate one side so interpolation takes the shorter arc.
	if dot < 0 {
		other = other.Neg()
		dot = -dot
	}

	// Nearly parallel: nlerp, the spherical weights would divide by ~0.
	if dot > slerpLinearThreshold {
		return Quat{
			X: q.X + t*(other.X-q.X),
			Y: q.Y + t*(other.Y-q.Y),
			Z: q.Z + t*(other.Z-q.Z),
			W: q.W + t*(other.W-q.W),
		}.Normalize()
	}

	theta := float32(math.Acos(float64(dot)))
	sinTheta := float32(math.Sin(float64(theta)))
	wa := float32(math.Sin(float64((1-t)*theta))) / sinTheta
	wb := float32(math.Sin(float64(t*theta))) / sinTheta

	return Quat{
		X: q.X*wa + other.X*wb,
		Y: q.Y*wa + other.Y*wb,
		Z: q.Z*wa + other.Z*wb,
		W: q.W*wa + other.W*wb,
	}
}

// Mul multiplies two quaternions (Hamilton product, combines rotations).
// Quaternion multiplication is not commutative; q.Mul(other) applies other
// first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}
