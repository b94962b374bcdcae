package math

// Mat4 is a 4x4 matrix in column-major order.
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Translation lives in m12..m14.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// FromTRS composes a transform matrix from translation, rotation, and scale.
// The rotation sub-matrix is derived algebraically from the quaternion, each
// basis column is scaled by the matching scale component, and translation
// fills the last column.
func FromTRS(translation Vec3, rotation Quat, scale Vec3) Mat4 {
	qx, qy, qz, qw := rotation.X, rotation.Y, rotation.Z, rotation.W

	x2 := qx + qx
	y2 := qy + qy
	z2 := qz + qz
	xx := qx * x2
	xy := qx * y2
	xz := qx * z2
	yy := qy * y2
	yz := qy * z2
	zz := qz * z2
	wx := qw * x2
	wy := qw * y2
	wz := qw * z2

	return Mat4{
		(1 - (yy + zz)) * scale.X, (xy + wz) * scale.X, (xz - wy) * scale.X, 0,
		(xy - wz) * scale.Y, (1 - (xx + zz)) * scale.Y, (yz + wx) * scale.Y, 0,
		(xz + wy) * scale.Z, (yz - wx) * scale.Z, (1 - (xx + yy)) * scale.Z, 0,
		translation.X, translation.Y, translation.Z, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// Translation returns the translation column of the matrix.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}
