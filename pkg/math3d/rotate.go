package math3d

import "math"

// Mat3 is a row-major 3x3 matrix. It only ever holds rotations.
//
// | 0 1 2 |
// | 3 4 5 |
// | 6 7 8 |
type Mat3 [9]float64

// Identity3 returns the identity rotation.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// RotationXYZ builds the composite rotation for the three axis angles
// (in degrees). The product is written out once rather than composed from
// per-axis matrices, so every caller sees the same ordering.
func RotationXYZ(rx, ry, rz float64) Mat3 {
	srx, crx := math.Sincos(Radians(rx))
	sry, cry := math.Sincos(Radians(ry))
	srz, crz := math.Sincos(Radians(rz))

	return Mat3{
		cry * crz, srx*sry*crz - crx*srz, crx*sry*crz + srx*srz,
		cry * srz, srx*sry*srz + crx*crz, crx*sry*srz - srx*crz,
		-sry, srx * cry, crx * cry,
	}
}

// Rotate applies the composite rotation for (rx, ry, rz) degrees to p.
func Rotate(p Vec3, rx, ry, rz float64) Vec3 {
	return RotationXYZ(rx, ry, rz).MulVec3(p)
}

// MulVec3 returns m · v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		v.X*m[0] + v.Y*m[1] + v.Z*m[2],
		v.X*m[3] + v.Y*m[4] + v.Z*m[5],
		v.X*m[6] + v.Y*m[7] + v.Z*m[8],
	}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for row := range 3 {
		for col := range 3 {
			var sum float64
			for k := range 3 {
				sum += a[row*3+k] * b[k*3+col]
			}
			m[row*3+col] = sum
		}
	}
	return m
}

// Transpose returns the transposed matrix, which for a rotation is its inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}
