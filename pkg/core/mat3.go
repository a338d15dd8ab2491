package core

import "math"

// Mat3 represents a 3x3 matrix in row-major order: M[row][col]
type Mat3 struct {
	M [3][3]float64
}

// Identity3 returns the 3x3 identity matrix
func Identity3() Mat3 {
	return Mat3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Mat3FromColumns builds a matrix whose columns are the given vectors
func Mat3FromColumns(c0, c1, c2 Vec3) Mat3 {
	return Mat3{M: [3][3]float64{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}}
}

// MultiplyVec returns the matrix-vector product m*v
func (m Mat3) MultiplyVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// MultiplyMat returns the matrix product m*other
func (m Mat3) MultiplyMat(other Mat3) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result.M[i][j] = m.M[i][0]*other.M[0][j] +
				m.M[i][1]*other.M[1][j] +
				m.M[i][2]*other.M[2][j]
		}
	}
	return result
}

// Determinant returns the determinant of the matrix
func (m Mat3) Determinant() float64 {
	return m.M[0][0]*(m.M[1][1]*m.M[2][2]-m.M[1][2]*m.M[2][1]) -
		m.M[0][1]*(m.M[1][0]*m.M[2][2]-m.M[1][2]*m.M[2][0]) +
		m.M[0][2]*(m.M[1][0]*m.M[2][1]-m.M[1][1]*m.M[2][0])
}

// Inverse returns the inverse of the matrix via the adjugate.
// A singular matrix returns the zero matrix; callers keep the lobe
// scales floored so this does not arise during fitting.
func (m Mat3) Inverse() Mat3 {
	det := m.Determinant()
	if math.Abs(det) == 0 {
		return Mat3{}
	}
	invDet := 1.0 / det

	var inv Mat3
	inv.M[0][0] = (m.M[1][1]*m.M[2][2] - m.M[1][2]*m.M[2][1]) * invDet
	inv.M[0][1] = (m.M[0][2]*m.M[2][1] - m.M[0][1]*m.M[2][2]) * invDet
	inv.M[0][2] = (m.M[0][1]*m.M[1][2] - m.M[0][2]*m.M[1][1]) * invDet
	inv.M[1][0] = (m.M[1][2]*m.M[2][0] - m.M[1][0]*m.M[2][2]) * invDet
	inv.M[1][1] = (m.M[0][0]*m.M[2][2] - m.M[0][2]*m.M[2][0]) * invDet
	inv.M[1][2] = (m.M[0][2]*m.M[1][0] - m.M[0][0]*m.M[1][2]) * invDet
	inv.M[2][0] = (m.M[1][0]*m.M[2][1] - m.M[1][1]*m.M[2][0]) * invDet
	inv.M[2][1] = (m.M[0][1]*m.M[2][0] - m.M[0][0]*m.M[2][1]) * invDet
	inv.M[2][2] = (m.M[0][0]*m.M[1][1] - m.M[0][1]*m.M[1][0]) * invDet
	return inv
}
