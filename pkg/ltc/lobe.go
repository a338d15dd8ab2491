// Package ltc implements the Linearly Transformed Cosine lobe: a
// clamped-cosine distribution pushed through a 3x3 linear transform.
package ltc

import (
	"math"

	"github.com/df07/go-ltc-fit/pkg/core"
)

// Lobe is one LTC lobe. The transform M is assembled from three free
// scalars (M11, M22, M13) and an orthonormal frame (X, Y, Z); the
// inverse and determinant are cached by Update. Amplitude is the total
// energy the lobe represents and scales Eval's normalized density at
// call sites that need the unnormalized value.
type Lobe struct {
	Amplitude float64

	// free parameters: diagonal scales and skew
	M11, M22, M13 float64

	// orthonormal frame orienting the lobe
	X, Y, Z core.Vec3

	// derived by Update
	M    core.Mat3
	InvM core.Mat3
	detM float64
}

// NewLobe returns a lobe with unit scales, no skew and the identity
// frame, with derived quantities already computed
func NewLobe() *Lobe {
	lobe := &Lobe{
		Amplitude: 1,
		M11:       1,
		M22:       1,
		M13:       0,
		X:         core.NewVec3(1, 0, 0),
		Y:         core.NewVec3(0, 1, 0),
		Z:         core.NewVec3(0, 0, 1),
	}
	lobe.Update()
	return lobe
}

// Update recomputes M, its inverse and |det M| from the free scalars
// and the frame. Must be called after any parameter change before the
// lobe is sampled or evaluated. Callers keep M11 and M22 above the
// minimum scale floor; Update does not check.
func (lobe *Lobe) Update() {
	frame := core.Mat3FromColumns(lobe.X, lobe.Y, lobe.Z)
	base := core.Mat3FromColumns(
		core.NewVec3(lobe.M11, 0, 0),
		core.NewVec3(0, lobe.M22, 0),
		core.NewVec3(lobe.M13, 0, 1),
	)
	lobe.M = frame.MultiplyMat(base)
	lobe.InvM = lobe.M.Inverse()
	lobe.detM = math.Abs(lobe.M.Determinant())
}

// Sample maps a stratified pair (u1, u2) to a direction by drawing a
// cosine-weighted direction in the local frame and pushing it through
// the transform
func (lobe *Lobe) Sample(u1, u2 float64) core.Vec3 {
	theta := math.Acos(math.Sqrt(u1))
	phi := 2.0 * math.Pi * u2
	local := core.NewVec3(
		math.Sin(theta)*math.Cos(phi),
		math.Sin(theta)*math.Sin(phi),
		math.Cos(theta),
	)
	return lobe.M.MultiplyVec(local).Normalize()
}

// Eval returns the normalized density of the direction under the
// lobe's distribution: the cosine density in the original domain
// corrected by the Jacobian of the transform
func (lobe *Lobe) Eval(light core.Vec3) float64 {
	original := lobe.InvM.MultiplyVec(light).Normalize()
	transformed := lobe.M.MultiplyVec(original)

	length := transformed.Length()
	jacobian := lobe.detM / (length * length * length)

	d := 1.0 / math.Pi * math.Max(0.0, original.Z)
	return d / jacobian
}
