package brdf

import (
	"math"

	"github.com/df07/go-ltc-fit/pkg/core"
)

// GGX is the Trowbridge-Reitz microfacet model with the Smith
// height-correlated masking-shadowing term
type GGX struct{}

// Name implements the Model interface
func (GGX) Name() string { return "ggx" }

// Eval returns the cosine-weighted GGX reflectance and the density of
// the half-vector sampling strategy used by Sample
func (GGX) Eval(view, light core.Vec3, alpha float64) (float64, float64) {
	if view.Z <= 0 {
		return 0, 0
	}

	lambdaV := ggxLambda(alpha, view.Z)

	// shadowing
	g2 := 0.0
	if light.Z > 0 {
		lambdaL := ggxLambda(alpha, light.Z)
		g2 = 1.0 / (1.0 + lambdaV + lambdaL)
	}

	// distribution of normals
	h := view.Add(light).Normalize()
	slopeX := h.X / h.Z
	slopeY := h.Y / h.Z
	d := 1.0 / (1.0 + (slopeX*slopeX+slopeY*slopeY)/(alpha*alpha))
	d = d * d
	d = d / (math.Pi * alpha * alpha * h.Z * h.Z * h.Z * h.Z)

	pdf := math.Abs(d * h.Z / 4.0 / view.Dot(h))
	value := d * g2 / 4.0 / view.Z
	return value, pdf
}

// Sample draws a scattered direction by sampling the distribution of
// normals and reflecting the view direction about the sampled normal
func (GGX) Sample(view core.Vec3, alpha, u1, u2 float64) core.Vec3 {
	phi := 2.0 * math.Pi * u1
	r := alpha * math.Sqrt(u2/(1.0-u2))
	n := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), 1.0).Normalize()
	return view.Negate().Add(n.Multiply(2.0 * n.Dot(view)))
}

// ggxLambda is the Smith lambda for the GGX slope distribution
func ggxLambda(alpha, cosTheta float64) float64 {
	if cosTheta >= 1.0 {
		return 0.0
	}
	a := 1.0 / (alpha * math.Tan(math.Acos(cosTheta)))
	return 0.5 * (-1.0 + math.Sqrt(1.0+1.0/(a*a)))
}
