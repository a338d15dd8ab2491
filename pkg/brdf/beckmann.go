package brdf

import (
	"math"

	"github.com/df07/go-ltc-fit/pkg/core"
)

// Beckmann is the Beckmann-Spizzichino microfacet model with Walter's
// rational approximation of the Smith lambda
type Beckmann struct{}

// Name implements the Model interface
func (Beckmann) Name() string { return "beckmann" }

// Eval returns the cosine-weighted Beckmann reflectance and the density
// of the half-vector sampling strategy used by Sample
func (Beckmann) Eval(view, light core.Vec3, alpha float64) (float64, float64) {
	if view.Z <= 0 {
		return 0, 0
	}

	lambdaV := beckmannLambda(alpha, view.Z)

	g2 := 0.0
	if light.Z > 0 {
		lambdaL := beckmannLambda(alpha, light.Z)
		g2 = 1.0 / (1.0 + lambdaV + lambdaL)
	}

	h := view.Add(light).Normalize()
	slopeX := h.X / h.Z
	slopeY := h.Y / h.Z
	d := math.Exp(-(slopeX*slopeX+slopeY*slopeY)/(alpha*alpha)) /
		(math.Pi * alpha * alpha * h.Z * h.Z * h.Z * h.Z)

	pdf := math.Abs(d * h.Z / 4.0 / view.Dot(h))
	value := d * g2 / 4.0 / view.Z
	return value, pdf
}

// Sample draws a scattered direction by sampling the distribution of
// normals and reflecting the view direction about the sampled normal
func (Beckmann) Sample(view core.Vec3, alpha, u1, u2 float64) core.Vec3 {
	phi := 2.0 * math.Pi * u1
	r := alpha * math.Sqrt(-math.Log(1.0-u2))
	n := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), 1.0).Normalize()
	return view.Negate().Add(n.Multiply(2.0 * n.Dot(view)))
}

// beckmannLambda approximates the Smith lambda for the Beckmann slope
// distribution (Walter et al., cutoff at a = 1.6)
func beckmannLambda(alpha, cosTheta float64) float64 {
	if cosTheta >= 1.0 {
		return 0.0
	}
	a := 1.0 / (alpha * math.Tan(math.Acos(cosTheta)))
	if a >= 1.6 {
		return 0.0
	}
	return (1.0 - 1.259*a + 0.396*a*a) / (3.535*a + 2.181*a*a)
}
