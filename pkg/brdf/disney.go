package brdf

import (
	"math"

	"github.com/df07/go-ltc-fit/pkg/core"
)

// DisneyDiffuse is the Burley diffuse model with the roughness-driven
// Fresnel retro-reflection terms
type DisneyDiffuse struct{}

// Name implements the Model interface
func (DisneyDiffuse) Name() string { return "disney" }

// Eval returns the cosine-weighted Disney diffuse reflectance and the
// cosine-hemisphere sampling density
func (DisneyDiffuse) Eval(view, light core.Vec3, alpha float64) (float64, float64) {
	if view.Z <= 0 || light.Z <= 0 {
		return 0, 0
	}

	pdf := light.Z / math.Pi

	ndotV := view.Z
	ndotL := light.Z
	h := view.Add(light).Normalize()
	ldotH := light.Dot(h)

	// Burley parameterizes by perceptual roughness, not alpha
	perceptualRoughness := math.Sqrt(alpha)
	fd90 := 0.5 + 2.0*ldotH*ldotH*perceptualRoughness
	lightScatter := 1.0 + (fd90-1.0)*math.Pow(1.0-ndotL, 5.0)
	viewScatter := 1.0 + (fd90-1.0)*math.Pow(1.0-ndotV, 5.0)

	value := lightScatter * viewScatter * light.Z / math.Pi
	return value, pdf
}

// Sample draws a cosine-weighted direction on the hemisphere
func (DisneyDiffuse) Sample(view core.Vec3, alpha, u1, u2 float64) core.Vec3 {
	r := math.Sqrt(u1)
	phi := 2.0 * math.Pi * u2
	return core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), math.Sqrt(1.0-r*r))
}
