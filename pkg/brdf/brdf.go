// Package brdf provides the parametric reflectance models the LTC
// fitter approximates. All directions are expressed in the local
// shading frame with Z as the surface normal; the view direction lies
// in the XZ plane.
package brdf

import (
	"fmt"

	"github.com/df07/go-ltc-fit/pkg/core"
)

// Model is the reflectance capability the fitter consumes: importance
// sampling of a scattered direction, and joint evaluation of the
// cosine-weighted reflectance with the sampling density.
type Model interface {
	// Sample maps a stratified pair (u1, u2) in [0,1) to a scattered
	// direction for the given view direction and roughness alpha.
	Sample(view core.Vec3, alpha, u1, u2 float64) core.Vec3

	// Eval returns the cosine-weighted reflectance for the (view, light)
	// pair along with the density Sample would produce light with.
	// Both are zero when the view direction is below the horizon.
	Eval(view, light core.Vec3, alpha float64) (value, pdf float64)

	// Name identifies the model in configuration and output files
	Name() string
}

// ByName returns the model registered under the given name
func ByName(name string) (Model, error) {
	switch name {
	case "ggx":
		return GGX{}, nil
	case "beckmann":
		return Beckmann{}, nil
	case "disney":
		return DisneyDiffuse{}, nil
	default:
		return nil, fmt.Errorf("unknown BRDF %q (want ggx, beckmann or disney)", name)
	}
}
