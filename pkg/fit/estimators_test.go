package fit

import (
	"math"
	"testing"

	"github.com/df07/go-ltc-fit/pkg/brdf"
	"github.com/df07/go-ltc-fit/pkg/core"
	"github.com/df07/go-ltc-fit/pkg/ltc"
)

func TestComputeNorm_OrderInvariant(t *testing.T) {
	model := brdf.GGX{}
	view := core.NewVec3(math.Sin(0.8), 0, math.Cos(0.8))
	alpha := 0.3
	nSamples := 8

	forward := ComputeNorm(model, view, alpha, nSamples)

	// same stratified multiset, enumerated in reverse
	reversed := 0.0
	for j := nSamples - 1; j >= 0; j-- {
		for i := nSamples - 1; i >= 0; i-- {
			u1 := (float64(i) + 0.5) / float64(nSamples)
			u2 := (float64(j) + 0.5) / float64(nSamples)
			light := model.Sample(view, alpha, u1, u2)
			value, pdf := model.Eval(view, light, alpha)
			if pdf > 0 {
				reversed += value / pdf
			}
		}
	}
	reversed /= float64(nSamples * nSamples)

	if math.Abs(forward-reversed) > 1e-12 {
		t.Errorf("norm depends on enumeration order: %g vs %g", forward, reversed)
	}
}

func TestComputeNorm_PositiveAndFinite(t *testing.T) {
	view := core.NewVec3(math.Sin(0.5), 0, math.Cos(0.5))
	models := []brdf.Model{brdf.GGX{}, brdf.Beckmann{}, brdf.DisneyDiffuse{}}

	for _, model := range models {
		for _, alpha := range []float64{0.0001, 0.1, 1.0} {
			norm := ComputeNorm(model, view, alpha, 16)
			if math.IsNaN(norm) || math.IsInf(norm, 0) {
				t.Errorf("%s alpha=%g: norm not finite: %g", model.Name(), alpha, norm)
			}
			if norm <= 0 {
				t.Errorf("%s alpha=%g: norm should be positive, got %g", model.Name(), alpha, norm)
			}
		}
	}
}

func TestComputeAverageDir_InIncidencePlane(t *testing.T) {
	model := brdf.GGX{}
	view := core.NewVec3(math.Sin(1.0), 0, math.Cos(1.0))

	dir := ComputeAverageDir(model, view, 0.25, 16)

	if dir.Y != 0 {
		t.Errorf("average direction must have its Y component cleared, got %g", dir.Y)
	}
	if math.Abs(dir.Length()-1.0) > 1e-9 {
		t.Errorf("average direction should be normalized, length %g", dir.Length())
	}
	if dir.Z <= 0 {
		t.Errorf("average direction should point into the upper hemisphere, got %v", dir)
	}
}

func TestComputeAverageDir_NormalIncidenceIsVertical(t *testing.T) {
	model := brdf.GGX{}
	view := core.NewVec3(0, 0, 1)

	dir := ComputeAverageDir(model, view, 0.5, 16)

	// the stratified azimuths cancel at normal incidence
	if dir.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-6 {
		t.Errorf("expected average direction (0,0,1), got %v", dir)
	}
}

func TestComputeError_RoughNormalBoundaryCase(t *testing.T) {
	// The easy boundary: roughness -> 1 viewed along the normal. A
	// fitted isotropic lobe must reproduce the model almost exactly.
	model := brdf.GGX{}
	view := core.NewVec3(0, 0, 1)
	alpha := 1.0
	nSamples := 32

	lobe := ltc.NewLobe()
	lobe.Amplitude = ComputeNorm(model, view, alpha, nSamples)

	bound := &objective{
		lobe:      lobe,
		model:     model,
		view:      view,
		alpha:     alpha,
		isotropic: true,
		minAlpha:  0.0001,
		nSamples:  nSamples,
	}
	result, fitError := NelderMead(bound.evaluate, []float64{1, 1, 0}, 0.05, 1e-5, 100)
	bound.apply(result)

	if fitError >= 1e-3 {
		t.Errorf("boundary-case fit error %g, expected < 1e-3", fitError)
	}
}

func TestComputeError_PerfectSelfFitIsSmall(t *testing.T) {
	// A Disney lobe at normal incidence is exactly the cosine the
	// identity LTC represents up to the retro-reflection terms, so the
	// untouched identity lobe already scores a small error.
	model := brdf.DisneyDiffuse{}
	view := core.NewVec3(0, 0, 1)
	alpha := 0.0001

	lobe := ltc.NewLobe()
	lobe.Amplitude = ComputeNorm(model, view, alpha, 16)

	errorValue := ComputeError(lobe, model, view, alpha, 16)
	if errorValue >= 1e-3 {
		t.Errorf("identity lobe vs near-cosine model: error %g, expected < 1e-3", errorValue)
	}
}
