package fit

import (
	"github.com/df07/go-ltc-fit/pkg/brdf"
	"github.com/df07/go-ltc-fit/pkg/core"
	"github.com/df07/go-ltc-fit/pkg/ltc"
)

// The estimators integrate over a fixed stratified nSamples*nSamples
// grid of cell centers. No randomness is involved: repeated runs with
// the same inputs produce bit-identical results.

// ComputeNorm estimates the total reflected energy (albedo) of the
// model for the given view direction and roughness. Zero-density
// samples contribute zero.
func ComputeNorm(model brdf.Model, view core.Vec3, alpha float64, nSamples int) float64 {
	norm := 0.0

	for j := 0; j < nSamples; j++ {
		for i := 0; i < nSamples; i++ {
			u1 := (float64(i) + 0.5) / float64(nSamples)
			u2 := (float64(j) + 0.5) / float64(nSamples)

			light := model.Sample(view, alpha, u1, u2)
			value, pdf := model.Eval(view, light, alpha)
			if pdf > 0 {
				norm += value / pdf
			}
		}
	}

	return norm / float64(nSamples*nSamples)
}

// ComputeAverageDir estimates the mean scatter direction of the model,
// weighted by reflectance over density. The Y component is cleared:
// the models are isotropic, so the average lies in the incidence
// plane.
func ComputeAverageDir(model brdf.Model, view core.Vec3, alpha float64, nSamples int) core.Vec3 {
	averageDir := core.NewVec3(0, 0, 0)

	for j := 0; j < nSamples; j++ {
		for i := 0; i < nSamples; i++ {
			u1 := (float64(i) + 0.5) / float64(nSamples)
			u2 := (float64(j) + 0.5) / float64(nSamples)

			light := model.Sample(view, alpha, u1, u2)
			value, pdf := model.Eval(view, light, alpha)
			if pdf > 0 {
				averageDir = averageDir.Add(light.Multiply(value / pdf))
			}
		}
	}

	averageDir.Y = 0
	return averageDir.Normalize()
}

// ComputeError estimates the distance between the lobe and the model
// with a two-strategy multiple importance sampled integrator: each
// stratified pair is drawn once from the lobe and once from the model,
// and each draw contributes the cubed absolute difference weighted by
// the balance heuristic. The cubed metric penalizes large local
// mismatches harder than squared error and is part of the table's
// definition; lower is better, zero is a perfect fit.
func ComputeError(lobe *ltc.Lobe, model brdf.Model, view core.Vec3, alpha float64, nSamples int) float64 {
	errorSum := 0.0

	for j := 0; j < nSamples; j++ {
		for i := 0; i < nSamples; i++ {
			u1 := (float64(i) + 0.5) / float64(nSamples)
			u2 := (float64(j) + 0.5) / float64(nSamples)

			// importance sample the lobe
			{
				light := lobe.Sample(u1, u2)

				valueBrdf, pdfBrdf := model.Eval(view, light, alpha)
				pdfLtc := lobe.Eval(light)
				valueLtc := lobe.Amplitude * pdfLtc

				diff := abs(valueBrdf - valueLtc)
				if sum := pdfLtc + pdfBrdf; sum > 0 {
					errorSum += diff * diff * diff / sum
				}
			}

			// importance sample the model
			{
				light := model.Sample(view, alpha, u1, u2)

				valueBrdf, pdfBrdf := model.Eval(view, light, alpha)
				pdfLtc := lobe.Eval(light)
				valueLtc := lobe.Amplitude * pdfLtc

				diff := abs(valueBrdf - valueLtc)
				if sum := pdfLtc + pdfBrdf; sum > 0 {
					errorSum += diff * diff * diff / sum
				}
			}
		}
	}

	return errorSum / float64(nSamples*nSamples)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
