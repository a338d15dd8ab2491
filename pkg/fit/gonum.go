package fit

import (
	"gonum.org/v1/gonum/optimize"
)

// minimizeGonum delegates the per-cell minimization to gonum's
// Nelder-Mead, selected with Config.Method = "gonum". The built-in
// simplex is the reference; this path exists for cross-checking fits
// against an independent implementation.
func minimizeGonum(objective func([]float64) float64, start []float64, tolerance float64, maxIterations int) ([]float64, float64) {
	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{
		MajorIterations: maxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   tolerance,
			Iterations: maxIterations,
		},
	}

	initial := append([]float64(nil), start...)
	result, err := optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	if result == nil || err != nil && len(result.X) == 0 {
		// best-effort contract: keep the warm start if gonum bails out
		return append([]float64(nil), start...), objective(start)
	}
	return result.X, result.F
}
