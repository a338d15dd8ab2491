package fit

// NelderMead minimizes an objective over a parameter vector of any
// small dimension with the classic derivative-free simplex search.
// The search starts from start, perturbed by epsilon along each axis,
// and stops once the simplex extent drops below tolerance or after
// maxIterations, whichever comes first. Hitting the cap is not a
// failure: the best point found so far and its value are returned.
func NelderMead(objective func([]float64) float64, start []float64, epsilon, tolerance float64, maxIterations int) ([]float64, float64) {
	n := len(start)

	// initial simplex: the start point plus one axis perturbation per
	// dimension
	simplex := make([][]float64, n+1)
	values := make([]float64, n+1)
	simplex[0] = append([]float64(nil), start...)
	values[0] = objective(simplex[0])
	for i := 1; i <= n; i++ {
		simplex[i] = append([]float64(nil), start...)
		simplex[i][i-1] += epsilon
		values[i] = objective(simplex[i])
	}

	centroid := make([]float64, n)
	reflected := make([]float64, n)
	trial := make([]float64, n)

	for iteration := 0; iteration < maxIterations; iteration++ {
		sortSimplex(simplex, values)

		if simplexExtent(simplex) < tolerance {
			break
		}

		// centroid of all vertices except the worst
		for j := 0; j < n; j++ {
			centroid[j] = 0
			for i := 0; i < n; i++ {
				centroid[j] += simplex[i][j]
			}
			centroid[j] /= float64(n)
		}
		worst := simplex[n]

		// reflection
		for j := 0; j < n; j++ {
			reflected[j] = centroid[j] + (centroid[j] - worst[j])
		}
		reflectedValue := objective(reflected)

		switch {
		case reflectedValue < values[0]:
			// expansion
			for j := 0; j < n; j++ {
				trial[j] = centroid[j] + 2.0*(centroid[j]-worst[j])
			}
			trialValue := objective(trial)
			if trialValue < reflectedValue {
				copy(simplex[n], trial)
				values[n] = trialValue
			} else {
				copy(simplex[n], reflected)
				values[n] = reflectedValue
			}

		case reflectedValue < values[n-1]:
			copy(simplex[n], reflected)
			values[n] = reflectedValue

		default:
			// contraction, toward the reflected point if it improved on
			// the worst, toward the worst otherwise
			if reflectedValue < values[n] {
				for j := 0; j < n; j++ {
					trial[j] = centroid[j] + 0.5*(reflected[j]-centroid[j])
				}
			} else {
				for j := 0; j < n; j++ {
					trial[j] = centroid[j] + 0.5*(worst[j]-centroid[j])
				}
			}
			trialValue := objective(trial)

			if trialValue < values[n] && trialValue < reflectedValue {
				copy(simplex[n], trial)
				values[n] = trialValue
			} else {
				// shrink everything toward the best vertex
				for i := 1; i <= n; i++ {
					for j := 0; j < n; j++ {
						simplex[i][j] = simplex[0][j] + 0.5*(simplex[i][j]-simplex[0][j])
					}
					values[i] = objective(simplex[i])
				}
			}
		}
	}

	sortSimplex(simplex, values)
	return append([]float64(nil), simplex[0]...), values[0]
}

// sortSimplex orders vertices by ascending objective value. Insertion
// sort keeps equal-value ordering stable so runs are deterministic.
func sortSimplex(simplex [][]float64, values []float64) {
	for i := 1; i < len(simplex); i++ {
		vertex, value := simplex[i], values[i]
		j := i - 1
		for j >= 0 && values[j] > value {
			simplex[j+1], values[j+1] = simplex[j], values[j]
			j--
		}
		simplex[j+1], values[j+1] = vertex, value
	}
}

// simplexExtent is the largest coordinate distance from the best
// vertex to any other vertex
func simplexExtent(simplex [][]float64) float64 {
	extent := 0.0
	best := simplex[0]
	for i := 1; i < len(simplex); i++ {
		for j := range best {
			if d := abs(simplex[i][j] - best[j]); d > extent {
				extent = d
			}
		}
	}
	return extent
}
