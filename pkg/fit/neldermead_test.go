package fit

import (
	"math"
	"testing"
)

// quadratic3 has its unique minimum at (1, -0.5, 2)
func quadratic3(x []float64) float64 {
	dx := x[0] - 1.0
	dy := x[1] + 0.5
	dz := x[2] - 2.0
	return dx*dx + 2.0*dy*dy + 0.5*dz*dz
}

func TestNelderMead_ConvexQuadratic(t *testing.T) {
	expected := []float64{1, -0.5, 2}
	starts := [][]float64{
		{0, 0, 0},
		{5, 5, 5},
		{-3, 2, 10},
		{1.01, -0.49, 2.01},
	}

	for _, start := range starts {
		result, value := NelderMead(quadratic3, start, 0.05, 1e-9, 2000)

		distance := 0.0
		for i := range result {
			d := result[i] - expected[i]
			distance += d * d
		}
		distance = math.Sqrt(distance)

		if distance > 1e-3 {
			t.Errorf("start %v: minimum %v is %g away from %v", start, result, distance, expected)
		}
		if value > 1e-6 {
			t.Errorf("start %v: objective %g should be near zero", start, value)
		}
	}
}

func TestNelderMead_IterationCapIsNotAnError(t *testing.T) {
	start := []float64{10, 10, 10}
	result, value := NelderMead(quadratic3, start, 0.05, 1e-12, 3)

	if len(result) != 3 {
		t.Fatalf("expected a 3-vector back, got %v", result)
	}
	// best-effort: never worse than the start point
	if value > quadratic3(start) {
		t.Errorf("capped result %g worse than start %g", value, quadratic3(start))
	}
}

func TestNelderMead_DimensionGeneric(t *testing.T) {
	// 1-D and 5-D objectives through the same routine
	oneD := func(x []float64) float64 { return (x[0] - 3) * (x[0] - 3) }
	result, _ := NelderMead(oneD, []float64{0}, 0.05, 1e-10, 2000)
	if math.Abs(result[0]-3) > 1e-3 {
		t.Errorf("1-D minimum: got %g, expected 3", result[0])
	}

	fiveD := func(x []float64) float64 {
		sum := 0.0
		for i, xi := range x {
			d := xi - float64(i)
			sum += d * d
		}
		return sum
	}
	result, _ = NelderMead(fiveD, make([]float64, 5), 0.05, 1e-10, 5000)
	for i, xi := range result {
		if math.Abs(xi-float64(i)) > 1e-2 {
			t.Errorf("5-D minimum component %d: got %g, expected %d", i, xi, i)
		}
	}
}

func TestNelderMead_Deterministic(t *testing.T) {
	start := []float64{4, -4, 4}
	first, firstValue := NelderMead(quadratic3, start, 0.05, 1e-9, 500)
	second, secondValue := NelderMead(quadratic3, start, 0.05, 1e-9, 500)

	if firstValue != secondValue {
		t.Errorf("values differ across runs: %g vs %g", firstValue, secondValue)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("component %d differs across runs: %g vs %g", i, first[i], second[i])
		}
	}
}

func TestMinimizeGonum_ConvexQuadratic(t *testing.T) {
	result, value := minimizeGonum(quadratic3, []float64{0, 0, 0}, 1e-10, 2000)

	expected := []float64{1, -0.5, 2}
	for i := range result {
		if math.Abs(result[i]-expected[i]) > 1e-3 {
			t.Errorf("component %d: got %g, expected %g", i, result[i], expected[i])
		}
	}
	if value > 1e-6 {
		t.Errorf("objective %g should be near zero", value)
	}
}
