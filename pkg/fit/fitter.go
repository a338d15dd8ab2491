package fit

import (
	"fmt"
	"io"
	"math"

	"github.com/df07/go-ltc-fit/pkg/brdf"
	"github.com/df07/go-ltc-fit/pkg/core"
	"github.com/df07/go-ltc-fit/pkg/ltc"
)

// Table is the fitted lookup grid: one transform matrix and one
// amplitude per (roughness bucket a, view-angle bucket t) cell,
// indexed a + t*N. Fully populated by FitTable and immutable after.
type Table struct {
	N         int
	Matrices  []core.Mat3
	Amplitude []float64
}

// Index returns the flat index of cell (a, t)
func (table *Table) Index(a, t int) int {
	return a + t*table.N
}

// warmStart is the explicit seed for one cell's fit: the three free
// scalars, the lobe frame, and whether the search is constrained to
// the isotropic sub-case. The driver derives it from the previously
// completed cells, so the warm-start dependency lives in the call
// signature rather than in hidden lobe mutation.
type warmStart struct {
	m11, m22, m13 float64
	x, y, z       core.Vec3
	isotropic     bool
}

// objective binds the error estimator to one cell: the model, the
// view direction, the cell roughness and the isotropy constraint. It
// lives for a single minimizer invocation.
type objective struct {
	lobe      *ltc.Lobe
	model     brdf.Model
	view      core.Vec3
	alpha     float64
	isotropic bool
	minAlpha  float64
	nSamples  int
}

// apply writes a parameter vector into the lobe, flooring the scales
// and collapsing to the isotropic sub-case when constrained
func (o *objective) apply(params []float64) {
	m11 := math.Max(params[0], o.minAlpha)
	m22 := math.Max(params[1], o.minAlpha)
	m13 := params[2]

	if o.isotropic {
		o.lobe.M11 = m11
		o.lobe.M22 = m11
		o.lobe.M13 = 0
	} else {
		o.lobe.M11 = m11
		o.lobe.M22 = m22
		o.lobe.M13 = m13
	}
	o.lobe.Update()
}

// evaluate is the scalar objective the minimizer drives to zero
func (o *objective) evaluate(params []float64) float64 {
	o.apply(params)
	return ComputeError(o.lobe, o.model, o.view, o.alpha, o.nSamples)
}

// Fitter runs the grid traversal for one reflectance model. Progress,
// when set, receives per-cell diagnostics; it carries no contractual
// meaning.
type Fitter struct {
	Model    brdf.Model
	Config   Config
	Progress io.Writer
}

// NewFitter creates a fitter with a validated copy of the config
func NewFitter(model brdf.Model, config Config) *Fitter {
	config.Validate()
	return &Fitter{Model: model, Config: config}
}

// FitTable fits every cell of the table. The traversal runs a from
// N-1 down to 0 and, within each a, t from N-1 down to 0. The order
// is load-bearing: each interior cell is seeded with the scales the
// previous cell converged to, and each grazing-angle cell with the
// edge fit of the next-rougher bucket, so the warm-start chain only
// exists along this exact order. Every cell is attempted exactly
// once and the minimizer's best-effort result is accepted
// unconditionally.
func (f *Fitter) FitTable() *Table {
	n := f.Config.N
	table := &Table{
		N:         n,
		Matrices:  make([]core.Mat3, n*n),
		Amplitude: make([]float64, n*n),
	}

	// scales/skew the previously processed cell converged to
	previous := [3]float64{1, 1, 0}

	div := float64(max(1, n-1))

	for a := n - 1; a >= 0; a-- {
		for t := n - 1; t >= 0; t-- {
			// view angle parameterized by cos(theta), clamped short of
			// grazing; alpha = roughness^2, floored
			cosTheta := float64(t) / div
			theta := math.Min(1.57, math.Acos(cosTheta))
			view := core.NewVec3(math.Sin(theta), 0, math.Cos(theta))

			roughness := float64(a) / div
			alpha := math.Max(roughness*roughness, f.Config.MinAlpha)

			f.logf("a = %d\t t = %d\n", a, t)
			f.logf("alpha = %g\t theta = %g\n\n", alpha, theta)

			amplitude := ComputeNorm(f.Model, view, alpha, f.Config.NSamples)
			averageDir := ComputeAverageDir(f.Model, view, alpha, f.Config.NSamples)

			seed := f.seedCell(table, previous, a, t, averageDir)
			lobe := f.fitCell(seed, amplitude, view, alpha)

			index := table.Index(a, t)
			table.Matrices[index] = lobe.M
			table.Amplitude[index] = lobe.Amplitude

			// the parameterization keeps these entries structurally
			// zero; clear any drift the minimizer introduced
			table.Matrices[index].M[0][1] = 0
			table.Matrices[index].M[1][0] = 0
			table.Matrices[index].M[1][2] = 0
			table.Matrices[index].M[2][1] = 0

			previous = [3]float64{lobe.M11, lobe.M22, lobe.M13}

			f.logMatrix(table.Matrices[index])
		}
	}

	return table
}

// seedCell builds the explicit warm start for cell (a, t).
//
// At the grazing-angle column (t == N-1) the lobe is rotationally
// symmetric: identity frame, isotropic constraint, and scales taken
// from a fixed 1 at the roughest cell or from the completed edge fit
// of the next-rougher bucket. Interior cells re-orient the frame
// around the average scatter direction but deliberately keep the
// previous cell's scales and skew untouched.
func (f *Fitter) seedCell(table *Table, previous [3]float64, a, t int, averageDir core.Vec3) warmStart {
	n := f.Config.N

	if t == n-1 {
		seed := warmStart{
			x:         core.NewVec3(1, 0, 0),
			y:         core.NewVec3(0, 1, 0),
			z:         core.NewVec3(0, 0, 1),
			m13:       0,
			isotropic: true,
		}
		if a == n-1 {
			seed.m11 = 1
			seed.m22 = 1
		} else {
			edge := table.Index(a+1, t)
			seed.m11 = math.Max(table.Matrices[edge].M[0][0], f.Config.MinAlpha)
			seed.m22 = math.Max(table.Matrices[edge].M[1][1], f.Config.MinAlpha)
		}
		return seed
	}

	return warmStart{
		x:         core.NewVec3(averageDir.Z, 0, -averageDir.X),
		y:         core.NewVec3(0, 1, 0),
		z:         averageDir,
		m11:       previous[0],
		m22:       previous[1],
		m13:       previous[2],
		isotropic: false,
	}
}

// fitCell builds a lobe from the warm start and refines its free
// scalars against the error estimator
func (f *Fitter) fitCell(seed warmStart, amplitude float64, view core.Vec3, alpha float64) *ltc.Lobe {
	lobe := ltc.NewLobe()
	lobe.Amplitude = amplitude
	lobe.M11 = seed.m11
	lobe.M22 = seed.m22
	lobe.M13 = seed.m13
	lobe.X = seed.x
	lobe.Y = seed.y
	lobe.Z = seed.z
	lobe.Update()

	bound := &objective{
		lobe:      lobe,
		model:     f.Model,
		view:      view,
		alpha:     alpha,
		isotropic: seed.isotropic,
		minAlpha:  f.Config.MinAlpha,
		nSamples:  f.Config.NSamples,
	}

	start := []float64{seed.m11, seed.m22, seed.m13}
	result, _ := f.minimize(bound.evaluate, start)

	// leave the lobe at the best point found
	bound.apply(result)
	return lobe
}

// minimize dispatches to the configured minimizer
func (f *Fitter) minimize(objective func([]float64) float64, start []float64) ([]float64, float64) {
	if f.Config.Method == MethodGonum {
		return minimizeGonum(objective, start, f.Config.Tolerance, f.Config.MaxIterations)
	}
	return NelderMead(objective, start, f.Config.Epsilon, f.Config.Tolerance, f.Config.MaxIterations)
}

func (f *Fitter) logf(format string, args ...any) {
	if f.Progress != nil {
		fmt.Fprintf(f.Progress, format, args...)
	}
}

func (f *Fitter) logMatrix(m core.Mat3) {
	if f.Progress == nil {
		return
	}
	for row := 0; row < 3; row++ {
		fmt.Fprintf(f.Progress, "%g\t %g\t %g\n", m.M[row][0], m.M[row][1], m.M[row][2])
	}
	fmt.Fprintln(f.Progress)
}
