package fit

// PackedTable is the render-time representation of a fitted table:
// per cell, the five independent terms of the rescaled inverse
// transform split across two texture channels, plus the amplitude.
type PackedTable struct {
	N    int
	Tex1 [][4]float64
	Tex2 [][2]float64
}

// Pack rewrites each fitted matrix into the terms a shader needs to
// reconstruct its inverse. The fitted matrices have a known sparsity
// pattern, so the rescaled inverse is closed-form:
//
//	a 0 b   inverse   c*e     0     -b*c
//	0 c 0     ==>      0  a*e - b*d   0
//	d 0 e            -c*d     0      a*c
func Pack(table *Table) *PackedTable {
	packed := &PackedTable{
		N:    table.N,
		Tex1: make([][4]float64, table.N*table.N),
		Tex2: make([][2]float64, table.N*table.N),
	}

	for i := range table.Matrices {
		m := &table.Matrices[i]

		a := m.M[0][0]
		b := m.M[0][2]
		c := m.M[1][1]
		d := m.M[2][0]
		e := m.M[2][2]

		packed.Tex1[i] = [4]float64{c * e, -b * c, a*e - b*d, -c * d}
		packed.Tex2[i] = [2]float64{a * c, table.Amplitude[i]}
	}

	return packed
}
