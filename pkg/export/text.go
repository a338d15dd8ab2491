// Package export writes a fitted LTC table to the formats downstream
// consumers read: a MATLAB table, a C header, a JS module, binary DDS
// float textures and a quick-look PNG. Writers only consume completed
// tables; they never touch fitting state.
package export

import (
	"fmt"
	"io"

	"github.com/df07/go-ltc-fit/pkg/fit"
)

// WriteMatlab writes the raw matrices and amplitudes as a MATLAB
// script defining tabM (N*N x 9, row-major) and tabAmplitude (N*N x 1)
func WriteMatlab(w io.Writer, table *fit.Table) error {
	if _, err := fmt.Fprintf(w, "num = %d;\n\ntabM = [\n", table.N); err != nil {
		return err
	}
	for i := range table.Matrices {
		m := &table.Matrices[i]
		_, err := fmt.Fprintf(w, "%g %g %g %g %g %g %g %g %g\n",
			m.M[0][0], m.M[0][1], m.M[0][2],
			m.M[1][0], m.M[1][1], m.M[1][2],
			m.M[2][0], m.M[2][1], m.M[2][2])
		if err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "];\n\ntabAmplitude = [\n"); err != nil {
		return err
	}
	for _, amplitude := range table.Amplitude {
		if _, err := fmt.Fprintf(w, "%g\n", amplitude); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "];\n")
	return err
}

// WriteC writes the table as a C header embedding the same constants
func WriteC(w io.Writer, table *fit.Table) error {
	if _, err := fmt.Fprintf(w, "static const int size = %d;\n\nstatic const float tabM[%d*%d*9] = {\n", table.N, table.N, table.N); err != nil {
		return err
	}
	for i := range table.Matrices {
		m := &table.Matrices[i]
		_, err := fmt.Fprintf(w, "%gf, %gf, %gf, %gf, %gf, %gf, %gf, %gf, %gf,\n",
			m.M[0][0], m.M[0][1], m.M[0][2],
			m.M[1][0], m.M[1][1], m.M[1][2],
			m.M[2][0], m.M[2][1], m.M[2][2])
		if err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "};\n\nstatic const float tabAmplitude[%d*%d] = {\n", table.N, table.N); err != nil {
		return err
	}
	for _, amplitude := range table.Amplitude {
		if _, err := fmt.Fprintf(w, "%gf,\n", amplitude); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "};\n")
	return err
}

// WriteJS writes the packed textures as JS arrays, four floats per
// texel in each
func WriteJS(w io.Writer, packed *fit.PackedTable) error {
	if _, err := fmt.Fprint(w, "var g_ltc_1 = [\n"); err != nil {
		return err
	}
	for _, texel := range packed.Tex1 {
		if _, err := fmt.Fprintf(w, "%g, %g, %g, %g,\n", texel[0], texel[1], texel[2], texel[3]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "];\n\nvar g_ltc_2 = [\n"); err != nil {
		return err
	}
	for _, texel := range packed.Tex2 {
		if _, err := fmt.Fprintf(w, "%g, %g, 0, 0,\n", texel[0], texel[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "];\n")
	return err
}
