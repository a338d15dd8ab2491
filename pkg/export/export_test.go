package export

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-ltc-fit/pkg/core"
	"github.com/df07/go-ltc-fit/pkg/fit"
)

func sampleTable(n int) *fit.Table {
	table := &fit.Table{
		N:         n,
		Matrices:  make([]core.Mat3, n*n),
		Amplitude: make([]float64, n*n),
	}
	for i := range table.Matrices {
		table.Matrices[i] = core.Mat3{M: [3][3]float64{
			{0.5 + 0.1*float64(i), 0, 0.05},
			{0, 0.5, 0},
			{-0.02, 0, 1},
		}}
		table.Amplitude[i] = 0.9
	}
	return table
}

func TestWriteMatlab(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMatlab(&buf, sampleTable(2)); err != nil {
		t.Fatalf("WriteMatlab failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "num = 2;") {
		t.Error("missing table size definition")
	}
	if !strings.Contains(out, "tabM = [") || !strings.Contains(out, "tabAmplitude = [") {
		t.Error("missing table arrays")
	}
	if strings.Count(out, "\n") < 2*2+4 {
		t.Error("output looks truncated")
	}
}

func TestWriteC(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteC(&buf, sampleTable(2)); err != nil {
		t.Fatalf("WriteC failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "static const int size = 2;") {
		t.Error("missing size constant")
	}
	if !strings.Contains(out, "static const float tabM[2*2*9]") ||
		!strings.Contains(out, "static const float tabAmplitude[2*2]") {
		t.Error("missing array declarations")
	}
}

func TestWriteJS(t *testing.T) {
	packed := fit.Pack(sampleTable(2))

	var buf bytes.Buffer
	if err := WriteJS(&buf, packed); err != nil {
		t.Fatalf("WriteJS failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "var g_ltc_1 = [") || !strings.Contains(out, "var g_ltc_2 = [") {
		t.Error("missing JS arrays")
	}
}

func TestWriteDDS(t *testing.T) {
	n := 2
	packed := fit.Pack(sampleTable(n))

	var tex1, tex2 bytes.Buffer
	if err := WriteDDS(&tex1, &tex2, packed); err != nil {
		t.Fatalf("WriteDDS failed: %v", err)
	}

	// 128-byte header + payload
	if got, want := tex1.Len(), 128+n*n*16; got != want {
		t.Errorf("tex1 size: got %d, want %d", got, want)
	}
	if got, want := tex2.Len(), 128+n*n*8; got != want {
		t.Errorf("tex2 size: got %d, want %d", got, want)
	}

	for name, buf := range map[string]*bytes.Buffer{"tex1": &tex1, "tex2": &tex2} {
		if !bytes.HasPrefix(buf.Bytes(), []byte("DDS ")) {
			t.Errorf("%s: missing DDS magic", name)
		}
		width := binary.LittleEndian.Uint32(buf.Bytes()[16:20])
		if width != uint32(n) {
			t.Errorf("%s: header width %d, want %d", name, width, n)
		}
	}

	// first payload float of tex1 is t0 = c*e of cell 0
	first := math.Float32frombits(binary.LittleEndian.Uint32(tex1.Bytes()[128:132]))
	if want := float32(packed.Tex1[0][0]); first != want {
		t.Errorf("first texel: got %g, want %g", first, want)
	}
}

func TestWritePNG(t *testing.T) {
	packed := fit.Pack(sampleTable(4))

	var buf bytes.Buffer
	if err := WritePNG(&buf, packed); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("expected 4x4 image, got %v", img.Bounds())
	}
}
