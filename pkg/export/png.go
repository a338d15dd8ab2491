package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-ltc-fit/pkg/fit"
)

// WritePNG writes a quick-look visualization of the packed table: the
// four tex1 terms mapped to RGBA over the (roughness, angle) grid.
// Diagnostic only; the DDS output is the authoritative binary form.
func WritePNG(w io.Writer, packed *fit.PackedTable) error {
	img := image.NewRGBA(image.Rect(0, 0, packed.N, packed.N))

	for t := 0; t < packed.N; t++ {
		for a := 0; a < packed.N; a++ {
			texel := packed.Tex1[a+t*packed.N]
			img.SetRGBA(a, t, color.RGBA{
				R: toByte(texel[0]),
				G: toByte(texel[1]),
				B: toByte(texel[2]),
				A: toByte(texel[3]),
			})
		}
	}

	return png.Encode(w, img)
}

// toByte maps a signed table term into [0,255] around a mid-gray zero
func toByte(v float64) uint8 {
	scaled := 0.5 + 0.5*v
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 1 {
		scaled = 1
	}
	return uint8(scaled * 255)
}
