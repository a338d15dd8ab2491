package export

import (
	"encoding/binary"
	"io"

	"github.com/df07/go-ltc-fit/pkg/fit"
)

// DDS header constants (uncompressed FOURCC float formats)
const (
	ddsMagic = 0x20534444 // "DDS "

	ddsdCaps        = 0x1
	ddsdHeight      = 0x2
	ddsdWidth       = 0x4
	ddsdPitch       = 0x8
	ddsdPixelFormat = 0x1000

	ddpfFourCC = 0x4

	ddscapsTexture = 0x1000

	fourCCG32R32F       = 115
	fourCCA32B32G32R32F = 116
)

// WriteDDS writes the two packed texture channels as DDS float
// images: tex1 as a four-channel float texture, tex2 as two-channel
func WriteDDS(tex1, tex2 io.Writer, packed *fit.PackedTable) error {
	if err := writeDDSHeader(tex1, packed.N, fourCCA32B32G32R32F, packed.N*16); err != nil {
		return err
	}
	for _, texel := range packed.Tex1 {
		for _, value := range texel {
			if err := binary.Write(tex1, binary.LittleEndian, float32(value)); err != nil {
				return err
			}
		}
	}

	if err := writeDDSHeader(tex2, packed.N, fourCCG32R32F, packed.N*8); err != nil {
		return err
	}
	for _, texel := range packed.Tex2 {
		for _, value := range texel {
			if err := binary.Write(tex2, binary.LittleEndian, float32(value)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDDSHeader(w io.Writer, n, fourCC, pitch int) error {
	header := make([]uint32, 32)
	header[0] = ddsMagic
	header[1] = 124 // structure size
	header[2] = ddsdCaps | ddsdHeight | ddsdWidth | ddsdPitch | ddsdPixelFormat
	header[3] = uint32(n) // height
	header[4] = uint32(n) // width
	header[5] = uint32(pitch)
	// depth, mipmaps and the reserved block stay zero
	header[19] = 32 // pixel format structure size
	header[20] = ddpfFourCC
	header[21] = uint32(fourCC)
	header[27] = ddscapsTexture

	return binary.Write(w, binary.LittleEndian, header)
}
