package fractal

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/avdva/widefix"
)

// PushConstants is the parameter block of the fractal compute shader.
// Fixed values are passed as raw words, see widefix.Fixed.MarshalBinary.
type PushConstants struct {
	C            [2]float32
	Scale        widefix.Fixed
	TranslationX widefix.Fixed
	TranslationY widefix.Fixed
	EndColor     Color
	PaletteSize  int32
	MaxIters     int32
	IsJulia      uint32
}

// Layout holds byte offsets of PushConstants fields in the std430 layout.
type Layout struct {
	C, Scale, TranslationX, TranslationY int
	EndColor                             int
	PaletteSize, MaxIters, IsJulia       int
	Size                                 int
}

// Offsets returns the std430 layout of the block.
// uint arrays are 4-aligned, EndColor as a vec4 is 16-aligned, so there is
// a padding before it when Size words do not end on a 16 byte boundary.
func Offsets() Layout {
	var l Layout
	l.C = 0
	l.Scale = l.C + 8
	l.TranslationX = l.Scale + widefix.BinarySize
	l.TranslationY = l.TranslationX + widefix.BinarySize
	l.EndColor = align(l.TranslationY+widefix.BinarySize, 16)
	l.PaletteSize = l.EndColor + 16
	l.MaxIters = l.PaletteSize + 4
	l.IsJulia = l.MaxIters + 4
	l.Size = l.IsJulia + 4
	return l
}

func align(off, to int) int {
	return (off + to - 1) / to * to
}

// NewPushConstants fills the block for given options.
func NewPushConstants(o RenderOptions) PushConstants {
	pc := PushConstants{
		C:            [2]float32{o.C.X.Float32(), o.C.Y.Float32()},
		Scale:        o.View.Scale,
		TranslationX: o.View.Center.X,
		TranslationY: o.View.Center.Y,
		EndColor:     o.EndColor,
		PaletteSize:  int32(len(o.Palette)),
		MaxIters:     int32(o.MaxIters),
	}
	if o.Julia {
		pc.IsJulia = 1
	}
	return pc
}

// MarshalBinary packs the block in native byte order, padding with zeroes.
func (pc PushConstants) MarshalBinary() ([]byte, error) {
	l := Offsets()
	b := make([]byte, 0, l.Size)
	b = appendFloat32(b, pc.C[:]...)
	for _, f := range []widefix.Fixed{pc.Scale, pc.TranslationX, pc.TranslationY} {
		var err error
		if b, err = f.AppendBinary(b); err != nil {
			return nil, err
		}
	}
	b = append(b, make([]byte, l.EndColor-len(b))...)
	b = appendFloat32(b, pc.EndColor[:]...)
	b = binary.NativeEndian.AppendUint32(b, uint32(pc.PaletteSize))
	b = binary.NativeEndian.AppendUint32(b, uint32(pc.MaxIters))
	b = binary.NativeEndian.AppendUint32(b, pc.IsJulia)
	return b, nil
}

// UnmarshalBinary unpacks a block written by MarshalBinary.
func (pc *PushConstants) UnmarshalBinary(data []byte) error {
	l := Offsets()
	if len(data) != l.Size {
		return fmt.Errorf("invalid push constants length %d, want %d", len(data), l.Size)
	}
	for i := range pc.C {
		pc.C[i] = float32At(data, l.C+4*i)
	}
	for _, f := range []struct {
		off int
		dst *widefix.Fixed
	}{
		{l.Scale, &pc.Scale},
		{l.TranslationX, &pc.TranslationX},
		{l.TranslationY, &pc.TranslationY},
	} {
		if err := f.dst.UnmarshalBinary(data[f.off : f.off+widefix.BinarySize]); err != nil {
			return err
		}
	}
	for i := range pc.EndColor {
		pc.EndColor[i] = float32At(data, l.EndColor+4*i)
	}
	pc.PaletteSize = int32(binary.NativeEndian.Uint32(data[l.PaletteSize:]))
	pc.MaxIters = int32(binary.NativeEndian.Uint32(data[l.MaxIters:]))
	pc.IsJulia = binary.NativeEndian.Uint32(data[l.IsJulia:])
	return nil
}

func appendFloat32(b []byte, values ...float32) []byte {
	for _, v := range values {
		b = binary.NativeEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

func float32At(data []byte, off int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(data[off:]))
}
