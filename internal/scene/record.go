package scene

import (
	"encoding/binary"
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/x448/float16"
)

// Kind is the type tag in word 0 of a record.
type Kind uint32

const (
	KindSphere Kind = 1
	KindBox    Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("kind(%d)", uint32(k))
	}
}

const (
	// RecordWords is the width of one primitive record in 32-bit words.
	RecordWords = 19

	// FormatVersion identifies the record layout. It is compiled into the
	// shader as SCENE_FORMAT_VERSION; the word stream carries no header.
	FormatVersion = 1
)

// Record layout, by slice index:
//
//	0      kind
//	1-12   model matrix (0,0)(0,1)(0,2)(1,0)(1,1)(1,2)(2,0)(2,1)(2,2)(3,0)(3,1)(3,2)
//	13-15  color r, g, b
//	16     metal (0 or 1)
//	17     dielectric (0 or 1)
//	18     roughness in the low half, ior in the high half (binary16 each)
//
// Floats other than word 18 are IEEE-754 binary32 bit patterns. The shader
// unpacks word 18 with unpackHalf2x16.
var matrixEntries = [12][2]int{
	{0, 0}, {0, 1}, {0, 2},
	{1, 0}, {1, 1}, {1, 2},
	{2, 0}, {2, 1}, {2, 2},
	{3, 0}, {3, 1}, {3, 2},
}

func appendRecord(dst []uint32, kind Kind, t Transform, m Material) []uint32 {
	model := t.ModelMatrix()

	dst = append(dst, uint32(kind))
	for _, e := range matrixEntries {
		dst = append(dst, gomath.Float32bits(model.At(e[0], e[1])))
	}
	return append(dst,
		gomath.Float32bits(m.Color[0]),
		gomath.Float32bits(m.Color[1]),
		gomath.Float32bits(m.Color[2]),
		boolWord(m.Metal),
		boolWord(m.Dielectric),
		packHalves(m.Roughness, m.IOR),
	)
}

// packHalves matches GLSL packHalf2x16(vec2(lo, hi)).
func packHalves(lo, hi float32) uint32 {
	return uint32(float16.Fromfloat32(lo).Bits()) | uint32(float16.Fromfloat32(hi).Bits())<<16
}

func unpackHalves(w uint32) (lo, hi float32) {
	return float16.Frombits(uint16(w)).Float32(), float16.Frombits(uint16(w >> 16)).Float32()
}

func boolWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Record is one decoded primitive record. Roughness and IOR come back at
// half precision.
type Record struct {
	Kind     Kind
	Matrix   [12]float32 // entries in record order
	Material Material
}

// At returns model matrix entry (row, col) for the rows and columns the
// record carries. The omitted fourth column is [0 0 0 1].
func (r Record) At(row, col int) float32 {
	if col == 3 {
		if row == 3 {
			return 1
		}
		return 0
	}
	return r.Matrix[row*3+col]
}

// Translation returns the bottom row of the model matrix.
func (r Record) Translation() mgl32.Vec3 {
	return mgl32.Vec3{r.Matrix[9], r.Matrix[10], r.Matrix[11]}
}

// DecodeRecords splits a scene buffer into records. The buffer length must
// be a multiple of RecordWords.
func DecodeRecords(words []uint32) ([]Record, error) {
	if len(words)%RecordWords != 0 {
		return nil, fmt.Errorf("scene buffer has %d words, not a multiple of %d", len(words), RecordWords)
	}

	records := make([]Record, 0, len(words)/RecordWords)
	for off := 0; off < len(words); off += RecordWords {
		w := words[off : off+RecordWords]
		r := Record{Kind: Kind(w[0])}
		for i := range r.Matrix {
			r.Matrix[i] = gomath.Float32frombits(w[1+i])
		}
		roughness, ior := unpackHalves(w[18])
		r.Material = Material{
			Color: mgl32.Vec3{
				gomath.Float32frombits(w[13]),
				gomath.Float32frombits(w[14]),
				gomath.Float32frombits(w[15]),
			},
			Roughness:  roughness,
			Metal:      w[16] != 0,
			Dielectric: w[17] != 0,
			IOR:        ior,
		}
		records = append(records, r)
	}
	return records, nil
}

// RecordCount returns how many whole records words holds.
func RecordCount(words []uint32) int {
	return len(words) / RecordWords
}

// Fit cuts words to at most maxWords, dropping whole trailing records.
// It reports whether anything was dropped.
func Fit(words []uint32, maxWords int) ([]uint32, bool) {
	if len(words) <= maxWords {
		return words, false
	}
	n := max(maxWords, 0) / RecordWords * RecordWords
	return words[:n], true
}

// Bytes returns words as a little-endian byte stream, the layout uploaded to
// the GPU.
func Bytes(words []uint32) []byte {
	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}
