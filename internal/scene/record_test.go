package scene

import (
	"encoding/binary"
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveRecordShape(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		kind Kind
	}{
		{"sphere", NewSphere(IdentityTransform(), Matte(mgl32.Vec3{1, 0, 0})), KindSphere},
		{"box", NewBox(IdentityTransform(), Metallic(mgl32.Vec3{0.5, 0.5, 0.5}, 0.3)), KindBox},
		{"glass box", NewBox(IdentityTransform(), Glass(1.5)), KindBox},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := tt.obj.Encode()
			require.Len(t, words, RecordWords)
			assert.Equal(t, uint32(tt.kind), words[0])
			assert.Contains(t, []uint32{0, 1}, words[16])
			assert.Contains(t, []uint32{0, 1}, words[17])
		})
	}
}

func TestRecordFlagsAreNotValidated(t *testing.T) {
	m := Material{Color: mgl32.Vec3{2, -1, 0}, Metal: true, Dielectric: true, IOR: 1.5}
	words := NewSphere(IdentityTransform(), m).Encode()

	assert.Equal(t, uint32(1), words[16])
	assert.Equal(t, uint32(1), words[17])
	assert.Equal(t, gomath.Float32bits(2), words[13])
	assert.Equal(t, gomath.Float32bits(-1), words[14])
}

func TestRecordWordPositions(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{})
	m := Material{Color: mgl32.Vec3{0.25, 0.5, 0.75}, Roughness: 0.5, Dielectric: true, IOR: 1.5}
	words := NewBox(tr, m).Encode()

	// Identity rotation and unit scale leave the 3x3 block as identity.
	identity := []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i, want := range identity {
		assert.Equal(t, gomath.Float32bits(want), words[1+i], "matrix word %d", 1+i)
	}
	assert.Equal(t, gomath.Float32bits(1), words[10])
	assert.Equal(t, gomath.Float32bits(2), words[11])
	assert.Equal(t, gomath.Float32bits(3), words[12])

	assert.Equal(t, gomath.Float32bits(0.25), words[13])
	assert.Equal(t, gomath.Float32bits(0.5), words[14])
	assert.Equal(t, gomath.Float32bits(0.75), words[15])
	assert.Equal(t, uint32(0), words[16])
	assert.Equal(t, uint32(1), words[17])

	// 0.5 and 1.5 are exact in binary16: 0x3800 and 0x3E00.
	assert.Equal(t, uint32(0x3E003800), words[18])
}

func TestRoughnessAndIORAreHalfPrecision(t *testing.T) {
	m := Material{Color: mgl32.Vec3{0.1, 0.2, 0.3}, Roughness: 0.37, Dielectric: true, IOR: 1.45}
	words := NewSphere(IdentityTransform(), m).Encode()
	require.Len(t, words, RecordWords)

	// Word 15 is the blue channel, not roughness.
	assert.Equal(t, gomath.Float32bits(0.3), words[15])
	// packHalf2x16(vec2(0.37, 1.45)): 0x35EC low, 0x3DCD high.
	assert.Equal(t, uint32(0x3DCD35EC), words[18])

	records, err := DecodeRecords(words)
	require.NoError(t, err)
	got := records[0].Material
	assert.Equal(t, float32(0.3701172), got.Roughness)
	assert.Equal(t, float32(1.4501953), got.IOR)

	// binary16 keeps 11 significant bits.
	const relErr = 1.0 / 2048
	for _, v := range []float32{0.001, 0.05, 0.37, 0.9, 1.0, 1.33, 1.45, 2.42} {
		lo, hi := unpackHalves(packHalves(v, v))
		assert.InEpsilon(t, v, lo, relErr, "roughness %g", v)
		assert.InEpsilon(t, v, hi, relErr, "ior %g", v)
	}
}

func TestDecodeRecords(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{4, 5, 6}, mgl32.Vec3{2, 1, 1}, mgl32.Vec3{0, 90, 0})
	gold := Metallic(mgl32.Vec3{0.8, 0.6, 0.2}, 0.25)

	words := append(NewSphere(tr, gold).Encode(), NewBox(IdentityTransform(), Glass(1.45)).Encode()...)
	records, err := DecodeRecords(words)
	require.NoError(t, err)
	require.Len(t, records, 2)

	sphere := records[0]
	assert.Equal(t, KindSphere, sphere.Kind)
	model := tr.ModelMatrix()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.InDelta(t, model.At(row, col), sphere.At(row, col), 1e-6, "entry (%d,%d)", row, col)
		}
	}
	assert.Equal(t, gold.Color, sphere.Material.Color)
	assert.True(t, sphere.Material.Metal)
	assert.False(t, sphere.Material.Dielectric)
	assert.InDelta(t, 0.25, sphere.Material.Roughness, 1e-3)
	assert.InDelta(t, 1, sphere.Material.IOR, 1e-3)

	glass := records[1]
	assert.Equal(t, KindBox, glass.Kind)
	assert.Equal(t, mgl32.Vec3{}, glass.Translation())
	assert.True(t, glass.Material.Dielectric)
	assert.InDelta(t, 1.45, glass.Material.IOR, 1e-3)
}

func TestDecodeRecordsRejectsPartialRecord(t *testing.T) {
	words := NewSphere(IdentityTransform(), Matte(mgl32.Vec3{})).Encode()

	_, err := DecodeRecords(words[:RecordWords-1])
	assert.Error(t, err)

	records, err := DecodeRecords(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBytesLittleEndian(t *testing.T) {
	words := []uint32{1, 0x3f800000, 0xdeadbeef}
	b := Bytes(words)

	require.Len(t, b, 12)
	assert.Equal(t, []byte{1, 0, 0, 0}, b[:4])
	assert.Equal(t, uint32(0x3f800000), binary.LittleEndian.Uint32(b[4:8]))
	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, b[8:])
}

func TestRecordCount(t *testing.T) {
	assert.Equal(t, 0, RecordCount(nil))
	assert.Equal(t, 2, RecordCount(make([]uint32, 2*RecordWords)))
	assert.Equal(t, 1, RecordCount(make([]uint32, 2*RecordWords-1)))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "sphere", KindSphere.String())
	assert.Equal(t, "box", KindBox.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}

func TestFit(t *testing.T) {
	words := make([]uint32, 3*RecordWords)

	got, cut := Fit(words, 512)
	assert.False(t, cut)
	assert.Len(t, got, 3*RecordWords)

	got, cut = Fit(words, 2*RecordWords+5)
	assert.True(t, cut)
	assert.Len(t, got, 2*RecordWords)

	got, cut = Fit(words, RecordWords-1)
	assert.True(t, cut)
	assert.Empty(t, got)
}
