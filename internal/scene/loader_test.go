package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlScene = `
objects:
  - name: ball
    kind: sphere
    transform:
      position: [0, 1, 0]
      scale: [2]
    material:
      color: [1, 0, 0]
      roughness: 0.25
    animation:
      oscillate: {axis: y, amplitude: 1, frequency: 2}
      hue: 90
  - name: pane
    kind: Box
    transform:
      position: [3, 0, 0]
      scale: [1, 2, 0.1]
    material:
      dielectric: true
      ior: 1.5
  - kind: group
    transform:
      position: [0, 0, -5]
    children:
      - kind: sphere
        transform:
          position: [1, 0, 0]
        material:
          metal: true
          color: [0.8, 0.6, 0.2]
      - kind: box
        animation:
          spin: [0, 45, 0]
`

const tomlScene = `
[[objects]]
name = "ball"
kind = "sphere"

[objects.transform]
position = [0, 1, 0]

[objects.material]
color = [0.2, 0.4, 0.6]

[[objects]]
kind = "compound"

[[objects.children]]
kind = "box"

[objects.children.transform]
scale = [1, 2, 1]
`

func TestParseYAML(t *testing.T) {
	s, err := Parse([]byte(yamlScene), FormatYAML)
	require.NoError(t, err)

	require.Len(t, s.Objects(), 3)
	stats := s.Stats()
	assert.Equal(t, 2, stats[KindSphere])
	assert.Equal(t, 2, stats[KindBox])
	assert.Equal(t, 3, s.Animator().Len())

	obj, ok := s.Lookup("ball")
	require.True(t, ok)
	ball := obj.(*Sphere)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, ball.Local.Scale)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, ball.Material.Color)
	assert.Equal(t, float32(1), ball.Material.IOR)

	obj, ok = s.Lookup("pane")
	require.True(t, ok)
	pane := obj.(*Box)
	assert.True(t, pane.Material.Dielectric)
	assert.Equal(t, float32(1.5), pane.Material.IOR)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, pane.Material.Color)

	group := s.Objects()[2].(*Compound)
	assert.Equal(t, 2, group.Len())
	assert.Equal(t, mgl32.Vec3{0, 0, -5}, group.Local.Position)
}

func TestParseYAMLAnimationTargetsObject(t *testing.T) {
	s, err := Parse([]byte(yamlScene), FormatYAML)
	require.NoError(t, err)

	obj, _ := s.Lookup("ball")
	ball := obj.(*Sphere)

	s.Animate(float32(mgl32.DegToRad(45)))
	assert.InDelta(t, 2, ball.Local.Position[1], 1e-5)
	assert.NotEqual(t, mgl32.Vec3{1, 0, 0}, ball.Material.Color)

	group := s.Objects()[2].(*Compound)
	spinning := group.Children()[1].(*Box)
	assert.InDelta(t, 45*mgl32.DegToRad(45), spinning.Local.Rotation[1], 1e-4)
}

func TestParseTOML(t *testing.T) {
	s, err := Parse([]byte(tomlScene), FormatTOML)
	require.NoError(t, err)

	require.Len(t, s.Objects(), 2)
	obj, ok := s.Lookup("ball")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.2, 0.4, 0.6}, obj.(*Sphere).Material.Color)

	group := s.Objects()[1].(*Compound)
	require.Equal(t, 1, group.Len())
	assert.Equal(t, mgl32.Vec3{1, 2, 1}, group.Children()[0].Transform().Scale)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, s.Encode())

	s, err = Parse(nil, FormatTOML)
	require.NoError(t, err)
	assert.Empty(t, s.Objects())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		target error
	}{
		{"unknown kind", FormatYAML, "objects:\n  - kind: torus\n", ErrUnknownKind},
		{"unknown field", FormatYAML, "objects:\n  - kind: sphere\n    colour: [1, 0, 0]\n", nil},
		{"short vector", FormatYAML, "objects:\n  - kind: sphere\n    transform: {position: [1, 2]}\n", nil},
		{"primitive with children", FormatYAML, "objects:\n  - kind: box\n    children:\n      - kind: sphere\n", nil},
		{"duplicate name", FormatYAML, "objects:\n  - {kind: box, name: a}\n  - {kind: box, name: a}\n", nil},
		{"bad axis", FormatYAML, "objects:\n  - kind: box\n    animation: {oscillate: {axis: w}}\n", nil},
		{"named child", FormatYAML, "objects:\n  - kind: group\n    children:\n      - {kind: box, name: lid}\n", nil},
		{"material on group", FormatYAML, "objects:\n  - kind: group\n    material: {color: [1, 0, 0]}\n", nil},
		{"hue on group", FormatYAML, "objects:\n  - kind: group\n    animation: {hue: 10}\n", nil},
		{"toml unknown field", FormatTOML, "[[objects]]\nkind = \"box\"\nsize = 3\n", nil},
		{"unknown format", Format(9), "", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestParseKeepsQuestionableValues(t *testing.T) {
	data := "objects:\n  - kind: sphere\n    transform: {scale: [0, 1, 1]}\n    material: {metal: true, dielectric: true}\n"

	s, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)

	words := s.Encode()
	require.Len(t, words, RecordWords)
	assert.Equal(t, uint32(1), words[16])
	assert.Equal(t, uint32(1), words[17])
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"scene.yaml", FormatYAML, false},
		{"dir/scene.YML", FormatYAML, false},
		{"scene.toml", FormatTOML, false},
		{"scene.json", 0, true},
		{"scene", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlScene), 0644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Objects(), 2)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
