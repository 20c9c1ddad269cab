package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/marcher/internal/logger"
)

var (
	// ErrUnsupportedFormat is returned for scene files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported scene format")
	// ErrUnknownKind is returned for an object kind other than sphere, box or compound.
	ErrUnknownKind = errors.New("unknown object kind")
)

// Format is a scene description encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Description is the on-disk form of a scene.
type Description struct {
	Objects []ObjectDesc `yaml:"objects" toml:"objects"`
}

// ObjectDesc describes one object. Kind is sphere, box or compound; only
// compounds have children and only primitives have a material.
type ObjectDesc struct {
	Name      string         `yaml:"name" toml:"name"`
	Kind      string         `yaml:"kind" toml:"kind"`
	Transform TransformDesc  `yaml:"transform" toml:"transform"`
	Material  MaterialDesc   `yaml:"material" toml:"material"`
	Children  []ObjectDesc   `yaml:"children" toml:"children"`
	Animation *AnimationDesc `yaml:"animation" toml:"animation"`
}

// TransformDesc holds three-component vectors. A missing scale is 1; a
// single scale value is applied to every axis.
type TransformDesc struct {
	Position []float32 `yaml:"position" toml:"position"`
	Scale    []float32 `yaml:"scale" toml:"scale"`
	Rotation []float32 `yaml:"rotation" toml:"rotation"`
}

// MaterialDesc is Material with an optional ior (default 1).
type MaterialDesc struct {
	Color      []float32 `yaml:"color" toml:"color"`
	Roughness  float32   `yaml:"roughness" toml:"roughness"`
	Metal      bool      `yaml:"metal" toml:"metal"`
	Dielectric bool      `yaml:"dielectric" toml:"dielectric"`
	IOR        *float32  `yaml:"ior" toml:"ior"`
}

// set reports whether any material field was given.
func (md MaterialDesc) set() bool {
	return md.Color != nil || md.Roughness != 0 || md.Metal || md.Dielectric || md.IOR != nil
}

// AnimationDesc lists the animations attached to an object.
type AnimationDesc struct {
	Oscillate *OscillateDesc `yaml:"oscillate" toml:"oscillate"`
	Spin      []float32      `yaml:"spin" toml:"spin"` // degrees per second per axis
	Hue       float32        `yaml:"hue" toml:"hue"`   // degrees per second
}

// OscillateDesc moves the object along one axis around its start position.
type OscillateDesc struct {
	Axis      string  `yaml:"axis" toml:"axis"`
	Amplitude float32 `yaml:"amplitude" toml:"amplitude"`
	Frequency float32 `yaml:"frequency" toml:"frequency"`
	Phase     float32 `yaml:"phase" toml:"phase"`
}

// LoadFile reads a scene description, picking the format from the extension.
func LoadFile(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene description and builds the scene. Unknown fields
// are errors. Values the shader cannot handle well (zero scale, both
// material flags) are logged, not rejected.
func Parse(data []byte, format Format) (*Scene, error) {
	var desc Description
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&desc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&desc); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	return Build(desc)
}

// Build turns a description into a scene.
func Build(desc Description) (*Scene, error) {
	b := builder{scene: New(), log: logger.Named("scene")}
	for i, od := range desc.Objects {
		obj, err := b.object(od, fmt.Sprintf("objects[%d]", i))
		if err != nil {
			return nil, err
		}
		if od.Name == "" {
			b.scene.Add(obj)
			continue
		}
		if err := b.scene.AddNamed(od.Name, obj); err != nil {
			return nil, err
		}
	}
	return b.scene, nil
}

type builder struct {
	scene *Scene
	log   *zap.Logger
}

func (b *builder) object(od ObjectDesc, where string) (Object, error) {
	t, err := od.Transform.build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}
	if err := t.Validate(); err != nil {
		b.log.Warn("questionable transform", zap.String("object", where), zap.Error(err))
	}

	var (
		obj      Object
		local    *Transform
		material *Material
	)
	kind := strings.ToLower(od.Kind)
	switch kind {
	case "sphere", "box":
		m, err := od.Material.build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		if err := m.Validate(); err != nil {
			b.log.Warn("questionable material", zap.String("object", where), zap.Error(err))
		}
		if kind == "box" {
			box := NewBox(t, m)
			obj, local, material = box, &box.Local, &box.Material
		} else {
			sphere := NewSphere(t, m)
			obj, local, material = sphere, &sphere.Local, &sphere.Material
		}
		if len(od.Children) > 0 {
			return nil, fmt.Errorf("%s: %s cannot have children", where, kind)
		}
	case "compound", "group":
		if od.Material.set() {
			return nil, fmt.Errorf("%s: %s cannot have a material", where, kind)
		}
		c := NewCompound(t)
		for i, cd := range od.Children {
			at := fmt.Sprintf("%s.children[%d]", where, i)
			if cd.Name != "" {
				return nil, fmt.Errorf("%s: only top-level objects can be named, got %q", at, cd.Name)
			}
			child, err := b.object(cd, at)
			if err != nil {
				return nil, err
			}
			c.AddChild(child)
		}
		obj, local = c, &c.Local
	default:
		return nil, fmt.Errorf("%s: %w %q", where, ErrUnknownKind, od.Kind)
	}

	if od.Animation != nil {
		if err := b.animate(*od.Animation, local, material); err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
	}
	return obj, nil
}

func (b *builder) animate(ad AnimationDesc, local *Transform, material *Material) error {
	anim := b.scene.Animator()
	if o := ad.Oscillate; o != nil {
		axis, err := axisIndex(o.Axis)
		if err != nil {
			return err
		}
		anim.Add(Oscillate{
			Target:    local,
			Axis:      axis,
			Center:    local.Position[axis],
			Amplitude: o.Amplitude,
			Frequency: o.Frequency,
			Phase:     o.Phase,
		})
	}
	if ad.Spin != nil {
		rate, err := vec3(ad.Spin, "spin", mgl32.Vec3{})
		if err != nil {
			return err
		}
		anim.Add(Spin{Target: local, Base: local.Rotation, Rate: rate})
	}
	if ad.Hue != 0 {
		if material == nil {
			return errors.New("hue animation needs a material")
		}
		anim.Add(HueCycle{Target: material, Rate: ad.Hue})
	}
	return nil
}

func axisIndex(name string) (int, error) {
	switch strings.ToLower(name) {
	case "x", "":
		return 0, nil
	case "y":
		return 1, nil
	case "z":
		return 2, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", name)
	}
}

func (td TransformDesc) build() (Transform, error) {
	pos, err := vec3(td.Position, "position", mgl32.Vec3{})
	if err != nil {
		return Transform{}, err
	}
	rot, err := vec3(td.Rotation, "rotation", mgl32.Vec3{})
	if err != nil {
		return Transform{}, err
	}
	scale := mgl32.Vec3{1, 1, 1}
	if len(td.Scale) == 1 {
		scale = mgl32.Vec3{td.Scale[0], td.Scale[0], td.Scale[0]}
	} else if scale, err = vec3(td.Scale, "scale", scale); err != nil {
		return Transform{}, err
	}
	return NewTransform(pos, scale, rot), nil
}

func (md MaterialDesc) build() (Material, error) {
	color, err := vec3(md.Color, "color", mgl32.Vec3{1, 1, 1})
	if err != nil {
		return Material{}, err
	}
	ior := float32(1)
	if md.IOR != nil {
		ior = *md.IOR
	}
	return Material{
		Color:      color,
		Roughness:  md.Roughness,
		Metal:      md.Metal,
		Dielectric: md.Dielectric,
		IOR:        ior,
	}, nil
}

// vec3 converts an optional three-element list.
func vec3(v []float32, field string, def mgl32.Vec3) (mgl32.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	default:
		return mgl32.Vec3{}, fmt.Errorf("%s needs 3 components, got %d", field, len(v))
	}
}
