package scene

// Object is anything that can be packed into the scene buffer.
//
// Encode packs the object under its own transform. EncodeWithTransform packs
// it under t, which the caller has already composed with the object's own
// transform; the object's transform is not applied again. Transform returns
// a copy of the object's local transform.
//
// The set of implementations is closed: Sphere, Box and Compound.
type Object interface {
	Encode() []uint32
	EncodeWithTransform(t Transform) []uint32
	Transform() Transform

	appendRecords(dst []uint32, t Transform) []uint32
}

// primitive is the state shared by the shapes with a record of their own.
type primitive struct {
	kind Kind

	Local    Transform
	Material Material
}

func (p *primitive) Encode() []uint32 {
	return p.appendRecords(make([]uint32, 0, RecordWords), p.Local)
}

func (p *primitive) EncodeWithTransform(t Transform) []uint32 {
	return p.appendRecords(make([]uint32, 0, RecordWords), t)
}

func (p *primitive) Transform() Transform {
	return p.Local
}

func (p *primitive) appendRecords(dst []uint32, t Transform) []uint32 {
	return appendRecord(dst, p.kind, t, p.Material)
}

// Kind returns the record tag written for this shape.
func (p *primitive) Kind() Kind {
	return p.kind
}

// Sphere is a unit sphere scaled, rotated and moved by its transform.
type Sphere struct {
	primitive
}

// NewSphere returns a sphere with the given placement and material.
func NewSphere(t Transform, m Material) *Sphere {
	return &Sphere{primitive{kind: KindSphere, Local: t, Material: m}}
}

// Box is a cube with half-extent 1 scaled, rotated and moved by its transform.
type Box struct {
	primitive
}

// NewBox returns a box with the given placement and material.
func NewBox(t Transform, m Material) *Box {
	return &Box{primitive{kind: KindBox, Local: t, Material: m}}
}
