package scene

// Compound groups child objects under one transform. It has no record of
// its own: encoding flattens every descendant primitive, each placed by the
// chain of transforms above it.
type Compound struct {
	Local Transform

	children []Object
}

// NewCompound returns an empty compound placed by t.
func NewCompound(t Transform) *Compound {
	return &Compound{Local: t}
}

// AddChild appends obj. The compound owns it from then on; adding the same
// object to two compounds, or a compound to itself, is not supported.
// A nil obj, including a nil *Sphere, *Box or *Compound, is ignored.
func (c *Compound) AddChild(obj Object) {
	if isNil(obj) {
		return
	}
	c.children = append(c.children, obj)
}

func isNil(obj Object) bool {
	switch o := obj.(type) {
	case nil:
		return true
	case *Sphere:
		return o == nil
	case *Box:
		return o == nil
	case *Compound:
		return o == nil
	}
	return false
}

// Children returns the children in insertion order.
func (c *Compound) Children() []Object {
	return c.children
}

// Len returns the number of direct children.
func (c *Compound) Len() int {
	return len(c.children)
}

// Encode packs each child under Local composed with the child's transform,
// in insertion order. An empty compound encodes to an empty slice.
func (c *Compound) Encode() []uint32 {
	return c.appendRecords(make([]uint32, 0, c.recordCount()*RecordWords), c.Local)
}

// EncodeWithTransform packs each child under t composed with the child's
// transform. t replaces Local; it is expected to already include it.
func (c *Compound) EncodeWithTransform(t Transform) []uint32 {
	return c.appendRecords(make([]uint32, 0, c.recordCount()*RecordWords), t)
}

func (c *Compound) Transform() Transform {
	return c.Local
}

func (c *Compound) appendRecords(dst []uint32, t Transform) []uint32 {
	for _, child := range c.children {
		dst = child.appendRecords(dst, t.Compose(child.Transform()))
	}
	return dst
}

// recordCount counts the primitives below c.
func (c *Compound) recordCount() int {
	n := 0
	for _, child := range c.children {
		if sub, ok := child.(*Compound); ok {
			n += sub.recordCount()
		} else {
			n++
		}
	}
	return n
}
