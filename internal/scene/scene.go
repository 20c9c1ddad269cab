package scene

import "fmt"

// Scene is the ordered list of top-level objects uploaded each frame, plus
// the animations that mutate them.
type Scene struct {
	objects  []Object
	names    map[string]Object
	animator Animator
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{names: make(map[string]Object)}
}

// Add appends obj to the top level.
func (s *Scene) Add(obj Object) {
	s.objects = append(s.objects, obj)
}

// AddNamed appends obj and registers it under name. Names must be unique.
func (s *Scene) AddNamed(name string, obj Object) error {
	if _, dup := s.names[name]; dup {
		return fmt.Errorf("duplicate object name %q", name)
	}
	s.names[name] = obj
	s.Add(obj)
	return nil
}

// Lookup returns the top-level object registered under name.
func (s *Scene) Lookup(name string) (Object, bool) {
	obj, ok := s.names[name]
	return obj, ok
}

// Objects returns the top-level objects in upload order.
func (s *Scene) Objects() []Object {
	return s.objects
}

// Animator returns the scene's animations.
func (s *Scene) Animator() *Animator {
	return &s.animator
}

// Animate applies every animation for elapsed seconds since start.
func (s *Scene) Animate(elapsed float32) {
	s.animator.Apply(elapsed)
}

// Encode concatenates the records of every top-level object in order.
func (s *Scene) Encode() []uint32 {
	return s.EncodeInto(nil)
}

// EncodeInto is Encode reusing dst's storage. The returned slice holds only
// this frame's words.
func (s *Scene) EncodeInto(dst []uint32) []uint32 {
	dst = dst[:0]
	for _, obj := range s.objects {
		dst = obj.appendRecords(dst, obj.Transform())
	}
	return dst
}

// Stats counts the records of each kind the scene encodes to.
func (s *Scene) Stats() map[Kind]int {
	stats := make(map[Kind]int)
	var walk func(obj Object)
	walk = func(obj Object) {
		switch o := obj.(type) {
		case *Compound:
			for _, child := range o.children {
				walk(child)
			}
		case *Sphere:
			stats[KindSphere]++
		case *Box:
			stats[KindBox]++
		}
	}
	for _, obj := range s.objects {
		walk(obj)
	}
	return stats
}

// Owner returns the name of the top-level object that encodes record index
// in the last Encode order. Unnamed objects and out-of-range indices
// report false.
func (s *Scene) Owner(index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	for _, obj := range s.objects {
		n := 1
		if c, ok := obj.(*Compound); ok {
			n = c.recordCount()
		}
		if index < n {
			for name, named := range s.names {
				if named == obj {
					return name, true
				}
			}
			return "", false
		}
		index -= n
	}
	return "", false
}
