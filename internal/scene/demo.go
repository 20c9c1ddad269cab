package scene

import "github.com/go-gl/mathgl/mgl32"

// Default returns the built-in demo scene: an animated red sphere, a gold
// metal sphere, a glass sphere, a large ground sphere, a tumbling green box
// and a group holding a grey box.
func Default() *Scene {
	s := New()

	red := NewSphere(
		NewTransform(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}),
		Matte(mgl32.Vec3{1, 0, 0}),
	)
	gold := NewSphere(
		NewTransform(mgl32.Vec3{5, 1, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}),
		Metallic(mgl32.Vec3{0.8, 0.6, 0.2}, 0.5),
	)
	glass := NewSphere(
		NewTransform(mgl32.Vec3{3, 1, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}),
		Glass(1.45),
	)
	ground := NewSphere(
		NewTransform(mgl32.Vec3{0, -1000, 0}, mgl32.Vec3{1000, 1000, 1000}, mgl32.Vec3{}),
		Matte(mgl32.Vec3{1, 1, 1}),
	)
	box := NewBox(
		NewTransform(mgl32.Vec3{0, 5, 3}, mgl32.Vec3{1, 2, 1}, mgl32.Vec3{}),
		Matte(mgl32.Vec3{0.2, 0.9, 0.2}),
	)

	group := NewCompound(IdentityTransform())
	group.AddChild(NewBox(
		NewTransform(mgl32.Vec3{0, 3, -4}, mgl32.Vec3{1, 2, 1}, mgl32.Vec3{}),
		Matte(mgl32.Vec3{0.2, 0.2, 0.2}),
	))

	// Names are unique literals, AddNamed cannot fail here.
	_ = s.AddNamed("red", red)
	_ = s.AddNamed("gold", gold)
	_ = s.AddNamed("glass", glass)
	_ = s.AddNamed("ground", ground)
	_ = s.AddNamed("box", box)
	_ = s.AddNamed("group", group)

	anim := s.Animator()
	anim.Add(Oscillate{Target: &red.Local, Axis: 0, Amplitude: 2, Frequency: 0.5})
	anim.Add(HueCycle{Target: &red.Material, Rate: 360})
	anim.Add(Spin{Target: &box.Local, Rate: mgl32.Vec3{128, 90, 0}})

	return s
}
