package camera

// Controller applies one frame of user input to a Camera.
type Controller struct {
	SprintMultiplier float32
	ConstrainPitch   bool
	// InvertY makes moving the mouse up look down.
	InvertY bool
}

// Frame is the input gathered for one frame.
type Frame struct {
	Moves  []Direction
	Sprint bool
	// Mouse motion in window pixels, y growing downward.
	MouseDX, MouseDY float32
	DeltaTime        float32 // seconds
}

// Apply moves then turns cam. Sprinting scales the time step, so every
// direction speeds up by SprintMultiplier exactly once.
func (c Controller) Apply(cam *Camera, f Frame) {
	dt := f.DeltaTime
	if f.Sprint && c.SprintMultiplier > 0 {
		dt *= c.SprintMultiplier
	}
	for _, d := range f.Moves {
		cam.ProcessMovement(d, dt)
	}

	if f.MouseDX == 0 && f.MouseDY == 0 {
		return
	}
	dy := -f.MouseDY
	if c.InvertY {
		dy = -dy
	}
	cam.ProcessLookDelta(f.MouseDX, dy, c.ConstrainPitch)
}
