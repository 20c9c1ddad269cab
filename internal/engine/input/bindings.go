package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/marcher/internal/engine/camera"
)

// Bindings maps keys to camera movement.
type Bindings struct {
	moves  []binding
	Sprint sdl.Scancode
}

type binding struct {
	key sdl.Scancode
	dir camera.Direction
}

// ParseBindings resolves SDL key names ("W", "Space", "Left Shift") keyed
// by direction name. Unknown directions or key names are errors. An empty
// sprint name disables sprinting.
func ParseBindings(moves map[string]string, sprint string) (Bindings, error) {
	var b Bindings
	for _, dir := range camera.Directions() {
		name, ok := moves[dir.String()]
		if !ok || name == "" {
			continue
		}
		sc, err := scancode(name)
		if err != nil {
			return Bindings{}, fmt.Errorf("binding %s: %w", dir, err)
		}
		b.moves = append(b.moves, binding{key: sc, dir: dir})
	}
	for name := range moves {
		if _, ok := camera.ParseDirection(name); !ok {
			return Bindings{}, fmt.Errorf("unknown movement %q", name)
		}
	}

	if sprint != "" {
		sc, err := scancode(sprint)
		if err != nil {
			return Bindings{}, fmt.Errorf("binding sprint: %w", err)
		}
		b.Sprint = sc
	}
	return b, nil
}

// Held appends the directions whose keys are held to dst.
func (b Bindings) Held(in *Input, dst []camera.Direction) []camera.Direction {
	for _, m := range b.moves {
		if in.IsKeyDown(m.key) {
			dst = append(dst, m.dir)
		}
	}
	return dst
}

// Sprinting reports whether the sprint key is held.
func (b Bindings) Sprinting(in *Input) bool {
	return b.Sprint != sdl.SCANCODE_UNKNOWN && in.IsKeyDown(b.Sprint)
}

func scancode(name string) (sdl.Scancode, error) {
	sc := sdl.GetScancodeFromName(name)
	if sc == sdl.SCANCODE_UNKNOWN {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return sc, nil
}
