package camera

import "strings"

// Direction is a discrete movement command.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

var directionNames = [...]string{
	Forward:  "forward",
	Backward: "backward",
	Left:     "left",
	Right:    "right",
	Up:       "up",
	Down:     "down",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection maps a command token such as "FORWARD" or "left" to a
// Direction. Matching ignores case.
func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(d), true
		}
	}
	return 0, false
}

// Directions returns every direction in declaration order.
func Directions() []Direction {
	return []Direction{Forward, Backward, Left, Right, Up, Down}
}
