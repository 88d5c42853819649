package flight

import "strings"

// Control is a bitmask of the plane's flight controls. Controls are level
// triggered: a bit is set for as long as its key is held.
type Control uint8

const (
	// Faster accelerates the plane.
	Faster Control = 1 << iota
	// Slower decelerates the plane.
	Slower
	// Left yaws the plane to the left.
	Left
	// Right yaws the plane to the right.
	Right
	// Up pitches the nose up.
	Up
	// Down pitches the nose down.
	Down
)

// controlNames lists every control in bit order for String.
var controlNames = []struct {
	flag Control
	name string
}{
	{Faster, "FASTER"},
	{Slower, "SLOWER"},
	{Left, "LEFT"},
	{Right, "RIGHT"},
	{Up, "UP"},
	{Down, "DOWN"},
}

// Has reports whether every bit of flag is set.
func (c Control) Has(flag Control) bool {
	return c&flag == flag
}

// With returns c with flag set.
func (c Control) With(flag Control) Control {
	return c | flag
}

// Without returns c with flag cleared.
func (c Control) Without(flag Control) Control {
	return c &^ flag
}

func (c Control) String() string {
	if c == 0 {
		return "NONE"
	}
	var parts []string
	for _, n := range controlNames {
		if c.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
