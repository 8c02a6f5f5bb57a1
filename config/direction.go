package config

// Direction is the resolved movement direction for a tick
type Direction int

const (
	Idle Direction = iota
	Up
	Down
	Left
	Right
	DirectionCount // Must be last - used for array sizing
)

// Movable lists the directions in resolution order.
// Touch regions are tested in this order and keyboard movement is applied in it.
var Movable = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "idle"
	}
}

// Delta returns the unit axis step in screen space (Y grows downward).
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection maps a direction name back to its value. Unknown names map to Idle.
func ParseDirection(name string) Direction {
	for d := Idle; d < DirectionCount; d++ {
		if d.String() == name {
			return d
		}
	}
	return Idle
}
