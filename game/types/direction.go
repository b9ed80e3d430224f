package types

// Direction is one of the four cardinal moves
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionVectors = [...]Cell{
	Up:    {Col: 0, Row: -1},
	Down:  {Col: 0, Row: 1},
	Left:  {Col: -1, Row: 0},
	Right: {Col: 1, Row: 0},
}

var opposites = [...]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

// Valid reports whether d is one of the four known directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Vector converts a Direction to a unit displacement. Invalid values map to
// the zero vector.
func (d Direction) Vector() Cell {
	if !d.Valid() {
		return Cell{}
	}
	return directionVectors[d]
}

func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return opposites[d]
}

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
		return "none"
	}
}
