package types

// CellSize is the edge of one grid cell in pixels
const CellSize = 30

// Cell is a grid coordinate
type Cell struct {
	Col int
	Row int
}

// Add returns the neighbouring cell in direction d
func (c Cell) Add(d Direction) Cell {
	v := d.Vector()
	return Cell{Col: c.Col + v.Col, Row: c.Row + v.Row}
}

// Grid represents the game grid dimensions
type Grid struct {
	Columns int
	Rows    int
}

// NewGrid derives grid dimensions from a pixel area
func NewGrid(width, height, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{}
	}
	return Grid{
		Columns: width / cellSize,
		Rows:    height / cellSize,
	}
}

func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Columns && c.Row >= 0 && c.Row < g.Rows
}

// Size is the number of cells on the grid
func (g Grid) Size() int {
	if g.Columns <= 0 || g.Rows <= 0 {
		return 0
	}
	return g.Columns * g.Rows
}

type Color struct {
	R, G, B uint8
}

// Status is the engine state
type Status int

const (
	Running Status = iota
	Paused
	Over
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Palette holds the colors a shell draws with
type Palette struct {
	Background Color
	Food       Color
	Snake      Color
}
