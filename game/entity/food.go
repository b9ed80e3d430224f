package entity

import (
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

// sampleFactor bounds rejection sampling to sampleFactor*grid.Size() draws
// before falling back to a scan of the free cells.
const sampleFactor = 4

type Food struct {
	Position types.Cell
	grid     types.Grid
	rng      *rand.Rand
}

// NewFood places the first food item on a cell outside occupied
func NewFood(grid types.Grid, occupied []types.Cell, rng *rand.Rand) *Food {
	f := &Food{
		grid: grid,
		rng:  rng,
	}
	f.Respawn(occupied)
	return f
}

// Respawn moves the food to a uniformly random free cell. It returns false,
// leaving the position unchanged, when no cell is free.
func (f *Food) Respawn(occupied []types.Cell) bool {
	size := f.grid.Size()
	if size == 0 {
		return false
	}

	taken := make(map[types.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		if f.grid.InBounds(c) {
			taken[c] = struct{}{}
		}
	}
	if len(taken) >= size {
		return false
	}

	for i := 0; i < sampleFactor*size; i++ {
		c := types.Cell{
			Col: f.rng.Intn(f.grid.Columns),
			Row: f.rng.Intn(f.grid.Rows),
		}
		if _, ok := taken[c]; !ok {
			f.Position = c
			return true
		}
	}

	free := make([]types.Cell, 0, size-len(taken))
	for row := 0; row < f.grid.Rows; row++ {
		for col := 0; col < f.grid.Columns; col++ {
			c := types.Cell{Col: col, Row: row}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	f.Position = free[f.rng.Intn(len(free))]
	return true
}
