package mines

import (
	"math/rand/v2"
)

// Initialize builds a fresh bordered board for d and seeds its mines. The
// player starts in the middle of the grid.
func Initialize(d Difficulty, r *rand.Rand) (*Grid, *GameState, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	width, height := d.Width+2, d.Height+2
	grid := newGrid(width, height)

	state := &GameState{
		Width:     width,
		Height:    height,
		MineCount: d.MineCount,
		FlagCount: d.MineCount,
		PlayerX:   width / 2,
		PlayerY:   height / 2,
		FirstMove: true,
		Running:   true,
		Result:    Continue,
		Preset:    d.Preset,
	}

	for placed := 0; placed < d.MineCount; {
		x, y, ok := grid.randomFreeCell(r)
		if !ok {
			continue
		}
		grid.setMine(x, y, true)
		placed++
	}

	grid.setAllMinesAround()

	return grid, state, nil
}

// randomFreeCell draws one position over the whole grid and reports whether
// it may take a mine. Callers retry until it does.
func (g *Grid) randomFreeCell(r *rand.Rand) (x, y int, ok bool) {
	x, y = r.IntN(g.width), r.IntN(g.height)
	if g.IsBorder(x, y) || g.at(x, y).IsMine {
		return x, y, false
	}
	return x, y, true
}
