package mines

import "github.com/sirupsen/logrus"

// dig opens x, y together with everything the opening implies: first-move
// mine relocation, flood reveal of empty regions and the chord on satisfied
// numbers.
func (g *Game) dig(x, y int) Outcome {
	if !g.Running {
		return g.Result
	}

	cell := *g.grid.at(x, y)
	if cell.State == Border || cell.State == Flag {
		return g.Result
	}

	if g.FirstMove {
		g.FirstMove = false
		if cell.IsMine {
			g.relocateMine(x, y)
		}
	}

	g.floodDig(x, y)

	if g.Running {
		g.chord(x, y)
	}

	return g.settle()
}

// relocateMine moves the mine under x, y to a random free cell elsewhere.
func (g *Game) relocateMine(x, y int) {
	g.grid.setMine(x, y, false)
	for {
		nx, ny, ok := g.grid.randomFreeCell(g.rnd)
		if !ok || (nx == x && ny == y) {
			continue
		}
		g.grid.setMine(nx, ny, true)
		Log.WithFields(logrus.Fields{
			"from": Point{x, y},
			"to":   Point{nx, ny},
		}).Debug("relocated mine under first dig")
		break
	}
	g.grid.setAllMinesAround()
}

// floodDig reveals x, y and, when it has no mines around, the whole empty
// region reachable from it plus the numbered cells bordering that region.
func (g *Game) floodDig(x, y int) {
	g.reveal(x, y)

	queue := []Point{{x, y}}
	for len(queue) > 0 {
		if !g.Running {
			return
		}
		p := queue[0]
		queue = queue[1:]

		if g.grid.at(p.X, p.Y).MinesAround != 0 {
			continue
		}
		for n := range g.grid.neighbours(p.X, p.Y) {
			if n.State == Flag || n.State == Digged {
				continue
			}
			g.reveal(n.X, n.Y)
			queue = append(queue, Point{n.X, n.Y})
		}
	}
}

// reveal digs a single cell.
func (g *Game) reveal(x, y int) {
	cell := *g.grid.at(x, y)
	if cell.State == Border || cell.State == Flag {
		return
	}

	if cell.State != Digged {
		g.grid.setState(x, y, Digged)
		if !cell.IsMine {
			g.DiggedCount++
		}
	}

	if cell.IsMine {
		if g.Detonated == nil {
			g.Detonated = &Point{x, y}
		}
		g.lose()
	}
}

// chord opens the remaining neighbours of x, y once the flags around it add
// up to its number. A flag on a safe cell loses the game; the neighbours are
// still opened, one by one, to show the mistake.
func (g *Game) chord(x, y int) {
	cell := *g.grid.at(x, y)
	if cell.State != Digged {
		return
	}

	var flagged, rest []Cell
	for n := range g.grid.neighbours(x, y) {
		switch n.State {
		case Flag:
			flagged = append(flagged, n)
		case Default:
			rest = append(rest, n)
		}
	}

	if len(flagged) == 0 || len(flagged) != cell.MinesAround {
		return
	}

	for _, f := range flagged {
		if !f.IsMine {
			Log.WithField("flag", Point{f.X, f.Y}).Debug("chord hit a false flag")
			g.lose()
			break
		}
	}

	for _, n := range rest {
		if g.Running {
			g.floodDig(n.X, n.Y)
		} else {
			g.reveal(n.X, n.Y)
		}
	}
}

func (g *Game) lose() {
	if !g.Running {
		return
	}
	g.Running = false
	g.Result = Exploded
}

// settle applies the win condition and stamps the end of a finished game.
func (g *Game) settle() Outcome {
	if g.Running && g.DiggedCount == g.SafeCells() {
		g.Running = false
		g.Result = Cleared
	}
	if !g.Running && g.EndedAt.IsZero() {
		g.EndedAt = g.now()
		Log.WithFields(logrus.Fields{
			"result":  g.Result.String(),
			"digged":  g.DiggedCount,
			"elapsed": g.Elapsed().String(),
		}).Info("game over")
	}
	return g.Result
}

func (g *Game) setFlag(x, y int) {
	if g.FirstMove || !g.Running {
		return
	}
	switch g.grid.at(x, y).State {
	case Default:
		g.grid.setState(x, y, Flag)
		g.FlagCount--
	case Flag:
		g.grid.setState(x, y, Default)
		g.FlagCount++
	}
}

func (g *Game) move(x, y int) bool {
	if !g.Running || g.grid.IsBorder(x, y) {
		return false
	}
	g.PlayerX, g.PlayerY = x, y
	return true
}
