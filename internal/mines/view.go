package mines

import (
	"strings"
	"time"
)

// Snapshot is everything a renderer needs to draw one frame. Glyphs are
// row-major and include the border.
type Snapshot struct {
	Width, Height    int
	Glyphs           []Glyph
	MineCount        int
	FlagCount        int
	PlayerX, PlayerY int
	Running          bool
	Result           Outcome
	Preset           Preset
	Elapsed          time.Duration
}

func (s Snapshot) Glyph(x, y int) Glyph {
	return s.Glyphs[y*s.Width+x]
}

func (s Snapshot) Row(y int) []Glyph {
	return s.Glyphs[y*s.Width : (y+1)*s.Width]
}

func (s Snapshot) String() string {
	var b strings.Builder
	for y := range s.Height {
		for _, glyph := range s.Row(y) {
			b.WriteRune(glyph.Symbol)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Snapshot renders the current grid. Once the game is over every mine is
// shown and the detonated one is marked.
func (g *Game) Snapshot() Snapshot {
	glyphs := make([]Glyph, len(g.grid.cells))
	for i, c := range g.grid.cells {
		player := c.X == g.PlayerX && c.Y == g.PlayerY
		if g.Running {
			glyphs[i] = c.Glyph(player)
			continue
		}
		detonated := g.Detonated != nil && g.Detonated.X == c.X && g.Detonated.Y == c.Y
		glyphs[i] = c.RevealedGlyph(player, detonated)
	}

	return Snapshot{
		Width:     g.Width,
		Height:    g.Height,
		Glyphs:    glyphs,
		MineCount: g.MineCount,
		FlagCount: g.FlagCount,
		PlayerX:   g.PlayerX,
		PlayerY:   g.PlayerY,
		Running:   g.Running,
		Result:    g.Result,
		Preset:    g.Preset,
		Elapsed:   g.Elapsed(),
	}
}
