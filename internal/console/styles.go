package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

// palette maps console colors onto the 16 ANSI colors.
var palette = map[mines.Color]lipgloss.Color{
	mines.White:       "15",
	mines.Green:       "10",
	mines.DarkGreen:   "2",
	mines.DarkGray:    "8",
	mines.DarkYellow:  "3",
	mines.Blue:        "12",
	mines.Red:         "9",
	mines.Magenta:     "13",
	mines.Yellow:      "11",
	mines.DarkBlue:    "4",
	mines.DarkMagenta: "5",
	mines.DarkRed:     "1",
}

type Styles struct {
	glyphs  map[mines.Color]lipgloss.Style
	Header  lipgloss.Style
	Info    lipgloss.Style
	Victory lipgloss.Style
	Defeat  lipgloss.Style
	Prompt  lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles builds every style on r, so a renderer with the Ascii profile
// yields plain text.
func NewStyles(r *lipgloss.Renderer) Styles {
	s := Styles{
		glyphs:  make(map[mines.Color]lipgloss.Style, len(palette)),
		Header:  r.NewStyle().Bold(true),
		Info:    r.NewStyle().Foreground(palette[mines.White]),
		Victory: r.NewStyle().Bold(true).Foreground(palette[mines.Green]),
		Defeat:  r.NewStyle().Bold(true).Foreground(palette[mines.Red]),
		Prompt:  r.NewStyle().Foreground(palette[mines.DarkGray]),
		Warning: r.NewStyle().Foreground(palette[mines.Yellow]),
	}
	for c, fg := range palette {
		s.glyphs[c] = r.NewStyle().Foreground(fg)
	}
	return s
}

func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

func (s Styles) Glyph(g mines.Glyph) string {
	style, ok := s.glyphs[g.Color]
	if !ok {
		return g.String()
	}
	return style.Render(g.String())
}
