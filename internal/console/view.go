package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

const title = " MINESWEEPER "

// header, info line, a blank line, the help block and its spacing
const chromeLines = 8

// header centers the title in dashes, at least four on each side.
func header(width int) string {
	pad := max(4, (width-len(title))/2)
	return strings.Repeat("-", pad) + title + strings.Repeat("-", pad)
}

func (m Model) View() string {
	s := m.game.Snapshot()

	var b strings.Builder
	if m.TooSmall() {
		w, h := m.minSize()
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", w, h, m.width, m.height,
		)))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Header.Render(header(s.Width)))
	b.WriteString("\n")
	m.writeMap(&b, s)

	if !s.Running {
		b.WriteString("\n")
		b.WriteString(m.gameOver(s))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.styles.Info.Render(fmt.Sprintf(
		"Mines: %d, Flags: %d", s.MineCount, s.FlagCount,
	)))
	b.WriteString("\n")
	b.WriteString(m.styles.Prompt.Render(fmt.Sprintf(
		"%s  Time: %s", s.Preset, formatElapsed(s.Elapsed),
	)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Warning.Render(m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) writeMap(b *strings.Builder, s mines.Snapshot) {
	for y := range s.Height {
		for _, g := range s.Row(y) {
			b.WriteString(m.styles.Glyph(g))
		}
		b.WriteString("\n")
	}
}

func (m Model) gameOver(s mines.Snapshot) string {
	var result string
	switch s.Result {
	case mines.Cleared:
		result = m.styles.Victory.Render("Victory! Time: " + formatElapsed(s.Elapsed))
	default:
		result = m.styles.Defeat.Render("Boom! Time: " + formatElapsed(s.Elapsed))
	}
	return result + "\n" + m.styles.Prompt.Render("Press Enter to quit or R to restart")
}

func formatElapsed(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
