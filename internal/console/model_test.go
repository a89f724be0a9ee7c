package console

import (
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

func TestMain(m *testing.M) {
	mines.Log.SetLevel(logrus.WarnLevel)
	m.Run()
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyles(r)
}

func newTestModel(t *testing.T, d mines.Difficulty) Model {
	t.Helper()
	game, err := mines.NewGame(d, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return New(game, WithStyles(plainStyles()))
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key  string
		want mines.Command
	}{
		{"e", mines.CmdDig},
		{"E", mines.CmdDig},
		{"q", mines.CmdToggleFlag},
		{"Q", mines.CmdToggleFlag},
		{"w", mines.CmdMoveUp},
		{"up", mines.CmdMoveUp},
		{"s", mines.CmdMoveDown},
		{"down", mines.CmdMoveDown},
		{"a", mines.CmdMoveLeft},
		{"left", mines.CmdMoveLeft},
		{"d", mines.CmdMoveRight},
		{"right", mines.CmdMoveRight},
		{"1", mines.CmdSelectEasy},
		{"2", mines.CmdSelectMedium},
		{"3", mines.CmdSelectHard},
		{"x", mines.CmdQuit},
		{"esc", mines.CmdQuit},
		{"ctrl+c", mines.CmdQuit},
		{"r", mines.CmdNoop},
		{"enter", mines.CmdNoop},
		{"z", mines.CmdNoop},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.want, keys.Command(keyMsg(test.key)))
		})
	}
}

func TestKeyMapGameOverCommand(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Equal(t, mines.CmdRestart, keys.GameOverCommand(keyMsg("r")))
	assert.Equal(t, mines.CmdRestart, keys.GameOverCommand(keyMsg("R")))
	assert.Equal(t, mines.CmdQuit, keys.GameOverCommand(keyMsg("enter")))
	assert.Equal(t, mines.CmdQuit, keys.GameOverCommand(keyMsg("esc")))
	assert.Equal(t, mines.CmdNoop, keys.GameOverCommand(keyMsg("e")))
	assert.Equal(t, mines.CmdNoop, keys.GameOverCommand(keyMsg("1")))
}

func TestModelInitStartsClock(t *testing.T) {
	m := newTestModel(t, mines.EasyDifficulty)

	assert.NotNil(t, m.Init())

	next, cmd := m.Update(tickMsg{})
	assert.IsType(t, Model{}, next)
	assert.NotNil(t, cmd)
}

func TestModelMovesCursor(t *testing.T) {
	m := newTestModel(t, mines.EasyDifficulty)
	game := m.Game()
	require.Equal(t, mines.Point{X: 5, Y: 5}, mines.Point{X: game.PlayerX, Y: game.PlayerY})

	m, cmd := press(t, m, "d", "d", "up", "a")

	assert.Nil(t, cmd)
	assert.Equal(t, mines.Point{X: 6, Y: 4}, mines.Point{X: game.PlayerX, Y: game.PlayerY})
	assert.NoError(t, m.Err())
}

func TestModelQuit(t *testing.T) {
	for _, k := range []string{"x", "X", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t, mines.EasyDifficulty)
			_, cmd := press(t, m, k)
			assert.True(t, isQuit(cmd))
		})
	}
}

func TestModelSelectsPreset(t *testing.T) {
	m := newTestModel(t, mines.EasyDifficulty)

	m, _ = press(t, m, "3")

	assert.Equal(t, mines.Hard, m.Game().Preset)
	assert.Equal(t, 33, m.Game().Width)
	assert.Contains(t, m.View(), "Mines: 99, Flags: 99")
}

func TestModelVictory(t *testing.T) {
	m := newTestModel(t, mines.Difficulty{Width: 3, Height: 1})

	m, cmd := press(t, m, "e")
	assert.Nil(t, cmd)
	require.Equal(t, mines.Cleared, m.Game().Result)

	view := m.View()
	assert.Contains(t, view, "Victory! Time: ")
	assert.Contains(t, view, "Press Enter to quit or R to restart")
	assert.NotContains(t, view, "Mines:")

	// play keys are ignored on the game-over screen
	m, cmd = press(t, m, "e", "a", "1")
	assert.Nil(t, cmd)
	assert.Equal(t, mines.Cleared, m.Game().Result)

	m, _ = press(t, m, "r")
	assert.True(t, m.Game().Running)
	assert.True(t, m.Game().FirstMove)

	m, _ = press(t, m, "e")
	_, cmd = press(t, m, "enter")
	assert.True(t, isQuit(cmd))
}

func TestModelBoom(t *testing.T) {
	m := newTestModel(t, mines.Difficulty{Width: 3, Height: 1, MineCount: 1})
	game := m.Game()

	m, _ = press(t, m, "e")
	require.True(t, game.Running)

	var mineX int
	for x := 1; x <= 3; x++ {
		c, err := game.Grid().Cell(x, 1)
		require.NoError(t, err)
		if c.IsMine {
			mineX = x
		}
	}
	require.NotEqual(t, 2, mineX, "first dig is always safe")
	step := "a"
	if mineX == 3 {
		step = "d"
	}

	m, _ = press(t, m, step, "e")

	assert.Equal(t, mines.Exploded, game.Result)
	view := m.View()
	assert.Contains(t, view, "Boom! Time: ")
	assert.Contains(t, view, "*")
	assert.Contains(t, view, "Press Enter to quit or R to restart")
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, mines.EasyDifficulty)

	view := m.View()
	lines := strings.Split(view, "\n")

	assert.Equal(t, "---- MINESWEEPER ----", lines[0])
	assert.Equal(t, strings.Repeat("█", 11), lines[1])
	assert.Equal(t, "█"+strings.Repeat("█", 9)+"█", lines[6])
	assert.Contains(t, view, "Mines: 10, Flags: 10")
	assert.Contains(t, view, "easy  Time: ")
	for _, help := range []string{"dig", "flag", "quit", "easy", "medium", "hard"} {
		assert.Contains(t, view, help)
	}
	assert.NotContains(t, view, "Terminal too small")
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "---- MINESWEEPER ----", header(11))
	assert.Equal(t, "---- MINESWEEPER ----", header(19))
	assert.Equal(t, "---------- MINESWEEPER ----------", header(33))
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(t, mines.EasyDifficulty)
	assert.False(t, m.TooSmall(), "size unknown until the first resize")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	m = next.(Model)
	assert.True(t, m.TooSmall())
	assert.Contains(t, m.View(), "Terminal too small: need 21x19, have 10x5")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = next.(Model)
	assert.False(t, m.TooSmall())
	assert.NotContains(t, m.View(), "Terminal too small")
}
