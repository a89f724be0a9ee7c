package console

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Dig     key.Binding
	Flag    key.Binding
	Easy    key.Binding
	Medium  key.Binding
	Hard    key.Binding
	Quit    key.Binding
	Restart key.Binding
	Confirm key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("W/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("S/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("A/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("D/→", "right"),
		),
		Dig: key.NewBinding(
			key.WithKeys("e", "E"),
			key.WithHelp("E", "dig"),
		),
		Flag: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("Q", "flag"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("x", "X", "esc", "ctrl+c"),
			key.WithHelp("X/Esc", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("R", "restart"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "quit"),
		),
	}
}

// Command translates a key press during play. Keys without a binding map
// to [mines.CmdNoop].
func (k KeyMap) Command(msg tea.KeyMsg) mines.Command {
	switch {
	case key.Matches(msg, k.Up):
		return mines.CmdMoveUp
	case key.Matches(msg, k.Down):
		return mines.CmdMoveDown
	case key.Matches(msg, k.Left):
		return mines.CmdMoveLeft
	case key.Matches(msg, k.Right):
		return mines.CmdMoveRight
	case key.Matches(msg, k.Dig):
		return mines.CmdDig
	case key.Matches(msg, k.Flag):
		return mines.CmdToggleFlag
	case key.Matches(msg, k.Easy):
		return mines.CmdSelectEasy
	case key.Matches(msg, k.Medium):
		return mines.CmdSelectMedium
	case key.Matches(msg, k.Hard):
		return mines.CmdSelectHard
	case key.Matches(msg, k.Quit):
		return mines.CmdQuit
	}
	return mines.CmdNoop
}

// GameOverCommand translates a key press on the game-over screen.
func (k KeyMap) GameOverCommand(msg tea.KeyMsg) mines.Command {
	switch {
	case key.Matches(msg, k.Restart):
		return mines.CmdRestart
	case key.Matches(msg, k.Confirm), key.Matches(msg, k.Quit):
		return mines.CmdQuit
	}
	return mines.CmdNoop
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dig, k.Flag, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Dig, k.Flag},
		{k.Easy, k.Medium, k.Hard},
		{k.Quit},
	}
}
