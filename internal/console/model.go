package console

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea front end of a [mines.Game]. The game is shared,
// so copies of the model all drive the same board.
type Model struct {
	game   *mines.Game
	keys   KeyMap
	styles Styles
	help   help.Model

	// terminal size, zero until the first WindowSizeMsg
	width, height int

	err error
}

type Option func(*Model)

func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

func New(game *mines.Game, opts ...Option) Model {
	h := help.New()
	h.ShowAll = true

	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   h,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Game() *mines.Game {
	return m.game
}

// Err is the last error returned by the game, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// keeps the clock on screen moving
		return m, tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		cmd := m.keys.Command(msg)
		if !m.game.Running {
			cmd = m.keys.GameOverCommand(msg)
		}
		return m.execute(cmd)
	}
	return m, nil
}

func (m Model) execute(cmd mines.Command) (tea.Model, tea.Cmd) {
	if cmd == mines.CmdQuit {
		return m, tea.Quit
	}
	if cmd == mines.CmdNoop {
		return m, nil
	}
	_, err := m.game.Execute(cmd)
	m.err = err
	return m, nil
}

// TooSmall reports whether the last known terminal size cannot fit the
// board and its surrounding text.
func (m Model) TooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	w, h := m.minSize()
	return m.width < w || m.height < h
}

func (m Model) minSize() (width, height int) {
	width = max(m.game.Width, len([]rune(header(m.game.Width))))
	height = m.game.Height + chromeLines
	return width, height
}
