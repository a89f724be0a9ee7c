package middleware

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type loggingModel struct {
	next   tea.Model
	logger *logrus.Logger
}

func (m loggingModel) Init() tea.Cmd {
	m.logger.Debug("program started")
	return m.next.Init()
}

func (m loggingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		start := time.Now()
		next, cmd := m.next.Update(msg)
		m.logger.WithFields(logrus.Fields{
			"key":           msg.String(),
			"duration (us)": time.Since(start).Microseconds(),
		}).Debug("handled key")
		m.next = next
		return m, cmd
	case tea.WindowSizeMsg:
		m.logger.WithFields(logrus.Fields{
			"width":  msg.Width,
			"height": msg.Height,
		}).Info("terminal resized")
	case tea.QuitMsg:
		m.logger.Info("quit requested")
	}

	next, cmd := m.next.Update(msg)
	m.next = next
	return m, cmd
}

func (m loggingModel) View() string {
	return m.next.View()
}

// Unwrap returns the wrapped model.
func (m loggingModel) Unwrap() tea.Model {
	return m.next
}

// Logging records key presses and resizes on logger.
func Logging(logger *logrus.Logger) Middleware {
	return func(next tea.Model) tea.Model {
		return loggingModel{next: next, logger: logger}
	}
}
