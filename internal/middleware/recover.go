package middleware

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// PanicError carries a panic raised while updating the model.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("model panicked: %v", e.Value)
}

type recoverModel struct {
	next   tea.Model
	logger *logrus.Logger
	err    *PanicError
}

func (m recoverModel) Init() tea.Cmd {
	return m.next.Init()
}

func (m recoverModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if v := recover(); v != nil {
			m.err = &PanicError{Value: v}
			m.logger.WithField("panic", v).Error("recovered from panic in update")
			model, cmd = m, tea.Quit
		}
	}()
	next, cmd := m.next.Update(msg)
	m.next = next
	return m, cmd
}

func (m recoverModel) View() string {
	return m.next.View()
}

func (m recoverModel) Unwrap() tea.Model {
	return m.next
}

// Err returns the recovered panic, if any.
func (m recoverModel) Err() error {
	if m.err == nil {
		return nil
	}
	return m.err
}

// Recover turns a panic inside Update into a logged error and a quit.
func Recover(logger *logrus.Logger) Middleware {
	return func(next tea.Model) tea.Model {
		return recoverModel{next: next, logger: logger}
	}
}
