package middleware

import tea "github.com/charmbracelet/bubbletea"

type Middleware func(tea.Model) tea.Model

func Wrap(m tea.Model, mws ...Middleware) tea.Model {
	for _, mw := range mws {
		m = mw(m)
	}
	return m
}

// Unwrap peels every middleware off m.
func Unwrap(m tea.Model) tea.Model {
	for {
		u, ok := m.(interface{ Unwrap() tea.Model })
		if !ok {
			return m
		}
		m = u.Unwrap()
	}
}
