package config

import (
	"fmt"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

type App struct {
	Preset  string `schema:"preset"`
	Seed    uint64 `schema:"seed"`
	NoColor bool   `schema:"no_color"`
}

func NewApp() (*App, error) {
	app := &App{
		Preset: mines.Medium.String(),
	}
	if err := decodeEnv(app); err != nil {
		return nil, fmt.Errorf("unable to decode app config: %w", err)
	}
	if _, err := app.Difficulty(); err != nil {
		return nil, err
	}
	return app, nil
}

// Difficulty resolves the configured preset.
func (a *App) Difficulty() (mines.Difficulty, error) {
	p, err := mines.ParsePreset(a.Preset)
	if err != nil {
		return mines.Difficulty{}, err
	}
	return mines.PresetDifficulty(p)
}
