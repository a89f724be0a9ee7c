package app

import (
	"context"
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/console"
	"github.com/vancomm/minesweeper-console/internal/middleware"
	"github.com/vancomm/minesweeper-console/internal/mines"
	"golang.org/x/sync/errgroup"
)

type App struct {
	logger  *logrus.Logger
	cfg     *config.App
	rnd     *rand.Rand
	options []tea.ProgramOption
}

type Option func(*App)

// WithProgramOptions appends options passed to the Bubble Tea program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(a *App) {
		a.options = append(a.options, opts...)
	}
}

func New(logger *logrus.Logger, cfg *config.App, opts ...Option) *App {
	app := &App{
		logger:  logger,
		cfg:     cfg,
		rnd:     createRand(cfg.Seed),
		options: []tea.ProgramOption{tea.WithAltScreen()},
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// Start runs the game until the player quits or ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	d, err := a.cfg.Difficulty()
	if err != nil {
		return fmt.Errorf("unable to resolve difficulty: %w", err)
	}

	game, err := mines.NewGame(d, a.rnd)
	if err != nil {
		return err
	}

	if a.cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model := middleware.Wrap(
		console.New(game),
		middleware.Logging(a.logger),
		middleware.Recover(a.logger),
	)
	p := tea.NewProgram(model, a.options...)

	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	var final tea.Model
	g.Go(func() error {
		defer close(done)
		m, err := p.Run()
		if err != nil {
			return fmt.Errorf("unable to run program: %w", err)
		}
		final = m
		return nil
	})

	g.Go(func() error {
		select {
		case <-done:
		case <-ctx.Done():
			a.logger.Info("shutting down")
			p.Quit()
		}
		return nil
	})

	a.logger.WithField("difficulty", d.String()).Info("game started")
	if err := g.Wait(); err != nil {
		return err
	}

	if m, ok := final.(interface{ Err() error }); ok {
		if err := m.Err(); err != nil {
			return err
		}
	}

	a.logger.WithFields(logrus.Fields{
		"result":  game.Result.String(),
		"elapsed": game.Elapsed().String(),
	}).Info("game closed")

	return nil
}
