package mines

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Outcome uint8

const (
	Continue Outcome = iota
	Exploded
	Cleared
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Exploded:
		return "exploded"
	case Cleared:
		return "cleared"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// GameState is the bookkeeping of one game. Width and Height include the
// border.
type GameState struct {
	Width, Height    int
	MineCount        int
	FlagCount        int
	DiggedCount      int
	PlayerX, PlayerY int
	FirstMove        bool
	Running          bool
	Result           Outcome
	Preset           Preset
	StartedAt        time.Time
	EndedAt          time.Time
	Detonated        *Point
}

// SafeCells is the number of cells that must be dug to win.
func (s *GameState) SafeCells() int {
	return (s.Width-2)*(s.Height-2) - s.MineCount
}

// Game owns the grid and the state of the current game and routes commands
// to the generator and the reveal engine. It is not safe for concurrent use.
type Game struct {
	*GameState
	grid       *Grid
	difficulty Difficulty
	rnd        *rand.Rand
	now        func() time.Time
}

type Option func(*Game)

// WithClock replaces time.Now as the source of start and end timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

func NewGame(d Difficulty, r *rand.Rand, opts ...Option) (*Game, error) {
	g := &Game{
		rnd: r,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.start(d); err != nil {
		return nil, err
	}
	return g, nil
}

// start replaces the grid and state wholesale. Restarting and switching
// difficulty both end up here.
func (g *Game) start(d Difficulty) error {
	grid, state, err := Initialize(d, g.rnd)
	if err != nil {
		return fmt.Errorf("unable to start a new game: %w", err)
	}
	state.StartedAt = g.now()

	g.grid = grid
	g.GameState = state
	g.difficulty = d

	Log.WithFields(logrus.Fields{
		"difficulty": d.String(),
		"player":     Point{state.PlayerX, state.PlayerY},
	}).Info("new game")
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.Debug("mine layout\n" + grid.String())
	}

	return nil
}

func (g *Game) Grid() *Grid {
	return g.grid
}

func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

func (g *Game) Restart() error {
	return g.start(g.difficulty)
}

func (g *Game) SelectPreset(p Preset) error {
	d, err := PresetDifficulty(p)
	if err != nil {
		return err
	}
	return g.start(d)
}

// Dig opens the cell under the cursor.
func (g *Game) Dig() Outcome {
	return g.dig(g.PlayerX, g.PlayerY)
}

// ToggleFlag flags or unflags the cell under the cursor. Flags are only
// accepted after the first dig.
func (g *Game) ToggleFlag() {
	g.setFlag(g.PlayerX, g.PlayerY)
}

// Move shifts the cursor by dx, dy. The border stops it.
func (g *Game) Move(dx, dy int) bool {
	return g.move(g.PlayerX+dx, g.PlayerY+dy)
}

// MoveTo places the cursor at x, y. Positions outside the grid are rejected
// with a [*PositionError]; border cells are a no-op.
func (g *Game) MoveTo(x, y int) (bool, error) {
	if !g.grid.InBounds(x, y) {
		return false, &PositionError{x, y, g.Width, g.Height}
	}
	return g.move(x, y), nil
}

// Elapsed is measured lazily and stops at the end of the game.
func (g *Game) Elapsed() time.Duration {
	if !g.EndedAt.IsZero() {
		return g.EndedAt.Sub(g.StartedAt)
	}
	return g.now().Sub(g.StartedAt)
}
