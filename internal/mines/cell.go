package mines

import "strconv"

type CellState int8

const (
	Default CellState = iota
	Digged
	Flag
	Border
)

func (s CellState) String() string {
	switch s {
	case Default:
		return "default"
	case Digged:
		return "digged"
	case Flag:
		return "flag"
	case Border:
		return "border"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Cell is stored by value inside a [Grid]. Mutate it through the grid, never
// through a copy.
type Cell struct {
	X, Y        int
	IsMine      bool
	State       CellState
	MinesAround int
}

func (c Cell) IsDefault() bool { return c.State == Default }
func (c Cell) IsDigged() bool  { return c.State == Digged }
func (c Cell) IsFlag() bool    { return c.State == Flag }
func (c Cell) IsBorder() bool  { return c.State == Border }

// Color is a console palette entry. The renderer decides how each one is
// drawn.
type Color uint8

const (
	White Color = iota
	Green
	DarkGreen
	DarkGray
	DarkYellow
	Blue
	Red
	Magenta
	Yellow
	DarkBlue
	DarkMagenta
	DarkRed
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Green:
		return "green"
	case DarkGreen:
		return "dark green"
	case DarkGray:
		return "dark gray"
	case DarkYellow:
		return "dark yellow"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Magenta:
		return "magenta"
	case Yellow:
		return "yellow"
	case DarkBlue:
		return "dark blue"
	case DarkMagenta:
		return "dark magenta"
	case DarkRed:
		return "dark red"
	default:
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
}

const (
	BlockSymbol  = '█'
	DiggedSymbol = ' '
	MineSymbol   = '*'
)

var numberColors = [9]Color{
	1: Blue,
	2: Green,
	3: Red,
	4: Magenta,
	5: Yellow,
	6: DarkBlue,
	7: DarkMagenta,
	8: DarkGray,
}

type Glyph struct {
	Symbol rune
	Color  Color
}

func (g Glyph) String() string {
	return string(g.Symbol)
}

// Glyph derives the presentation of the cell during play.
func (c Cell) Glyph(player bool) Glyph {
	switch {
	case c.State == Border:
		return Glyph{BlockSymbol, DarkGray}
	case player:
		return Glyph{BlockSymbol, White}
	case c.State == Flag:
		return Glyph{BlockSymbol, DarkRed}
	case c.State == Digged && c.MinesAround == 0:
		return Glyph{DiggedSymbol, DarkYellow}
	case c.State == Digged:
		return Glyph{rune('0' + c.MinesAround), numberColors[c.MinesAround]}
	case (c.X+c.Y)%2 == 0:
		return Glyph{BlockSymbol, Green}
	default:
		return Glyph{BlockSymbol, DarkGreen}
	}
}

// RevealedGlyph is the game-over presentation: every mine is shown, the
// detonated one in red.
func (c Cell) RevealedGlyph(player, detonated bool) Glyph {
	if !c.IsMine {
		return c.Glyph(player)
	}
	if detonated {
		return Glyph{MineSymbol, Red}
	}
	return Glyph{MineSymbol, White}
}
