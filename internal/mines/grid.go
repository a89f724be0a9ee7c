package mines

import (
	"iter"
	"strconv"
	"strings"
)

// Grid is the bordered playing field. Cells are kept row-major in a single
// slice; every write goes through the set* methods below.
type Grid struct {
	width, height int
	cells         []Cell
}

func newGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := range height {
		for x := range width {
			c := Cell{X: x, Y: y}
			if g.IsBorder(x, y) {
				c.State = Border
			}
			g.cells[y*width+x] = c
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

func (g *Grid) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// Cell returns a copy of the cell at x, y.
func (g *Grid) Cell(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, &PositionError{x, y, g.width, g.height}
	}
	return g.cells[y*g.width+x], nil
}

// panics [AssertionError]
func (g *Grid) at(x, y int) *Cell {
	if !g.InBounds(x, y) {
		panic(AssertionError{
			"cell " + strconv.Itoa(x) + ":" + strconv.Itoa(y) + " does not exist",
		})
	}
	return &g.cells[y*g.width+x]
}

func (g *Grid) setState(x, y int, s CellState) {
	g.at(x, y).State = s
}

func (g *Grid) setMine(x, y int, mine bool) {
	g.at(x, y).IsMine = mine
}

func (g *Grid) setMinesAround(x, y, n int) {
	g.at(x, y).MinesAround = n
}

// neighbours yields the non-border cells around x, y, the centre excluded.
func (g *Grid) neighbours(x, y int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for yy := y - 1; yy <= y+1; yy++ {
			for xx := x - 1; xx <= x+1; xx++ {
				if (xx == x && yy == y) || !g.InBounds(xx, yy) || g.IsBorder(xx, yy) {
					continue
				}
				if !yield(*g.at(xx, yy)) {
					return
				}
			}
		}
	}
}

func (g *Grid) countMinesAround(x, y int) (n int) {
	for c := range g.neighbours(x, y) {
		if c.IsMine {
			n++
		}
	}
	return n
}

func (g *Grid) setAllMinesAround() {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			g.setMinesAround(x, y, g.countMinesAround(x, y))
		}
	}
}

func (g *Grid) Mines() (count int) {
	for _, c := range g.cells {
		if c.IsMine {
			count++
		}
	}
	return count
}

// String dumps the mine layout: '#' border, '*' mine, digit otherwise.
func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			c := g.cells[y*g.width+x]
			switch {
			case c.State == Border:
				b.WriteByte('#')
			case c.IsMine:
				b.WriteByte('*')
			default:
				b.WriteByte(byte('0' + c.MinesAround))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
