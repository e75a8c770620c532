package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/meteorinca/cartesian/internal/geometry"
	"github.com/meteorinca/cartesian/internal/grid"
	"github.com/meteorinca/cartesian/internal/ui/theme"
)

// GridView renders the coordinate plane as character cells. Points,
// the learner's plotted mark, and the movable cursor are drawn on top
// of the axes; the cursor wins when cells collide so it is never lost.
type GridView struct {
	Transform grid.Transform

	// Points are pre-drawn problem points.
	Points []geometry.Coordinate

	// Plotted is the learner's current mark, if any.
	Plotted *geometry.Coordinate

	// Cursor is the movable selection, if the mode uses one.
	Cursor *geometry.Coordinate
}

// NewGridView creates a grid view for the given display range.
func NewGridView(rng int) GridView {
	return GridView{Transform: grid.NewTransform(rng)}
}

type cellStyle int

const (
	cellPlain cellStyle = iota
	cellAxis
	cellPoint
	cellPlotted
	cellCursor
)

// View renders the grid.
func (g GridView) View() string {
	t := g.Transform
	width, height := t.Width(), t.Height()

	runes := make([][]rune, height)
	styles := make([][]cellStyle, height)
	for r := 0; r < height; r++ {
		runes[r] = make([]rune, width)
		styles[r] = make([]cellStyle, width)
		for c := 0; c < width; c++ {
			runes[r][c] = ' '
		}
	}

	// Lattice dots at every integer coordinate off the axes.
	for x := -t.Range; x <= t.Range; x++ {
		for y := -t.Range; y <= t.Range; y++ {
			col, row := t.ToCell(geometry.Coordinate{X: x, Y: y})
			runes[row][col] = '·'
		}
	}

	// Axes through the origin.
	originCol, originRow := t.ToCell(geometry.Coordinate{})
	for c := t.Margin; c < width-t.Margin; c++ {
		runes[originRow][c] = '─'
		styles[originRow][c] = cellAxis
	}
	for r := t.Margin; r < height-t.Margin; r++ {
		runes[r][originCol] = '│'
		styles[r][originCol] = cellAxis
	}
	runes[originRow][originCol] = '┼'

	place := func(c geometry.Coordinate, ch rune, st cellStyle) {
		col, row := t.ToCell(c)
		runes[row][col] = ch
		styles[row][col] = st
	}

	for _, p := range g.Points {
		place(p, '●', cellPoint)
	}
	if g.Plotted != nil {
		place(*g.Plotted, '◉', cellPlotted)
	}
	if g.Cursor != nil {
		place(*g.Cursor, '╋', cellCursor)
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < width; c++ {
			b.WriteString(styleFor(styles[r][c]).Render(string(runes[r][c])))
		}
	}
	return b.String()
}

func styleFor(st cellStyle) lipgloss.Style {
	switch st {
	case cellAxis:
		return theme.Axis
	case cellPoint:
		return theme.GridPoint
	case cellPlotted:
		return theme.GridPlotted
	case cellCursor:
		return theme.GridCursor
	default:
		return lipgloss.NewStyle().Foreground(theme.Border)
	}
}
