// Package grid implements the terminal scrollback grid: points, cells, and
// a bidirectional cursor over them. Lines increase downward — line 0 is the
// top of the current viewport, negative lines are scrollback history, and
// topmost_line is always the smallest (most negative) line present.
package grid

import "fmt"

// Point addresses a single cell. Line can be negative (scrollback); Column
// is always non-negative. Points are totally ordered by (Line, Column).
type Point struct {
	Line   int
	Column int
}

// Compare returns -1, 0, or 1 as p is less than, equal to, or greater than q
// in grid order.
func (p Point) Compare(q Point) int {
	switch {
	case p.Line != q.Line:
		if p.Line < q.Line {
			return -1
		}
		return 1
	case p.Column != q.Column:
		if p.Column < q.Column {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Less reports whether p comes strictly before q in grid order.
func (p Point) Less(q Point) bool { return p.Compare(q) < 0 }

// LessEq reports whether p comes at or before q in grid order.
func (p Point) LessEq(q Point) bool { return p.Compare(q) <= 0 }

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}

// Boundary controls how Point arithmetic treats the edges of the grid.
type Boundary int

const (
	// BoundaryNone performs free arithmetic with no clamping: the result may
	// fall outside the grid's current line range.
	BoundaryNone Boundary = iota
	// BoundaryGrid clamps the result to the grid's [topmost_line, screen_lines-1]
	// line range.
	BoundaryGrid
)

// Add returns the point n cells after p in grid order, wrapping columns at
// last_column the way a GridCursor does. With BoundaryGrid the resulting
// line is clamped to the grid's current range; with BoundaryNone it is not.
func (g *Grid) Add(p Point, b Boundary, n int) Point {
	cols := g.Columns()
	total := p.Column + n
	line := p.Line + total/cols
	column := total % cols
	if column < 0 {
		column += cols
		line--
	}
	if b == BoundaryGrid {
		line = g.ClampLine(line)
	}
	return Point{Line: line, Column: column}
}

// Sub is the inverse of Add.
func (g *Grid) Sub(p Point, b Boundary, n int) Point {
	return g.Add(p, b, -n)
}

// ClampLine clamps a line number into the grid's current [topmost_line,
// screen_lines-1] range.
func (g *Grid) ClampLine(line int) int {
	top := g.TopmostLine()
	bottom := g.ScreenLines() - 1
	if line < top {
		return top
	}
	if line > bottom {
		return bottom
	}
	return line
}
