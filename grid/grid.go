package grid

import "sync"

// Grid is the terminal's scrollback plus viewport, addressed by signed
// Points. Row storage and the buffer-absolute addressing scheme are
// adapted from a terminal buffer's scrollback/selection bookkeeping;
// unlike that buffer, wide characters here are marked with discrete flags
// rather than carried as a continuous cell width.
type Grid struct {
	mu sync.RWMutex

	columns     int
	screenLines int
	rows        [][]Cell // rows[0] is the oldest (topmost) line
}

// NewGrid creates an empty grid with the given viewport size. Rows are
// appended with PushRow (scrollback grows from the top) or set directly
// with SetCell once the desired number of lines exist.
func NewGrid(screenLines, columns int) *Grid {
	g := &Grid{columns: columns, screenLines: screenLines}
	g.rows = make([][]Cell, screenLines)
	for i := range g.rows {
		g.rows[i] = emptyRow(columns)
	}
	return g
}

func emptyRow(columns int) []Cell {
	row := make([]Cell, columns)
	for i := range row {
		row[i] = EmptyCell()
	}
	return row
}

// TopmostLine returns the line number of the oldest stored row. It is
// always <= 0: line 0 is the top of the viewport, and negative lines
// count backward into scrollback.
func (g *Grid) TopmostLine() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.topmostLineLocked()
}

func (g *Grid) topmostLineLocked() int {
	return g.screenLines - len(g.rows)
}

// ScreenLines returns the number of rows in the current viewport.
func (g *Grid) ScreenLines() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.screenLines
}

// LastColumn returns the index of the final column.
func (g *Grid) LastColumn() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.columns - 1
}

// TotalLines returns the number of rows currently stored, viewport plus
// scrollback.
func (g *Grid) TotalLines() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rows)
}

// Columns returns the number of columns per row.
func (g *Grid) Columns() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.columns
}

func (g *Grid) rowIndexLocked(line int) int {
	return line - g.topmostLineLocked()
}

// Cell returns the cell at p. Points outside the stored range return the
// empty cell rather than panicking, matching the "out-of-range points
// produce no match, not an error" contract of the search core.
func (g *Grid) Cell(p Point) Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx := g.rowIndexLocked(p.Line)
	if idx < 0 || idx >= len(g.rows) || p.Column < 0 || p.Column >= g.columns {
		return EmptyCell()
	}
	return g.rows[idx][p.Column]
}

// SetCell writes a cell at p, growing scrollback upward if p.Line precedes
// the current topmost line. If p.Line is below the bottom viewport line,
// rows are appended until it fits, which scrolls the existing lines up:
// the cell then lands on the bottom line (ScreenLines()-1), not at p.Line.
// Intended for building and editing grids, not for use by the search core
// itself.
func (g *Grid) SetCell(p Point, c Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for p.Line < g.topmostLineLocked() {
		g.rows = append([][]Cell{emptyRow(g.columns)}, g.rows...)
	}
	idx := g.rowIndexLocked(p.Line)
	for idx >= len(g.rows) {
		g.rows = append(g.rows, emptyRow(g.columns))
	}
	if p.Column < 0 || p.Column >= g.columns {
		return
	}
	g.rows[idx][p.Column] = c
}

// PushRow appends a new physical row below the current bottommost line,
// as scrollback accumulates above it. cells shorter than Columns() are
// padded with empty cells; longer rows are truncated.
func (g *Grid) PushRow(cells []Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	row := emptyRow(g.columns)
	n := len(cells)
	if n > g.columns {
		n = g.columns
	}
	copy(row, cells[:n])
	g.rows = append(g.rows, row)
}

// IterFrom returns a bidirectional cursor positioned at p.
func (g *Grid) IterFrom(p Point) *Cursor {
	return &Cursor{g: g, p: p}
}
