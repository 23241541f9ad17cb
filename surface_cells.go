package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// cell is one terminal character of the canvas.
type cell struct {
	bg    colorful.Color
	fg    colorful.Color
	glyph rune
}

// cellSurface rasterizes canvas rectangles onto a grid of terminal cells.
// Column c covers canvas x in [c*cellW, (c+1)*cellW); a rectangle covers
// every cell its corners fall in, so corners drawn on the grid line land
// on the cell the pointer reports for them.
type cellSurface struct {
	cols, rows   int
	cellW, cellH float64
	background   colorful.Color
	cells        []cell
}

func newCellSurface(cols, rows int, cellW, cellH float64) *cellSurface {
	s := &cellSurface{
		cellW:      cellW,
		cellH:      cellH,
		background: mustHex(canvasBackground),
	}
	s.Resize(cols, rows)
	return s
}

func (s *cellSurface) Resize(cols, rows int) {
	s.cols = max(cols, 0)
	s.rows = max(rows, 0)
	s.cells = make([]cell, s.cols*s.rows)
	s.Clear()
}

func (s *cellSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{bg: s.background, fg: s.background, glyph: ' '}
	}
}

func (s *cellSurface) At(col, row int) cell {
	return s.cells[row*s.cols+col]
}

// span returns the inclusive cell range covered by r, clipped to the grid.
func (s *cellSurface) span(r Rect) (x0, y0, x1, y1 int, ok bool) {
	r = r.Canon()
	x0 = int(math.Floor(r.X / s.cellW))
	y0 = int(math.Floor(r.Y / s.cellH))
	x1 = int(math.Floor((r.X + r.Width) / s.cellW))
	y1 = int(math.Floor((r.Y + r.Height) / s.cellH))
	if x1 < 0 || y1 < 0 || x0 >= s.cols || y0 >= s.rows {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}

func (s *cellSurface) set(col, row int, fn func(c *cell)) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	fn(&s.cells[row*s.cols+col])
}

func (s *cellSurface) FillRect(r Rect, fill color.Color) {
	x0, y0, x1, y1, ok := s.span(r)
	if !ok {
		return
	}
	bg := toColorful(fill)
	for y := max(y0, 0); y <= min(y1, s.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, s.cols-1); x++ {
			c := &s.cells[y*s.cols+x]
			c.bg = bg
			c.fg = bg
			c.glyph = ' '
		}
	}
}

// StrokeRect draws the border with box glyphs. Edges outside the grid are
// skipped.
func (s *cellSurface) StrokeRect(r Rect, stroke color.Color, width float64) {
	if width <= 0 {
		return
	}
	x0, y0, x1, y1, ok := s.span(r)
	if !ok {
		return
	}
	fg := toColorful(stroke)
	g := borderGlyphs(width)
	put := func(x, y int, ch rune) {
		s.set(x, y, func(c *cell) {
			c.fg = fg
			c.glyph = ch
		})
	}
	// Visible interior of each edge.
	cx0, cx1 := max(x0+1, 0), min(x1-1, s.cols-1)
	cy0, cy1 := max(y0+1, 0), min(y1-1, s.rows-1)
	switch {
	case x0 == x1 && y0 == y1:
		put(x0, y0, '■')
		return
	case y0 == y1:
		for x := max(x0, 0); x <= min(x1, s.cols-1); x++ {
			put(x, y0, g.h)
		}
		return
	case x0 == x1:
		for y := max(y0, 0); y <= min(y1, s.rows-1); y++ {
			put(x0, y, g.v)
		}
		return
	}
	if y0 >= 0 || y1 < s.rows {
		for x := cx0; x <= cx1; x++ {
			put(x, y0, g.h)
			put(x, y1, g.h)
		}
	}
	if x0 >= 0 || x1 < s.cols {
		for y := cy0; y <= cy1; y++ {
			put(x0, y, g.v)
			put(x1, y, g.v)
		}
	}
	put(x0, y0, g.tl)
	put(x1, y0, g.tr)
	put(x0, y1, g.bl)
	put(x1, y1, g.br)
}

// DrawHandle marks the single cell holding p. A square in canvas units
// would cover cells beyond the reach of the handle hit test.
func (s *cellSurface) DrawHandle(p Point) {
	col := int(math.Floor(p.X / s.cellW))
	row := int(math.Floor(p.Y / s.cellH))
	s.set(col, row, func(c *cell) {
		c.bg = handleFillColor
		c.fg = handleAccentColor
		c.glyph = '■'
	})
}

type glyphSet struct {
	h, v, tl, tr, bl, br rune
}

var (
	lightGlyphs  = glyphSet{'─', '│', '┌', '┐', '└', '┘'}
	heavyGlyphs  = glyphSet{'━', '┃', '┏', '┓', '┗', '┛'}
	doubleGlyphs = glyphSet{'═', '║', '╔', '╗', '╚', '╝'}
)

func borderGlyphs(width float64) glyphSet {
	switch {
	case width >= 10:
		return doubleGlyphs
	case width >= 4:
		return heavyGlyphs
	}
	return lightGlyphs
}

// Text returns the glyphs only, one line per row.
func (s *cellSurface) Text() []string {
	lines := make([]string, s.rows)
	for y := 0; y < s.rows; y++ {
		var b strings.Builder
		for x := 0; x < s.cols; x++ {
			b.WriteRune(s.At(x, y).glyph)
		}
		lines[y] = b.String()
	}
	return lines
}

// View renders the grid with colors, grouping runs of equally styled cells.
func (s *cellSurface) View() string {
	lines := make([]string, s.rows)
	for y := 0; y < s.rows; y++ {
		var b strings.Builder
		var run strings.Builder
		var runCell cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle().
				Background(lipgloss.Color(runCell.bg.Hex())).
				Foreground(lipgloss.Color(runCell.fg.Hex()))
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < s.cols; x++ {
			c := s.At(x, y)
			if run.Len() > 0 && (c.bg != runCell.bg || c.fg != runCell.fg) {
				flush()
			}
			runCell = c
			run.WriteRune(c.glyph)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// cellToCanvas maps a canvas-relative cell to its canvas point.
func (s *cellSurface) cellToCanvas(col, row int) Point {
	return Point{X: float64(col) * s.cellW, Y: float64(row) * s.cellH}
}
