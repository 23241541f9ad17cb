package main

import "image/color"

// Surface is a 2D target that can be cleared and can fill and stroke
// axis-aligned rectangles given in canvas units.
type Surface interface {
	Clear()
	FillRect(r Rect, fill color.Color)
	StrokeRect(r Rect, stroke color.Color, width float64)
}

// handleSurface is a Surface that marks handles itself instead of drawing
// the handle square.
type handleSurface interface {
	Surface
	DrawHandle(p Point)
}

var (
	handleFillColor   = mustHex(handleFill)
	handleAccentColor = mustHex(handleAccent)
)

// Render redraws the full canvas: committed shapes bottom to top, the
// selection handles right after the selected shape, then the rectangle
// being drawn.
func Render(s Surface, store *ShapeStore, draw Style) {
	s.Clear()
	selected, hasSel := store.Selected()
	for i, r := range store.shapes {
		drawRect(s, r.Rect, r.Style)
		if hasSel && i == selected {
			drawHandles(s, r.Rect)
		}
	}
	if cur, ok := store.Current(); ok {
		drawRect(s, cur, draw)
	}
}

func drawRect(s Surface, r Rect, st Style) {
	s.FillRect(r, st.Fill)
	if st.BorderWidth > 0 {
		s.StrokeRect(r, st.Border, float64(st.BorderWidth))
	}
}

func drawHandles(s Surface, r Rect) {
	if hs, ok := s.(handleSurface); ok {
		for _, h := range HandlePositions(r) {
			hs.DrawHandle(h.Point)
		}
		return
	}
	for _, h := range HandlePositions(r) {
		hr := handleRect(h)
		s.FillRect(hr, handleFillColor)
		s.StrokeRect(hr, handleAccentColor, handleStroke)
	}
}
