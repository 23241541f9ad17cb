package main

import "math"

// PointInRect reports whether p lies inside r, edges included.
func PointInRect(p Point, r Rect) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// HandlePositions returns the corners of r in nw, ne, sw, se order.
func HandlePositions(r Rect) [4]Handle {
	return [4]Handle{
		{Kind: HandleNW, Point: Point{r.X, r.Y}},
		{Kind: HandleNE, Point: Point{r.X + r.Width, r.Y}},
		{Kind: HandleSW, Point: Point{r.X, r.Y + r.Height}},
		{Kind: HandleSE, Point: Point{r.X + r.Width, r.Y + r.Height}},
	}
}

// HandleAtPoint returns the first handle of r within handleHitRadius of p.
func HandleAtPoint(p Point, r Rect) (Handle, bool) {
	for _, h := range HandlePositions(r) {
		if math.Hypot(p.X-h.X, p.Y-h.Y) <= handleHitRadius {
			return h, true
		}
	}
	return Handle{}, false
}

// SpanRect returns the rectangle with corners a and b, whatever the drag direction.
func SpanRect(a, b Point) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Canon flips negative extents so the rectangle covers the same area with
// a top-left origin.
func (r Rect) Canon() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// handleRect is the square drawn around a handle position.
func handleRect(h Handle) Rect {
	half := handleSize / 2
	return Rect{X: h.X - half, Y: h.Y - half, Width: handleSize, Height: handleSize}
}

// resize applies the pointer delta to r as dragged from handle k. Extents
// are not clamped, so dragging past the opposite edge inverts the rectangle.
func resize(r Rect, k HandleKind, dx, dy float64) Rect {
	switch k {
	case HandleSE:
		r.Width += dx
		r.Height += dy
	case HandleSW:
		r.X += dx
		r.Width -= dx
		r.Height += dy
	case HandleNE:
		r.Y += dy
		r.Width += dx
		r.Height -= dy
	case HandleNW:
		r.X += dx
		r.Y += dy
		r.Width -= dx
		r.Height -= dy
	}
	return r
}
