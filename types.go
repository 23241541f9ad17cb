package main

import colorful "github.com/lucasb-eyer/go-colorful"

type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

type Style struct {
	Fill        colorful.Color
	Border      colorful.Color
	BorderWidth int
}

// Rectangle is a committed shape. Width and Height are non-negative when
// appended, but a resize may carry them below zero afterwards.
type Rectangle struct {
	Rect
	Style
}

type Handle struct {
	Kind HandleKind
	Point
}

// ColorField names one of the two color inputs of the properties panel.
type ColorField int

const (
	FieldFill ColorField = iota
	FieldBorder
)

func (f ColorField) String() string {
	if f == FieldBorder {
		return "Border Color"
	}
	return "Fill Color"
}
