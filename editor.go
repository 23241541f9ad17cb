package main

import "log"

// Editor interprets pointer gestures against the current tool and mutates
// the store. It holds the interaction state of the single open canvas.
type Editor struct {
	store     *ShapeStore
	tool      Tool
	gesture   Gesture
	handle    *Handle
	anchor    Point
	drawStyle Style
}

func NewEditor(store *ShapeStore, drawStyle Style) *Editor {
	return &Editor{
		store:     store,
		tool:      ToolSelect,
		drawStyle: drawStyle,
	}
}

func (e *Editor) Store() *ShapeStore { return e.store }
func (e *Editor) Tool() Tool         { return e.tool }
func (e *Editor) Gesture() Gesture   { return e.gesture }

// SetTool switches the active tool, ending any gesture in progress. The
// selection is kept.
func (e *Editor) SetTool(t Tool) {
	if e.tool == t {
		return
	}
	e.tool = t
	e.reset()
	e.store.Touch()
}

func (e *Editor) DrawStyle() Style { return e.drawStyle }

func (e *Editor) SetDrawStyle(s Style) {
	e.drawStyle = s
	e.store.Touch()
}

// ActiveHandle is the handle being dragged during a resize.
func (e *Editor) ActiveHandle() (Handle, bool) {
	if e.handle == nil {
		return Handle{}, false
	}
	return *e.handle, true
}

// PointerDown starts a gesture. A gesture still running, because its
// release was never delivered, is dropped first.
func (e *Editor) PointerDown(p Point) {
	e.reset()
	switch e.tool {
	case ToolRectangle:
		e.gesture = GestureDrawing
		e.anchor = p
		e.store.SetCurrent(Rect{X: p.X, Y: p.Y})
	case ToolSelect:
		if i, ok := e.store.Selected(); ok {
			if h, ok := HandleAtPoint(p, e.store.At(i).Rect); ok {
				e.gesture = GestureResizing
				e.handle = &h
				e.anchor = p
				return
			}
		}
		if i, ok := e.store.ShapeAt(p); ok {
			e.store.Select(i)
			e.gesture = GestureMoving
			e.anchor = p
			return
		}
		e.store.Deselect()
	}
}

func (e *Editor) PointerMove(p Point) {
	switch e.gesture {
	case GestureDrawing:
		e.store.SetCurrent(SpanRect(e.anchor, p))
	case GestureMoving:
		i := e.mustSelected()
		d := p.Sub(e.anchor)
		e.store.Update(i, func(r *Rectangle) {
			r.Rect = r.Translate(d.X, d.Y)
		})
		e.anchor = p
	case GestureResizing:
		i := e.mustSelected()
		if e.handle == nil {
			panic("resizing without an active handle")
		}
		d := p.Sub(e.anchor)
		kind := e.handle.Kind
		e.store.Update(i, func(r *Rectangle) {
			r.Rect = resize(r.Rect, kind, d.X, d.Y)
		})
		e.anchor = p
	}
}

func (e *Editor) PointerUp() {
	switch e.gesture {
	case GestureIdle:
		return
	case GestureDrawing:
		if r, ok := e.store.Current(); ok {
			if r.Width > minCommitSize && r.Height > minCommitSize {
				i := e.store.Append(Rectangle{Rect: r, Style: e.drawStyle})
				log.Printf("committed rectangle %d at (%.0f,%.0f) %.0fx%.0f", i, r.X, r.Y, r.Width, r.Height)
			} else {
				log.Printf("discarded rectangle %.0fx%.0f below threshold", r.Width, r.Height)
			}
		}
		e.store.ClearCurrent()
	case GestureMoving, GestureResizing:
		if i, ok := e.store.Selected(); ok {
			r := e.store.At(i)
			log.Printf("%s rectangle %d to (%.0f,%.0f) %.0fx%.0f", e.gesture, i, r.X, r.Y, r.Width, r.Height)
		}
	}
	e.gesture = GestureIdle
	e.handle = nil
}

// reset abandons the current gesture without committing it.
func (e *Editor) reset() {
	if e.gesture == GestureDrawing {
		log.Printf("dropped unfinished drawing")
	}
	e.gesture = GestureIdle
	e.handle = nil
	if _, ok := e.store.Current(); ok {
		e.store.ClearCurrent()
	}
}

func (e *Editor) mustSelected() int {
	i, ok := e.store.Selected()
	if !ok {
		panic(e.gesture.String() + " with no selection")
	}
	return i
}
