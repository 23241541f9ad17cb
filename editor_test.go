package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor() *Editor {
	return NewEditor(NewShapeStore(), defaultStyle())
}

func drag(e *Editor, from Point, path ...Point) {
	e.PointerDown(from)
	for _, p := range path {
		e.PointerMove(p)
	}
	e.PointerUp()
}

func TestDrawCommitsNormalizedRectangle(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolRectangle)

	drag(e, Point{100, 100}, Point{140, 130}, Point{180, 160})

	require.Equal(t, 1, e.Store().Len())
	got := e.Store().At(0)
	assert.Equal(t, Rect{X: 100, Y: 100, Width: 80, Height: 60}, got.Rect)
	assert.Equal(t, defaultStyle(), got.Style)
	_, drawing := e.Store().Current()
	assert.False(t, drawing)
	assert.Equal(t, GestureIdle, e.Gesture())
}

func TestDrawReverseDirectionCommitsSameRectangle(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolRectangle)

	drag(e, Point{180, 160}, Point{100, 100})

	require.Equal(t, 1, e.Store().Len())
	assert.Equal(t, Rect{X: 100, Y: 100, Width: 80, Height: 60}, e.Store().At(0).Rect)
}

func TestDrawBelowThresholdIsDiscarded(t *testing.T) {
	tests := []struct {
		name string
		to   Point
	}{
		{"narrow", Point{105, 160}},
		{"short", Point{180, 105}},
		{"click", Point{100, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor()
			e.SetTool(ToolRectangle)
			drag(e, Point{100, 100}, tt.to)
			assert.Equal(t, 0, e.Store().Len())
			_, drawing := e.Store().Current()
			assert.False(t, drawing, "in-progress rectangle must be cleared")
		})
	}
}

func TestDrawUsesStyleAtCommitTime(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolRectangle)
	st := Style{Fill: mustHex("#ef4444"), Border: mustHex("#111827"), BorderWidth: 7}
	e.SetDrawStyle(st)

	drag(e, Point{0, 0}, Point{50, 50})

	require.Equal(t, 1, e.Store().Len())
	assert.Equal(t, st, e.Store().At(0).Style)
}

func TestDrawInProgressFollowsPointer(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolRectangle)
	e.PointerDown(Point{50, 50})

	cur, ok := e.Store().Current()
	require.True(t, ok)
	assert.Equal(t, Rect{X: 50, Y: 50}, cur)
	assert.Equal(t, GestureDrawing, e.Gesture())

	e.PointerMove(Point{20, 80})
	cur, _ = e.Store().Current()
	assert.Equal(t, Rect{X: 20, Y: 50, Width: 30, Height: 30}, cur)
}

func TestSelectClickOnEmptyCanvas(t *testing.T) {
	e := newTestEditor()
	e.PointerDown(Point{50, 50})
	_, ok := e.Store().Selected()
	assert.False(t, ok)
	assert.Equal(t, GestureIdle, e.Gesture())
	e.PointerUp()
	assert.Equal(t, GestureIdle, e.Gesture())
}

func TestSelectTopmostWins(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(0, 0, 100, 100))
	e.Store().Append(rectangle(50, 50, 100, 100))

	e.PointerDown(Point{75, 75})
	i, ok := e.Store().Selected()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, GestureMoving, e.Gesture())
	e.PointerUp()

	e.PointerDown(Point{10, 10})
	i, _ = e.Store().Selected()
	assert.Equal(t, 0, i)
	e.PointerUp()
}

func TestClickOutsideDeselects(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(0, 0, 100, 100))
	drag(e, Point{50, 50})
	_, ok := e.Store().Selected()
	require.True(t, ok)

	drag(e, Point{300, 300})
	_, ok = e.Store().Selected()
	assert.False(t, ok)
}

func TestMoveDeltasCompose(t *testing.T) {
	stepwise := newTestEditor()
	stepwise.Store().Append(rectangle(100, 100, 80, 60))
	drag(stepwise, Point{120, 120}, Point{125, 117}, Point{140, 130})

	once := newTestEditor()
	once.Store().Append(rectangle(100, 100, 80, 60))
	drag(once, Point{120, 120}, Point{140, 130})

	want := Rect{X: 120, Y: 110, Width: 80, Height: 60}
	assert.Equal(t, want, stepwise.Store().At(0).Rect)
	assert.Equal(t, want, once.Store().At(0).Rect)
}

func TestResizeSEChangesOnlySize(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(100, 100, 80, 60))
	e.Store().Select(0)

	e.PointerDown(Point{180, 160})
	require.Equal(t, GestureResizing, e.Gesture())
	h, ok := e.ActiveHandle()
	require.True(t, ok)
	assert.Equal(t, HandleSE, h.Kind)

	e.PointerMove(Point{192, 167})
	e.PointerUp()

	assert.Equal(t, Rect{X: 100, Y: 100, Width: 92, Height: 67}, e.Store().At(0).Rect)
	_, ok = e.ActiveHandle()
	assert.False(t, ok)
}

func TestResizeNWByTen(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(100, 100, 80, 60))
	drag(e, Point{140, 130}) // select

	drag(e, Point{100, 100}, Point{105, 105}, Point{110, 110})

	assert.Equal(t, Rect{X: 110, Y: 110, Width: 70, Height: 50}, e.Store().At(0).Rect)
}

func TestResizeSWAndNE(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(100, 100, 80, 60))
	e.Store().Select(0)

	drag(e, Point{100, 160}, Point{90, 170})
	assert.Equal(t, Rect{X: 90, Y: 100, Width: 90, Height: 70}, e.Store().At(0).Rect)

	drag(e, Point{180, 100}, Point{190, 90})
	assert.Equal(t, Rect{X: 90, Y: 90, Width: 100, Height: 80}, e.Store().At(0).Rect)
}

func TestResizePastOppositeEdgeInverts(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(100, 100, 80, 60))
	e.Store().Select(0)

	drag(e, Point{180, 160}, Point{60, 130})

	r := e.Store().At(0).Rect
	assert.Equal(t, -40.0, r.Width)
	assert.Equal(t, 30.0, r.Height)
}

func TestHandleTakesPrecedenceOverBody(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(100, 100, 80, 60))
	e.Store().Append(rectangle(170, 150, 50, 50))
	e.Store().Select(0)

	// (180,160) is inside shape 1 but on shape 0's se handle.
	e.PointerDown(Point{180, 160})
	assert.Equal(t, GestureResizing, e.Gesture())
	i, _ := e.Store().Selected()
	assert.Equal(t, 0, i)
	e.PointerUp()
}

func TestHandlesOnlyForSelectedShape(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(100, 100, 80, 60))

	e.PointerDown(Point{180, 160})
	assert.Equal(t, GestureMoving, e.Gesture(), "no selection yet, so the corner is body")
	e.PointerUp()
}

func TestPointerUpWhenIdleIsNoop(t *testing.T) {
	e := newTestEditor()
	n := 0
	e.Store().Subscribe(func() { n++ })
	e.PointerUp()
	e.PointerMove(Point{10, 10})
	assert.Equal(t, 0, n)
	assert.Equal(t, GestureIdle, e.Gesture())
}

// A release that never arrives must not leak the old gesture into the
// next one.
func TestInterruptedGesture(t *testing.T) {
	tests := []struct {
		name    string
		run     func(e *Editor)
		shapes  int
		want    Rect
		gesture Gesture
	}{
		{
			name: "move then press on empty canvas",
			run: func(e *Editor) {
				e.PointerDown(Point{120, 120})
				e.PointerDown(Point{500, 500})
				e.PointerMove(Point{510, 510})
			},
			shapes:  1,
			want:    Rect{X: 100, Y: 100, Width: 80, Height: 60},
			gesture: GestureIdle,
		},
		{
			name: "resize then press on body",
			run: func(e *Editor) {
				e.Store().Select(0)
				e.PointerDown(Point{180, 160})
				e.PointerDown(Point{140, 130})
				e.PointerMove(Point{150, 140})
			},
			shapes:  1,
			want:    Rect{X: 110, Y: 110, Width: 80, Height: 60},
			gesture: GestureMoving,
		},
		{
			name: "draw then switch to select and drag",
			run: func(e *Editor) {
				e.SetTool(ToolRectangle)
				e.PointerDown(Point{10, 10})
				e.PointerMove(Point{40, 40})
				e.SetTool(ToolSelect)
				e.PointerDown(Point{300, 300})
				e.PointerMove(Point{400, 400})
				e.PointerUp()
			},
			shapes:  1,
			want:    Rect{X: 100, Y: 100, Width: 80, Height: 60},
			gesture: GestureIdle,
		},
		{
			name: "draw then press again",
			run: func(e *Editor) {
				e.SetTool(ToolRectangle)
				e.PointerDown(Point{10, 10})
				e.PointerMove(Point{40, 40})
				e.PointerDown(Point{300, 300})
				e.PointerMove(Point{302, 302})
				e.PointerUp()
			},
			shapes:  1,
			want:    Rect{X: 100, Y: 100, Width: 80, Height: 60},
			gesture: GestureIdle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor()
			e.Store().Append(rectangle(100, 100, 80, 60))

			require.NotPanics(t, func() { tt.run(e) })
			assert.Equal(t, tt.shapes, e.Store().Len())
			assert.Equal(t, tt.want, e.Store().At(0).Rect)
			assert.Equal(t, tt.gesture, e.Gesture())
			_, drawing := e.Store().Current()
			assert.False(t, drawing)
		})
	}
}

func TestToolSwitchEndsGesture(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(100, 100, 80, 60))
	e.Store().Select(0)
	e.PointerDown(Point{180, 160})
	require.Equal(t, GestureResizing, e.Gesture())

	e.SetTool(ToolRectangle)
	assert.Equal(t, GestureIdle, e.Gesture())
	_, ok := e.ActiveHandle()
	assert.False(t, ok)

	e.PointerMove(Point{200, 200})
	assert.Equal(t, Rect{X: 100, Y: 100, Width: 80, Height: 60}, e.Store().At(0).Rect)
}

func TestToolSwitchKeepsSelection(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(0, 0, 50, 50))
	drag(e, Point{10, 10})

	e.SetTool(ToolRectangle)
	i, ok := e.Store().Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	drag(e, Point{10, 10}, Point{40, 40})
	assert.Equal(t, 2, e.Store().Len(), "drawing over a shape creates a new one")
}

func TestMoveWithoutSelectionPanics(t *testing.T) {
	e := newTestEditor()
	e.gesture = GestureMoving
	assert.Panics(t, func() { e.PointerMove(Point{1, 1}) })

	e.gesture = GestureResizing
	assert.Panics(t, func() { e.PointerMove(Point{1, 1}) })
}

func TestGestureNotifiesRender(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(0, 0, 50, 50))
	n := 0
	e.Store().Subscribe(func() { n++ })

	drag(e, Point{10, 10}, Point{20, 20}, Point{30, 30})
	assert.Equal(t, 3, n, "select plus two moves")
}
