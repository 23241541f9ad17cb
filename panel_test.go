package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelModes(t *testing.T) {
	e := newTestEditor()
	p := NewPropertyPanel(e)
	assert.Equal(t, PanelPlaceholder, p.Mode())
	_, ok := p.Style()
	assert.False(t, ok)

	e.Store().Append(rectangle(0, 0, 50, 50))
	e.Store().Select(0)
	assert.Equal(t, PanelSelection, p.Mode())

	e.SetTool(ToolRectangle)
	assert.Equal(t, PanelDrawStyle, p.Mode(), "rectangle tool shows the draw style even with a selection")
	st, ok := p.Style()
	require.True(t, ok)
	assert.Equal(t, e.DrawStyle(), st)
}

func TestPanelEditsDrawStyle(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolRectangle)
	p := NewPropertyPanel(e)

	require.True(t, p.SetColor(FieldFill, mustHex("#ef4444")))
	assert.Equal(t, "#ef4444", e.DrawStyle().Fill.Hex())
	assert.Equal(t, defaultBorder, e.DrawStyle().Border.Hex())

	require.True(t, p.SetBorderWidth(7))
	assert.Equal(t, 7, e.DrawStyle().BorderWidth)
}

func TestPanelEditsSelectedShapeOnly(t *testing.T) {
	e := newTestEditor()
	e.Store().Append(rectangle(0, 0, 50, 50))
	e.Store().Append(rectangle(100, 100, 50, 50))
	e.Store().Select(1)
	p := NewPropertyPanel(e)

	require.True(t, p.SetColor(FieldBorder, mustHex("#111827")))
	require.True(t, p.SetBorderWidth(0))

	got := e.Store().At(1).Style
	assert.Equal(t, "#111827", got.Border.Hex())
	assert.Equal(t, defaultFill, got.Fill.Hex())
	assert.Equal(t, 0, got.BorderWidth)
	assert.Equal(t, defaultStyle(), e.Store().At(0).Style)
	assert.Equal(t, defaultStyle(), e.DrawStyle())
}

func TestPanelPlaceholderIgnoresEdits(t *testing.T) {
	e := newTestEditor()
	p := NewPropertyPanel(e)
	n := 0
	e.Store().Subscribe(func() { n++ })

	assert.False(t, p.SetColor(FieldFill, mustHex("#ef4444")))
	assert.False(t, p.SetBorderWidth(3))
	assert.Equal(t, 0, n)
	assert.Equal(t, defaultStyle(), e.DrawStyle())
}

func TestClampBorderWidth(t *testing.T) {
	assert.Equal(t, 0, clampBorderWidth(-3))
	assert.Equal(t, 12, clampBorderWidth(12))
	assert.Equal(t, 20, clampBorderWidth(99))
}
