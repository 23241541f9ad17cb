package main

import colorful "github.com/lucasb-eyer/go-colorful"

// PropertyPanel binds the style controls either to the editor's draw style
// or to the selected shape, depending on the tool.
type PropertyPanel struct {
	editor *Editor
}

func NewPropertyPanel(e *Editor) PropertyPanel {
	return PropertyPanel{editor: e}
}

func (p PropertyPanel) Mode() PanelMode {
	if p.editor.Tool() == ToolRectangle {
		return PanelDrawStyle
	}
	if _, ok := p.editor.Store().Selected(); ok {
		return PanelSelection
	}
	return PanelPlaceholder
}

// Style is the style the controls show; false in placeholder mode.
func (p PropertyPanel) Style() (Style, bool) {
	switch p.Mode() {
	case PanelDrawStyle:
		return p.editor.DrawStyle(), true
	case PanelSelection:
		i, _ := p.editor.Store().Selected()
		return p.editor.Store().At(i).Style, true
	}
	return Style{}, false
}

func (p PropertyPanel) SetColor(f ColorField, c colorful.Color) bool {
	return p.edit(func(s *Style) {
		if f == FieldBorder {
			s.Border = c
		} else {
			s.Fill = c
		}
	})
}

func (p PropertyPanel) SetBorderWidth(w int) bool {
	return p.edit(func(s *Style) { s.BorderWidth = w })
}

// edit applies fn to whatever the controls are bound to. It reports false
// when no controls are shown.
func (p PropertyPanel) edit(fn func(s *Style)) bool {
	switch p.Mode() {
	case PanelDrawStyle:
		st := p.editor.DrawStyle()
		fn(&st)
		p.editor.SetDrawStyle(st)
		return true
	case PanelSelection:
		i, _ := p.editor.Store().Selected()
		p.editor.Store().Update(i, func(r *Rectangle) { fn(&r.Style) })
		return true
	}
	return false
}

// clampBorderWidth is the range of the border width slider.
func clampBorderWidth(w int) int {
	return min(max(w, minBorderWidth), maxBorderWidth)
}
