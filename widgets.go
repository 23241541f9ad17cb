package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type toolbarKind int

const (
	toolbarTool toolbarKind = iota
	toolbarExport
)

type toolbarItem struct {
	row    int
	kind   toolbarKind
	label  string
	tool   Tool
	format ExportFormat
}

var toolbarItems = []toolbarItem{
	{row: 1, kind: toolbarTool, label: "  ↖  ", tool: ToolSelect},
	{row: 3, kind: toolbarTool, label: "  □  ", tool: ToolRectangle},
	{row: 6, kind: toolbarExport, label: " PNG ", format: ExportPNG},
	{row: 7, kind: toolbarExport, label: " PDF ", format: ExportPDF},
}

// Panel content starts after the left border and one cell of padding.
const panelContentOffset = 2

const (
	swatchWidth = 3 // two block cells and a gap
	sliderStart = 2
)

type actionKind int

const (
	actionEditColor actionKind = iota
	actionPickColor
	actionSetWidth
)

type panelAction struct {
	kind  actionKind
	field ColorField
	color colorful.Color
	width int
}

// panelLine is one row of the properties panel. hit maps a click at a
// content column to an action; nil means the row is not interactive.
type panelLine struct {
	text string
	hit  func(col int) (panelAction, bool)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	activeStyle = lipgloss.NewStyle().Background(lipgloss.Color("#dbeafe")).Foreground(lipgloss.Color("#2563eb"))
	buttonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
)

func (m model) panelLines() []panelLine {
	lines := []panelLine{{text: titleStyle.Render("Properties")}}

	st, ok := m.panel.Style()
	switch m.panel.Mode() {
	case PanelPlaceholder:
		lines = append(lines,
			panelLine{},
			panelLine{text: dimStyle.Render("Select a rectangle to edit")},
			panelLine{text: dimStyle.Render("its properties")},
		)
		return lines
	case PanelDrawStyle:
		lines = append(lines, panelLine{text: dimStyle.Render("Next rectangle")})
	case PanelSelection:
		i, _ := m.editor.Store().Selected()
		lines = append(lines, panelLine{text: dimStyle.Render(fmt.Sprintf("Rectangle %d", i+1))})
	}
	if !ok {
		return lines
	}

	for _, f := range []ColorField{FieldFill, FieldBorder} {
		lines = append(lines,
			panelLine{},
			panelLine{text: labelStyle.Render(f.String())},
			m.colorValueLine(f, styleColor(st, f)),
			swatchLine(f),
		)
	}

	lines = append(lines,
		panelLine{},
		panelLine{text: labelStyle.Render(fmt.Sprintf("Border Width: %dpx", st.BorderWidth))},
		sliderLine(st.BorderWidth),
	)

	if m.panel.Mode() == PanelSelection {
		i, _ := m.editor.Store().Selected()
		r := m.editor.Store().At(i)
		lines = append(lines,
			panelLine{},
			panelLine{text: dimStyle.Render(fmt.Sprintf("x %.0f  y %.0f", r.X, r.Y))},
			panelLine{text: dimStyle.Render(fmt.Sprintf("w %.0f  h %.0f", r.Width, r.Height))},
		)
	}
	return lines
}

func (m model) colorValueLine(f ColorField, c colorful.Color) panelLine {
	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(contrastText(c).Hex()))
	text := chip.Render(" " + c.Hex() + " ")
	if m.editing && m.editField == f {
		text = chip.Render("  ") + " " + m.input.View()
	}
	return panelLine{
		text: text,
		hit: func(int) (panelAction, bool) {
			return panelAction{kind: actionEditColor, field: f}, true
		},
	}
}

func swatchLine(f ColorField) panelLine {
	var b strings.Builder
	for _, hex := range palette {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██"))
		b.WriteString(" ")
	}
	return panelLine{
		text: b.String(),
		hit: func(col int) (panelAction, bool) {
			i := col / swatchWidth
			if col < 0 || col%swatchWidth == swatchWidth-1 || i >= len(palette) {
				return panelAction{}, false
			}
			return panelAction{kind: actionPickColor, field: f, color: mustHex(palette[i])}, true
		},
	}
}

// sliderLine is "- " + one cell per width value + " +".
func sliderLine(width int) panelLine {
	var track strings.Builder
	for v := minBorderWidth; v <= maxBorderWidth; v++ {
		switch {
		case v == width:
			track.WriteString(activeStyle.Render("●"))
		case v < width:
			track.WriteString("━")
		default:
			track.WriteString(dimStyle.Render("─"))
		}
	}
	plus := sliderStart + maxBorderWidth - minBorderWidth + 2
	return panelLine{
		text: buttonStyle.Render("-") + " " + track.String() + " " + buttonStyle.Render("+"),
		hit: func(col int) (panelAction, bool) {
			switch {
			case col == 0:
				return panelAction{kind: actionSetWidth, width: width - 1}, true
			case col == plus:
				return panelAction{kind: actionSetWidth, width: width + 1}, true
			case col >= sliderStart && col < plus-1:
				return panelAction{kind: actionSetWidth, width: minBorderWidth + col - sliderStart}, true
			}
			return panelAction{}, false
		},
	}
}
