package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type model struct {
	width          int
	height         int
	config         *Config
	editor         *Editor
	panel          PropertyPanel
	canvas         *cellSurface
	pointer        Point
	editing        bool
	editField      ColorField
	input          textinput.Model
	errorMessage   string
	successMessage string
	now            func() time.Time
}

func initialModel(config *Config) model {
	store := NewShapeStore()
	editor := NewEditor(store, config.DrawStyle)
	canvas := newCellSurface(0, 0, config.CellWidth, config.CellHeight)
	store.Subscribe(func() {
		Render(canvas, store, editor.DrawStyle())
	})

	ti := textinput.New()
	ti.Prompt = "#"
	ti.Placeholder = "rrggbb"
	ti.CharLimit = 6
	ti.Width = 8

	return model{
		config: config,
		editor: editor,
		panel:  NewPropertyPanel(editor),
		canvas: canvas,
		input:  ti,
		now:    time.Now,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) canvasSize() (int, int) {
	return m.width - toolbarWidth - panelWidth, m.height - statusHeight
}

func (m model) panelX() int {
	return m.width - panelWidth
}

// toCanvas maps a screen cell to canvas units. The point may lie outside
// the visible canvas.
func (m model) toCanvas(x, y int) Point {
	return m.canvas.cellToCanvas(x-toolbarWidth, y)
}

func (m model) inCanvas(x, y int) bool {
	cols, rows := m.canvasSize()
	return x >= toolbarWidth && x < toolbarWidth+cols && y >= 0 && y < rows
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cols, rows := m.canvasSize()
		m.canvas.Resize(cols, rows)
		Render(m.canvas, m.editor.Store(), m.editor.DrawStyle())
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateColorInput(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = ""
		switch {
		case m.inCanvas(msg.X, msg.Y):
			m.stopEditing()
			m.pointer = m.toCanvas(msg.X, msg.Y)
			m.editor.PointerDown(m.pointer)
		case msg.X < toolbarWidth:
			m.stopEditing()
			m.clickToolbar(msg.Y)
		case msg.X >= m.panelX():
			return m.clickPanel(msg.X-m.panelX()-panelContentOffset, msg.Y)
		}
	case tea.MouseActionMotion:
		m.pointer = m.toCanvas(msg.X, msg.Y)
		m.editor.PointerMove(m.pointer)
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			m.editor.PointerUp()
		}
	}
	return m, nil
}

func (m *model) clickToolbar(row int) {
	for _, item := range toolbarItems {
		if item.row != row {
			continue
		}
		switch item.kind {
		case toolbarTool:
			m.editor.SetTool(item.tool)
		case toolbarExport:
			m.export(item.format)
		}
		return
	}
}

func (m *model) export(f ExportFormat) {
	path := m.config.GetSavePath(exportFilename(f, m.now()))
	if err := exportCanvas(m.editor, m.config, f, path); err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.successMessage = "Saved " + path
}

func (m model) clickPanel(col, row int) (tea.Model, tea.Cmd) {
	lines := m.panelLines()
	if row < 0 || row >= len(lines) || lines[row].hit == nil {
		m.stopEditing()
		return m, nil
	}
	action, ok := lines[row].hit(col)
	if !ok {
		return m, nil
	}
	switch action.kind {
	case actionEditColor:
		if m.editing && m.editField == action.field {
			return m, nil
		}
		st, _ := m.panel.Style()
		m.editing = true
		m.editField = action.field
		m.input.SetValue(strings.TrimPrefix(styleColor(st, action.field).Hex(), "#"))
		return m, m.input.Focus()
	case actionPickColor:
		m.stopEditing()
		m.panel.SetColor(action.field, action.color)
	case actionSetWidth:
		m.stopEditing()
		m.panel.SetBorderWidth(clampBorderWidth(action.width))
	}
	return m, nil
}

func (m model) updateColorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		c, err := parseHex(m.input.Value())
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.panel.SetColor(m.editField, c)
		m.successMessage = fmt.Sprintf("%s set to %s", m.editField, c.Hex())
		m.stopEditing()
		return m, nil
	case "esc":
		m.stopEditing()
		return m, nil
	case "ctrl+v":
		hex, err := pasteHex()
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.input.SetValue(hex)
		m.input.CursorEnd()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) stopEditing() {
	if !m.editing {
		return
	}
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func styleColor(st Style, f ColorField) colorful.Color {
	if f == FieldBorder {
		return st.Border
	}
	return st.Fill
}
