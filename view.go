package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	cols, rows := m.canvasSize()
	if cols < 1 || rows < 1 {
		return "Window too small for rectedit; resize or press q to quit."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.toolbarView(rows),
		m.canvas.View(),
		m.panelView(rows),
	)
	return body + "\n" + m.statusView()
}

func (m model) toolbarView(rows int) string {
	lines := make([]string, rows)
	for _, item := range toolbarItems {
		if item.row >= rows {
			continue
		}
		style := buttonStyle
		if item.kind == toolbarTool && item.tool == m.editor.Tool() {
			style = activeStyle
		}
		lines[item.row] = style.Render(item.label)
	}
	if rows > 5 {
		lines[5] = dimStyle.Render(strings.Repeat("─", toolbarWidth-1))
	}
	return lipgloss.NewStyle().
		Width(toolbarWidth-1).
		Height(rows).
		MaxHeight(rows).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("#e5e7eb")).
		Render(strings.Join(lines, "\n"))
}

func (m model) panelView(rows int) string {
	lines := m.panelLines()
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	return lipgloss.NewStyle().
		Width(panelWidth-1).
		Height(rows).
		MaxHeight(rows).
		PaddingLeft(panelContentOffset-1).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("#e5e7eb")).
		Render(strings.Join(texts, "\n"))
}

func (m model) statusView() string {
	gesture := m.editor.Gesture().String()
	if h, ok := m.editor.ActiveHandle(); ok {
		gesture = fmt.Sprintf("%s (%s)", gesture, h.Kind.Cursor())
	}
	left := fmt.Sprintf(" %s · %s · %d rectangles · %.0f,%.0f",
		m.editor.Tool(), gesture, m.editor.Store().Len(), m.pointer.X, m.pointer.Y)

	right := dimStyle.Render("q quit ")
	switch {
	case m.errorMessage != "":
		right = errorStyle.Render(m.errorMessage + " ")
	case m.successMessage != "":
		right = okStyle.Render(m.successMessage + " ")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
