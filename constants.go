package main

type Tool int

const (
	ToolSelect Tool = iota
	ToolRectangle
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRectangle:
		return "rectangle"
	}
	return "unknown"
}

type Gesture int

const (
	GestureIdle Gesture = iota
	GestureDrawing
	GestureMoving
	GestureResizing
)

func (g Gesture) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GestureDrawing:
		return "drawing"
	case GestureMoving:
		return "moving"
	case GestureResizing:
		return "resizing"
	}
	return "unknown"
}

type HandleKind int

const (
	HandleNW HandleKind = iota
	HandleNE
	HandleSW
	HandleSE
)

func (k HandleKind) String() string {
	switch k {
	case HandleNW:
		return "nw"
	case HandleNE:
		return "ne"
	case HandleSW:
		return "sw"
	case HandleSE:
		return "se"
	}
	return "unknown"
}

// Cursor is the pointer shape hint shown while the handle is hovered or dragged.
func (k HandleKind) Cursor() string {
	return k.String() + "-resize"
}

type PanelMode int

const (
	PanelPlaceholder PanelMode = iota
	PanelDrawStyle
	PanelSelection
)

const (
	minCommitSize   = 5.0 // both sides must exceed this to commit a drawn rectangle
	handleHitRadius = 6.0
	handleSize      = 8.0
	handleStroke    = 2.0
	minBorderWidth  = 0
	maxBorderWidth  = 20
	noSelection     = -1
)

const (
	defaultFill        = "#3b82f6"
	defaultBorder      = "#1e40af"
	defaultBorderWidth = 2
	handleFill         = "#ffffff"
	handleAccent       = "#3b82f6"
	canvasBackground   = "#ffffff"
	defaultCanvasW     = 800
	defaultCanvasH     = 600
	defaultCellW       = 4
	defaultCellH       = 8
)

// Host layout, in terminal cells.
const (
	toolbarWidth = 6
	panelWidth   = 30
	statusHeight = 1
)

type ExportFormat int

const (
	ExportPNG ExportFormat = iota
	ExportPDF
)

func (f ExportFormat) Ext() string {
	if f == ExportPDF {
		return "pdf"
	}
	return "png"
}
