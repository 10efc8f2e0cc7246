package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"rectlab/internal/geom"
)

// Options sets the viewer's initial state.
type Options struct {
	Zoom        float64
	HelpVisible bool
	ShowSidebar bool
	FillOverlap bool
}

// DefaultOptions returns the settings used when no config file overrides them.
func DefaultOptions() Options {
	return Options{Zoom: 1.0, HelpVisible: true, FillOverlap: true}
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Data
	rects []geom.Rect
	env   geom.Rect

	// current map area size
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// selection; -1 means none
	selA int
	selB int

	showLargest bool
	fillOverlap bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverMicX  int
	hoverMicY  int
	hoverHasPt bool
	hoverPt    geom.Point

	// rectangle table
	showAttrs bool
	tbl       table.Model
}

func New(opts Options) Model {
	if opts.Zoom <= 0 {
		opts.Zoom = 1.0
	}
	m := Model{
		showSidebar: opts.ShowSidebar,
		helpVisible: opts.HelpVisible,
		zoom:        opts.Zoom,
		status:      "rectlab ready",
		selA:        -1,
		selB:        -1,
		fillOverlap: opts.FillOverlap,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT or one \"x1 y1 x2 y2\" per line. Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's rectangles at launch.
func NewWithPath(path string, opts Options) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setRects replaces the current set and resets pan and selection.
func (m *Model) setRects(set geom.Set) {
	m.rects = set.Rects
	m.env = set.Envelope
	m.offsetX, m.offsetY = 0, 0
	m.selA, m.selB = -1, -1
	m.inspectPopup = ""
	switch len(m.rects) {
	case 0:
	case 1:
		m.selA = 0
	default:
		m.selA, m.selB = 0, 1
	}
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// Rects returns the rectangles currently shown.
func (m Model) Rects() []geom.Rect { return m.rects }

// Selection returns the indices of selections A and B, -1 when unset.
func (m Model) Selection() (a, b int) { return m.selA, m.selB }

// Status returns the footer status line.
func (m Model) Status() string { return m.status }
