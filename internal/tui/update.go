package tui

import (
	"fmt"
	"log/slog"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"rectlab/internal/geom"
)

const sidebarWidth = 28

// mapArea is the map viewport's screen origin and size.
type mapArea struct {
	x, y, w, h int
}

// layout computes the map area; View and mouse handling must agree on it.
func (m Model) layout() (area mapArea, contentW, contentH int) {
	side := 0
	if m.showSidebar {
		side = sidebarWidth
	}
	headerHeight := 1
	footerHeight := 2
	contentH = max(4, m.height-headerHeight-footerHeight)
	contentW = max(10, m.width)
	area.w = max(10, contentW-side-1)
	area.h = contentH
	area.y = headerHeight
	if m.showSidebar {
		area.x = side + 1
	}
	return area, contentW, contentH
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		area, _, contentH := m.layout()
		m.mapW, m.mapH = area.w, area.h
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.inspectPopup = ""
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
			}
			area, _, contentH := m.layout()
			m.l.SetSize(sidebarWidth-2, contentH-2)
			m.mapW, m.mapH = area.w, area.h
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			cmd := m.ta.Focus()
			return m, cmd
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
			} else if len(m.rects) == 0 {
				m.status = "nothing to inspect"
			} else {
				m.inspectPopup = strings.Join(m.inspectLines(), "\n")
				m.status = "inspect popup"
			}
		case "n", "N":
			m.selA = wrapIndex(m.selA, step(msg.String() == "n"), len(m.rects))
			m.status = m.selectionStatus()
		case "m", "M":
			m.selB = wrapIndex(m.selB, step(msg.String() == "m"), len(m.rects))
			m.status = m.selectionStatus()
		case "L":
			i, err := geom.LargestIndex(m.rects)
			if err != nil {
				m.showLargest = false
				m.status = "largest: " + err.Error()
				break
			}
			m.showLargest = !m.showLargest
			if m.showLargest {
				m.status = "largest: " + describe(m.rects, i)
			} else {
				m.status = "largest: off"
			}
		case "f":
			m.fillOverlap = !m.fillOverlap
			m.status = fmt.Sprintf("fill overlap: %v", m.fillOverlap)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			if m.showAttrs {
				break
			}
			m.offsetY -= 1
		case "down":
			if m.showAttrs {
				break
			}
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
		if m.showAttrs && !m.showSidebar {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func step(forward bool) int {
	if forward {
		return 1
	}
	return -1
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		src := strings.TrimSpace(m.ta.Value())
		if src == "" {
			m.status = "paste: empty"
			return m, nil
		}
		set, err := geom.Parse(src)
		if err != nil {
			m.status = "parse error: " + err.Error()
			slog.Debug("paste rejected", "err", err)
			return m, nil
		}
		m.selPath = ""
		m.zoom = 1.0
		m.setRects(set)
		m.status = fmt.Sprintf("rendered %d rects  %s", len(m.rects), m.selectionStatus())
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	area, _, _ := m.layout()
	cx, cy := msg.X-area.x, msg.Y-area.y
	if cx < 0 || cx >= area.w || cy < 0 || cy >= area.h || m.showAttrs {
		m.hovering = false
		m.hoverHasPt = false
		return
	}
	m.hoverCellX, m.hoverCellY = cx, cy
	m.hoverPt, m.hoverHasPt = m.cellToWorld(cx, cy, area.w, area.h)
	m.hoverMicX, m.hoverMicY, m.hovering = m.nearestCorner(cx*2, cy*4, area.w, area.h)

	if msg.Action != tea.MouseActionPress || !m.hoverHasPt {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft, tea.MouseButtonRight:
		i := m.topmostAt(m.hoverPt)
		if i < 0 {
			m.status = fmt.Sprintf("no rectangle at %s", m.hoverPt)
			return
		}
		if msg.Button == tea.MouseButtonLeft {
			m.selA = i
		} else {
			m.selB = i
		}
		m.status = m.selectionStatus()
	}
}
