package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"rectlab/internal/geom"
)

var attrCols = []string{"minX", "maxX", "minY", "maxY", "area"}

// refreshAttrs rebuilds the table from the current rectangles
func (m *Model) refreshAttrs() {
	if len(m.rects) == 0 {
		m.showAttrs = false
		m.status = "no rectangles loaded"
		return
	}
	tcols := make([]table.Column, 0, len(attrCols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range attrCols {
		tcols = append(tcols, table.Column{Title: c, Width: 10})
	}
	trows := make([]table.Row, 0, len(m.rects))
	for i, r := range m.rects {
		minX, maxX, minY, maxY := r.Bounds()
		trows = append(trows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(minX),
			strconv.Itoa(maxX),
			strconv.Itoa(minY),
			strconv.Itoa(maxY),
			strconv.Itoa(r.Area()),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	if m.selA >= 0 {
		m.tbl.SetCursor(m.selA)
	}
}

// inspectLines summarizes the current set for the inspect popup.
func (m Model) inspectLines() []string {
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("rects: %d", len(m.rects)),
		fmt.Sprintf("envelope: %s", m.env),
	}
	if i, err := geom.LargestIndex(m.rects); err == nil {
		meta = append(meta, fmt.Sprintf("largest: #%d %s area=%d", i+1, m.rects[i], m.rects[i].Area()))
	}
	meta = append(meta, fmt.Sprintf("intersecting pairs: %d", len(geom.Intersections(m.rects))))
	if m.selA >= 0 {
		meta = append(meta, "A: "+describe(m.rects, m.selA))
	}
	if m.selB >= 0 {
		meta = append(meta, "B: "+describe(m.rects, m.selB))
	}
	return meta
}

func describe(rects []geom.Rect, i int) string {
	if i < 0 || i >= len(rects) {
		return "-"
	}
	return fmt.Sprintf("#%d %s area=%d", i+1, rects[i], rects[i].Area())
}

// selectionStatus reports the selected pair and their overlap.
func (m Model) selectionStatus() string {
	var parts []string
	if m.selA >= 0 {
		parts = append(parts, "A="+describe(m.rects, m.selA))
	}
	if m.selB >= 0 {
		parts = append(parts, "B="+describe(m.rects, m.selB))
	}
	if m.selA >= 0 && m.selB >= 0 {
		if ov, ok := m.overlap(); ok {
			parts = append(parts, fmt.Sprintf("overlap=%s area=%d", ov, ov.Area()))
		} else {
			parts = append(parts, "no intersection")
		}
	}
	if len(parts) == 0 {
		return "no selection"
	}
	return strings.Join(parts, "  ")
}
