package tui

import (
	"math"
	"strings"

	"rectlab/internal/geom"
)

// viewBounds returns the world window shown at zoom 1. Degenerate spans are
// widened by one unit on each side so every set has a drawable extent.
func (m Model) viewBounds() (minX, maxX, minY, maxY float64, ok bool) {
	if len(m.rects) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, maxX = float64(m.env.MinX()), float64(m.env.MaxX())
	minY, maxY = float64(m.env.MinY()), float64(m.env.MaxY())
	if maxX == minX {
		minX, maxX = minX-1, maxX+1
	}
	if maxY == minY {
		minY, maxY = minY-1, maxY+1
	}
	return minX, maxX, minY, maxY, true
}

// normalize maps a world point into [0,1]x[0,1] of the zoomed window.
func (m Model) normalize(x, y int) (zx, zy float64, ok bool) {
	minX, maxX, minY, maxY, ok := m.viewBounds()
	if !ok {
		return 0, 0, false
	}
	nx := (float64(x) - minX) / (maxX - minX)
	ny := (float64(y) - minY) / (maxY - minY)
	// Apply zoom around center (0.5, 0.5)
	zx = 0.5 + (nx-0.5)*m.zoom
	zy = 0.5 + (ny-0.5)*m.zoom
	return zx, zy, true
}

// screenXYMicro maps a world point into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y, w, h int) (int, int, bool) {
	zx, zy, ok := m.normalize(x, y)
	if !ok {
		return 0, 0, false
	}
	wMic := w * 2
	hMic := h * 4
	sx := int(math.Round(zx*float64(wMic-1))) + m.offsetX*2
	sy := int(math.Round((1.0-zy)*float64(hMic-1))) + m.offsetY*4
	return sx, sy, true
}

// cellToWorld converts a map cell back to the nearest world point.
func (m Model) cellToWorld(cx, cy, w, h int) (geom.Point, bool) {
	minX, maxX, minY, maxY, ok := m.viewBounds()
	if !ok || w <= 1 || h <= 1 {
		return geom.Point{}, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := minX + nx*(maxX-minX)
	y := minY + ny*(maxY-minY)
	return geom.Pt(int(math.Round(x)), int(math.Round(y))), true
}

// microBox projects a rectangle to micro coordinates (x0,y0 top-left).
func (m Model) microBox(r geom.Rect, w, h int) (x0, y0, x1, y1 int, ok bool) {
	x0, y1, ok0 := m.screenXYMicro(r.MinX(), r.MinY(), w, h)
	x1, y0, ok1 := m.screenXYMicro(r.MaxX(), r.MaxY(), w, h)
	return x0, y0, x1, y1, ok0 && ok1
}

// overlap returns the intersection of selections A and B, if any.
func (m Model) overlap() (geom.Rect, bool) {
	if m.selA < 0 || m.selB < 0 || m.selA >= len(m.rects) || m.selB >= len(m.rects) {
		return geom.Rect{}, false
	}
	return m.rects[m.selA].Intersection(m.rects[m.selB])
}

func (m Model) renderMap(w, h int) string {
	// outlines of every rectangle, selected outlines, and filled highlights
	base := newBrailleBuf(w, h)
	sel := newBrailleBuf(w, h)
	fill := newBrailleBuf(w, h)

	for _, r := range m.rects {
		if x0, y0, x1, y1, ok := m.microBox(r, w, h); ok {
			base.strokeRect(x0, y0, x1, y1)
		}
	}
	for _, i := range []int{m.selA, m.selB} {
		if i < 0 || i >= len(m.rects) {
			continue
		}
		if x0, y0, x1, y1, ok := m.microBox(m.rects[i], w, h); ok {
			sel.strokeRect(x0, y0, x1, y1)
		}
	}
	if m.showLargest {
		if i, err := geom.LargestIndex(m.rects); err == nil {
			if x0, y0, x1, y1, ok := m.microBox(m.rects[i], w, h); ok {
				fill.fillRect(x0, y0, x1, y1)
			}
		}
	}
	if m.fillOverlap {
		if ov, ok := m.overlap(); ok {
			if x0, y0, x1, y1, ok := m.microBox(ov, w, h); ok {
				fill.fillRect(x0, y0, x1, y1)
			}
		}
	}

	hoverX, hoverY := -1, -1
	if m.hovering {
		hoverX, hoverY = m.hoverMicX/2, m.hoverMicY/4
	}
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			mb, ms, mf := base.mask(x, y), sel.mask(x, y), fill.mask(x, y)
			switch {
			case x == hoverX && y == hoverY:
				sb.WriteString(hoverStyle.Render("◯"))
			case mf != 0:
				sb.WriteString(fillStyle.Render(string(brailleRune(mb | ms | mf))))
			case ms != 0:
				sb.WriteString(selStyle.Render(string(brailleRune(mb | ms))))
			default:
				sb.WriteRune(brailleRune(mb))
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// nearestCorner finds the rectangle corner closest to a micro position.
func (m Model) nearestCorner(hxMic, hyMic, w, h int) (int, int, bool) {
	best := math.MaxInt
	bx, by := hxMic, hyMic
	for _, r := range m.rects {
		for _, c := range r.Corners() {
			mx, my, ok := m.screenXYMicro(c.X, c.Y, w, h)
			if !ok {
				continue
			}
			dx := mx - hxMic
			dy := my - hyMic
			d := dx*dx + dy*dy
			if d < best {
				best = d
				bx, by = mx, my
			}
		}
	}
	return bx, by, best != math.MaxInt
}

// topmostAt returns the last-drawn rectangle containing p.
func (m Model) topmostAt(p geom.Point) int {
	for i := len(m.rects) - 1; i >= 0; i-- {
		if m.rects[i].ContainsPoint(p) {
			return i
		}
	}
	return -1
}
