package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"rectlab/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		slog.Warn("read dir", "dir", m.cwd, "err", err)
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads any supported format into the model.
func (m *Model) loadPath(p string) {
	set, err := geom.LoadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		slog.Warn("load rectangles", "path", p, "err", err)
		return
	}
	m.selPath = p
	m.setRects(set)
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  rects=%d", len(m.rects))
	slog.Info("loaded rectangles", "path", p, "count", len(m.rects), "envelope", set.Envelope.String())
}
