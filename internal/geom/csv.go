package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadCSV reads a CSV with corner columns and returns one rectangle per row.
// Column detection: x1|minx, y1|miny, x2|maxx, y2|maxy (case-insensitive).
func LoadCSV(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV is LoadCSV over an open reader.
func ReadCSV(rd io.Reader) (Set, error) {
	r := csv.NewReader(rd)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return Set{}, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return Set{}, errors.New("csv: empty input")
	}
	idx := [4]int{-1, -1, -1, -1}
	for i, h := range recs[0] {
		col := -1
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x1", "minx":
			col = 0
		case "y1", "miny":
			col = 1
		case "x2", "maxx":
			col = 2
		case "y2", "maxy":
			col = 3
		}
		if col >= 0 && idx[col] == -1 {
			idx[col] = i
		}
	}
	for _, i := range idx {
		if i == -1 {
			return Set{}, errors.New("csv: x1,y1,x2,y2 columns not found")
		}
	}
	var set Set
rows:
	for _, row := range recs[1:] {
		var v [4]int
		for k, i := range idx {
			if i >= len(row) {
				continue rows
			}
			c, ok := parseCoord(row[i])
			if !ok {
				continue rows
			}
			v[k] = c
		}
		set.add(R(v[0], v[1], v[2], v[3]))
	}
	if len(set.Rects) == 0 {
		return Set{}, errors.New("csv: no valid rectangles parsed")
	}
	return set, nil
}
