package geom

import (
	"errors"
	"fmt"
	"strings"
)

// ParseText reads one rectangle per line as "x1 y1 x2 y2"; spaces and
// commas both separate fields. Coordinates must be integers within MaxCoord. Blank lines and lines starting with # are skipped.
func ParseText(s string) (Set, error) {
	if strings.TrimSpace(s) == "" {
		return Set{}, errors.New("text: empty input")
	}
	var set Set
	for n, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(fields) != 4 {
			return Set{}, fmt.Errorf("text: line %d: want 4 coordinates, got %d", n+1, len(fields))
		}
		var v [4]int
		for i, f := range fields {
			c, ok := parseCoord(f)
			if !ok {
				return Set{}, fmt.Errorf("text: line %d: bad coordinate %q", n+1, f)
			}
			v[i] = c
		}
		set.add(R(v[0], v[1], v[2], v[3]))
	}
	if len(set.Rects) == 0 {
		return Set{}, errors.New("text: no rectangles in input")
	}
	return set, nil
}

// Parse accepts either WKT or the plain "x1 y1 x2 y2" form, whichever the
// first meaningful line looks like.
func Parse(s string) (Set, error) {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c := line[0]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			return ParseWKT(s)
		}
		break
	}
	return ParseText(s)
}
