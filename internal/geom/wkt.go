package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseWKT parses one WKT statement per line and returns one rectangle per
// geometry: the envelope of its vertices.
// Supported: POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON,
// MULTIPOLYGON, ENVELOPE(minx, maxx, maxy, miny) and GEOMETRYCOLLECTION of those.
func ParseWKT(wkt string) (Set, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Set{}, errors.New("wkt: empty input")
	}
	var set Set
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rects, err := parseWKTStatement(line)
		if err != nil {
			return Set{}, err
		}
		for _, r := range rects {
			set.add(r)
		}
	}
	if len(set.Rects) == 0 {
		return Set{}, errors.New("wkt: no coordinates parsed")
	}
	return set, nil
}

func parseWKTStatement(s string) ([]Rect, error) {
	up := strings.ToUpper(s)
	if !strings.HasPrefix(up, "GEOMETRYCOLLECTION") {
		r, err := parseWKTGeometry(s)
		if err != nil {
			return nil, err
		}
		return []Rect{r}, nil
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt: invalid geometrycollection")
	}
	var out []Rect
	for _, member := range splitTopLevel(s[i+1 : j]) {
		r, err := parseWKTGeometry(member)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseWKTGeometry(s string) (Rect, error) {
	s = strings.TrimSpace(s)
	up := strings.ToUpper(s)
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if strings.HasSuffix(up, "EMPTY") {
		return Rect{}, fmt.Errorf("wkt: empty geometry %q", s)
	}
	if i < 0 || j <= i {
		return Rect{}, fmt.Errorf("wkt: invalid geometry %q", s)
	}
	kind := strings.TrimSpace(up[:i])
	body := s[i+1 : j]
	switch kind {
	case "ENVELOPE":
		parts := strings.Split(body, ",")
		if len(parts) != 4 {
			return Rect{}, errors.New("wkt: envelope wants minx, maxx, maxy, miny")
		}
		var v [4]int
		for k, p := range parts {
			n, ok := parseCoord(p)
			if !ok {
				return Rect{}, fmt.Errorf("wkt: bad envelope coordinate %q", strings.TrimSpace(p))
			}
			v[k] = n
		}
		return R(v[0], v[3], v[1], v[2]), nil
	case "POINT", "MULTIPOINT", "LINESTRING", "MULTILINESTRING", "POLYGON", "MULTIPOLYGON":
	default:
		return Rect{}, fmt.Errorf("wkt: unsupported type %q", kind)
	}
	var (
		env  Rect
		seen bool
	)
	flat := strings.NewReplacer("(", " ", ")", " ").Replace(body)
	// split by comma into tuples "x y"
	for _, tup := range strings.Split(flat, ",") {
		parts := strings.Fields(tup)
		if len(parts) == 0 {
			continue
		}
		if len(parts) < 2 {
			return Rect{}, fmt.Errorf("wkt: incomplete coordinate %q", strings.TrimSpace(tup))
		}
		x, okx := parseCoord(parts[0])
		y, oky := parseCoord(parts[1])
		if !okx || !oky {
			return Rect{}, fmt.Errorf("wkt: bad coordinate %q", strings.Join(parts[:2], " "))
		}
		pr := NewRect(Pt(x, y), Pt(x, y))
		if !seen {
			env, seen = pr, true
		} else {
			env = env.Union(pr)
		}
	}
	if !seen {
		return Rect{}, fmt.Errorf("wkt: %s has no coordinates", strings.ToLower(kind))
	}
	return env, nil
}

// splitTopLevel splits s at commas that are not nested in parentheses.
func splitTopLevel(s string) []string {
	var (
		out   []string
		depth int
		start int
	)
	for i, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" {
		out = append(out, rest)
	}
	return out
}

// MaxCoord bounds the magnitude of parsed coordinates so that the width,
// height and area of any parsed rectangle fit in an int.
const MaxCoord = 1 << 30

// parseCoord accepts integers, and floats with no fractional part, within
// [-MaxCoord, MaxCoord].
func parseCoord(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		if n > MaxCoord || n < -MaxCoord {
			return 0, false
		}
		return int(n), true
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return floatCoord(f)
}

func floatCoord(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > MaxCoord || f < -MaxCoord {
		return 0, false
	}
	return int(f), true
}
