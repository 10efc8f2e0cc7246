package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadGeoJSON reads a GeoJSON file and returns one rectangle per geometry:
// its bbox member when present, otherwise the envelope of its coordinates.
// A position that is not an integer within MaxCoord is an error.
func LoadGeoJSON(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, err
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON is LoadGeoJSON over raw bytes.
func ParseGeoJSON(data []byte) (Set, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Set{}, fmt.Errorf("geojson: %w", err)
	}
	var set Set
	// walk collects every vertex below v into env
	var walk func(v any, env *Rect, seen *bool) error
	walk = func(v any, env *Rect, seen *bool) error {
		arr, ok := v.([]any)
		if !ok {
			return nil
		}
		if len(arr) >= 2 {
			xf, xok := arr[0].(float64)
			yf, yok := arr[1].(float64)
			if xok && yok {
				x, okx := floatCoord(xf)
				y, oky := floatCoord(yf)
				if !okx || !oky {
					return fmt.Errorf("geojson: bad coordinate [%v, %v]", xf, yf)
				}
				p := R(x, y, x, y)
				if !*seen {
					*env, *seen = p, true
				} else {
					*env = env.Union(p)
				}
				return nil
			}
		}
		for _, el := range arr {
			if err := walk(el, env, seen); err != nil {
				return err
			}
		}
		return nil
	}
	parseBBox := func(v any) (Rect, bool) {
		arr, ok := v.([]any)
		if !ok || (len(arr) != 4 && len(arr) != 6) {
			return Rect{}, false
		}
		// 2D: [minx, miny, maxx, maxy]; 3D: [minx, miny, minz, maxx, maxy, maxz]
		hi := len(arr) / 2
		var c [4]int
		for k, i := range [4]int{0, 1, hi, hi + 1} {
			f, ok := arr[i].(float64)
			if !ok {
				return Rect{}, false
			}
			n, ok := floatCoord(f)
			if !ok {
				return Rect{}, false
			}
			c[k] = n
		}
		return R(c[0], c[1], c[2], c[3]), true
	}
	var walkGeom func(g map[string]any) error
	walkGeom = func(g map[string]any) error {
		if r, ok := parseBBox(g["bbox"]); ok {
			set.add(r)
			return nil
		}
		gt, _ := g["type"].(string)
		switch gt {
		case "Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon":
			var (
				env  Rect
				seen bool
			)
			if err := walk(g["coordinates"], &env, &seen); err != nil {
				return err
			}
			if seen {
				set.add(env)
			}
		case "GeometryCollection":
			if gs, ok := g["geometries"].([]any); ok {
				for _, sub := range gs {
					if sm, ok := sub.(map[string]any); ok {
						if err := walkGeom(sm); err != nil {
							return err
						}
					}
				}
			}
		}
		return nil
	}
	feature := func(fm map[string]any) error {
		g, ok := fm["geometry"].(map[string]any)
		if !ok {
			return nil
		}
		if r, ok := parseBBox(fm["bbox"]); ok {
			set.add(r)
			return nil
		}
		return walkGeom(g)
	}
	t, _ := raw["type"].(string)
	var err error
	switch t {
	case "":
		return Set{}, errors.New("geojson: missing type")
	case "Feature":
		err = feature(raw)
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if err = feature(fm); err != nil {
						break
					}
				}
			}
		}
	default:
		err = walkGeom(raw)
	}
	if err != nil {
		return Set{}, err
	}
	if len(set.Rects) == 0 {
		return Set{}, errors.New("geojson: no geometries found")
	}
	return set, nil
}
