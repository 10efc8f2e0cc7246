package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
)

// LoadKML returns one rectangle per Placemark, the envelope of the
// coordinates of its Point, LineString or Polygon outer boundary.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, err
	}
	return ParseKML(data)
}

// ParseKML is LoadKML over raw bytes.
func ParseKML(data []byte) (Set, error) {
	type kmlCoords struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPolygon struct {
		Outer struct {
			Ring kmlCoords `xml:"LinearRing"`
		} `xml:"outerBoundaryIs"`
	}
	type kmlPlacemark struct {
		Point      *kmlCoords  `xml:"Point"`
		LineString *kmlCoords  `xml:"LineString"`
		Polygon    *kmlPolygon `xml:"Polygon"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Placemark"`
		Document   struct {
			Placemarks []kmlPlacemark `xml:"Placemark"`
			Folders    []struct {
				Placemarks []kmlPlacemark `xml:"Placemark"`
			} `xml:"Folder"`
		} `xml:"Document"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Set{}, fmt.Errorf("kml: %w", err)
	}
	placemarks := append([]kmlPlacemark(nil), doc.Placemarks...)
	placemarks = append(placemarks, doc.Document.Placemarks...)
	for _, f := range doc.Document.Folders {
		placemarks = append(placemarks, f.Placemarks...)
	}

	var set Set
	for _, pm := range placemarks {
		var coords string
		switch {
		case pm.Point != nil:
			coords = pm.Point.Coordinates
		case pm.LineString != nil:
			coords = pm.LineString.Coordinates
		case pm.Polygon != nil:
			coords = pm.Polygon.Outer.Ring.Coordinates
		default:
			continue
		}
		var (
			env  Rect
			seen bool
		)
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(coords) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				return Set{}, fmt.Errorf("kml: incomplete coordinate %q", tuple)
			}
			x, okx := parseCoord(vals[0])
			y, oky := parseCoord(vals[1])
			if !okx || !oky {
				return Set{}, fmt.Errorf("kml: bad coordinate %q", tuple)
			}
			p := R(x, y, x, y)
			if !seen {
				env, seen = p, true
			} else {
				env = env.Union(p)
			}
		}
		if seen {
			set.add(env)
		}
	}
	if len(set.Rects) == 0 {
		return Set{}, errors.New("kml: no placemarks with coordinates")
	}
	return set, nil
}
