package geom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions LoadFile understands.
var Extensions = []string{".txt", ".rect", ".wkt", ".csv", ".geojson", ".json", ".kml"}

// Supported reports whether LoadFile can read path, judging by its extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// LoadFile reads a rectangle set, choosing the format by extension.
func LoadFile(path string) (Set, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return Set{}, err
		}
		return ParseWKT(string(data))
	case ".txt", ".rect":
		data, err := os.ReadFile(path)
		if err != nil {
			return Set{}, err
		}
		return Parse(string(data))
	}
	return Set{}, fmt.Errorf("unsupported file: %q", ext)
}
