package palette

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultPreset is the preset used when none is named.
const DefaultPreset = "classic"

var presets = map[string]string{
	"classic":   "0:#000764,0.16:#206bcb,0.42:#edffff,0.6425:#ffaa00,0.8575:#000200,1:#000764",
	"fire":      "0:#000000,0.33:#8b0000,0.66:#ff8c00,1:#ffff66",
	"ice":       "0:#001030,0.5:#3a7bd5,1:#e0f7ff",
	"grayscale": "0:#000000,1:#ffffff",
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named built-in gradient.
func Preset(name string) (*Stops, error) {
	stops, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q, want one of %s", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}

	return ParseStops(stops)
}
