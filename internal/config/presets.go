package config

import "sort"

// Presets are partial configurations keyed by name, in koanf key form.
var Presets = map[string]map[string]interface{}{
	"classic": {
		"animation.duration_ms": 400,
		"animation.style":       StyleFade,
		"spacing":               "none",
	},
	"slow": {
		"animation.duration_ms": 1200,
		"animation.style":       StyleRoll,
	},
	"instant": {
		"animation.duration_ms": 0,
		"history.show":          false,
	},
	"grouped": {
		"spacing":   "3",
		"precision": "rounded",
	},
}

// GetPreset returns a preset by name, or nil.
func GetPreset(name string) map[string]interface{} {
	return Presets[name]
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
