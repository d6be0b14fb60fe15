package config

import (
	"sort"

	"github.com/san-kum/fieldview/internal/field"
)

var Presets = map[string]*Config{
	"text": DefaultConfig(),
	"binary": {
		RunDir: ".", ParamsFile: DefaultParamsFile, Orientation: DefaultOrientation, Theme: DefaultTheme,
		Panels: defaultPanels(".arr"),
	},
	"compressed": {
		RunDir: ".", ParamsFile: DefaultParamsFile, Orientation: DefaultOrientation, Theme: DefaultTheme,
		Panels: defaultPanels(".arr.zst"),
	},
	"pressure": {
		RunDir: ".", ParamsFile: DefaultParamsFile, Orientation: DefaultOrientation, Theme: "ocean",
		Panels: []PanelConfig{
			{Title: "Velocity", File: "sim_velocity.txt", Kind: field.Vector},
			{Title: "Pressure", File: "sim_pressure.txt", Kind: field.Scalar, Min: -1, Max: 1, Palette: "bluered"},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Panels = append([]PanelConfig(nil), p.Panels...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
