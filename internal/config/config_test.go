package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/fieldview/internal/field"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	require.Len(t, cfg.Panels, 3)
	assert.Equal(t, field.Vector, cfg.Panels[0].Kind)
	assert.Equal(t, "sim_color.txt", cfg.Panels[1].File)
	assert.Equal(t, DerivePctDensityError, cfg.Panels[2].Derive)
	assert.Equal(t, 100.0, cfg.Panels[2].Max)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldview.yaml")
	cfg := DefaultConfig()
	cfg.Orientation = "ij"
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: vector")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_RejectsBadKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	body := "panels:\n  - title: X\n    file: x.txt\n    kind: tensor\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, field.ErrInvalidKind)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no panels", func(c *Config) { c.Panels = nil }},
		{"bad orientation", func(c *Config) { c.Orientation = "polar" }},
		{"empty file", func(c *Config) { c.Panels[0].File = "" }},
		{"unknown derive", func(c *Config) { c.Panels[1].Derive = "curl" }},
		{"derive on vector", func(c *Config) { c.Panels[0].Derive = DerivePctDensityError }},
		{"inverted limits", func(c *Config) { c.Panels[1].Min, c.Panels[1].Max = 1, 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("binary")
	require.NotNil(t, cfg)
	assert.Equal(t, "sim_velocity.arr", cfg.Panels[0].File)
	require.NoError(t, cfg.Validate())

	cfg.Panels[0].File = "changed"
	assert.Equal(t, "sim_velocity.arr", GetPreset("binary").Panels[0].File)

	assert.Nil(t, GetPreset("nonexistent"))
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	assert.Equal(t, []string{"binary", "compressed", "pressure", "text"}, names)
	for _, n := range names {
		assert.NoError(t, GetPreset(n).Validate(), n)
	}
}
