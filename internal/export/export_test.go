package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/fieldview/internal/config"
	"github.com/san-kum/fieldview/internal/field"
	"github.com/san-kum/fieldview/internal/storage"
	"github.com/san-kum/fieldview/internal/viz"
)

func panels(t *testing.T, frames int) []storage.Panel {
	t.Helper()
	vel := make([][]float64, frames)
	col := make([][]float64, frames)
	for i := range vel {
		vel[i] = []float64{1, 0, 0, 1, -1, 0, 0.5, 0.5}
		col[i] = []float64{0, 0.25, 0.75, 2}
	}
	v, err := field.FromFrames("velocity", field.Vector, 2, vel)
	require.NoError(t, err)
	c, err := field.FromFrames("color", field.Scalar, 2, col)
	require.NoError(t, err)
	return []storage.Panel{
		{Config: config.PanelConfig{Title: "Velocity", Kind: field.Vector}, Dataset: v},
		{Config: config.PanelConfig{Title: "Color", Kind: field.Scalar, Min: 0, Max: 1, Palette: "viridis"}, Dataset: c},
	}
}

func TestRenderFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, RenderFrame(panels(t, 1), 0, path, DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestRenderFrame_OutOfRange(t *testing.T) {
	err := RenderFrame(panels(t, 1), 3, filepath.Join(t.TempDir(), "x.png"), DefaultOptions())
	assert.Error(t, err)
}

func TestRenderAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	paths, err := RenderAll(dir, panels(t, 5), 2, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "frame_00000.png"),
		filepath.Join(dir, "frame_00002.png"),
		filepath.Join(dir, "frame_00004.png"),
	}, paths)
}

func TestSeriesPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.png")
	require.NoError(t, SeriesPlot(path, "max pct density error", []float64{0, 1, 4, 2}, 1.0/60))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	svg := CanvasToSVG(c, 2, "#00ff00", "#000000")
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	assert.Contains(t, svg, `cx="1.0" cy="1.0"`)
	assert.Contains(t, svg, `cx="7.0" cy="7.0"`)
	assert.Empty(t, CanvasToSVG(nil, 1, "", ""))
}

func TestRenderAll_NoPanels(t *testing.T) {
	paths, err := RenderAll(t.TempDir(), nil, 1, DefaultOptions(), nil)
	assert.ErrorIs(t, err, ErrNoPanels)
	assert.Nil(t, paths)
	assert.ErrorIs(t, RenderFrame(nil, 0, filepath.Join(t.TempDir(), "x.png"), DefaultOptions()), ErrNoPanels)
}

func TestRenderAll_ShortestPanel(t *testing.T) {
	ps := panels(t, 3)
	short, err := field.FromFrames("color", field.Scalar, 2, [][]float64{{0, 0, 0, 0}})
	require.NoError(t, err)
	ps[1].Dataset = short

	paths, err := RenderAll(filepath.Join(t.TempDir(), "frames"), ps, 1, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestCanvasToSVG_MatchesLitPixels(t *testing.T) {
	c := viz.NewCanvas(6, 3)
	c.DrawArrow(1, 1, 10, 9)
	lit := 0
	pw, ph := c.PixelSize()
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if c.IsSet(x, y) {
				lit++
			}
		}
	}
	require.Positive(t, lit)
	assert.Equal(t, lit, strings.Count(CanvasToSVG(c, 1, "#fff", "#000"), "<circle"))
}

func TestRenderQuiverSVGs_ClampsToShortestPanel(t *testing.T) {
	ps := panels(t, 4)
	short, err := field.FromFrames("color", field.Scalar, 2, [][]float64{{0, 0, 0, 0}, {1, 1, 1, 1}})
	require.NoError(t, err)
	ps[1].Dataset = short

	dir := t.TempDir()
	paths, err := RenderQuiverSVGs(dir, ps, 1, viz.Cartesian, "#00ffff")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "velocity_00000.svg"),
		filepath.Join(dir, "velocity_00001.svg"),
	}, paths)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "<circle")
}
