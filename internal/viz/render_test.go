package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fieldview/internal/field"
)

func mustFrames(t *testing.T, kind field.Kind, n int, frames ...[]float64) *field.Dataset {
	t.Helper()
	ds, err := field.FromFrames("test", kind, n, frames)
	if err != nil {
		t.Fatalf("FromFrames: %v", err)
	}
	return ds
}

func TestOrientation(t *testing.T) {
	cell := field.Vec2{1, 2}
	tests := []struct {
		o      Orientation
		u, v   float64
		dx, dy float64
	}{
		{Cartesian, 2, -1, 2, 1},
		{IJ, 1, 2, 1, -2},
	}
	for _, tt := range tests {
		u, v := tt.o.UV(cell)
		if u != tt.u || v != tt.v {
			t.Errorf("%v.UV = (%v, %v), want (%v, %v)", tt.o, u, v, tt.u, tt.v)
		}
		dx, dy := tt.o.Screen(cell)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Screen = (%v, %v), want (%v, %v)", tt.o, dx, dy, tt.dx, tt.dy)
		}
	}

	if _, err := ParseOrientation("polar"); err == nil {
		t.Error("expected error for unknown orientation")
	}
	if o, _ := ParseOrientation("ij"); o != IJ {
		t.Errorf("ParseOrientation(ij) = %v", o)
	}
}

func TestPalette(t *testing.T) {
	p, err := GetPalette("gray")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Hex(0); got != "#000000" {
		t.Errorf("Hex(0) = %s, want #000000", got)
	}
	if got := p.Hex(1); got != "#ffffff" {
		t.Errorf("Hex(1) = %s, want #ffffff", got)
	}
	if got := p.Hex(2); got != "#ffffff" {
		t.Errorf("Hex(2) should clamp to white, got %s", got)
	}
	if got := p.Hex(math.NaN()); got != "#000000" {
		t.Errorf("Hex(NaN) = %s, want #000000", got)
	}
	if mid := p.Hex(0.5); mid == "#000000" || mid == "#ffffff" {
		t.Errorf("Hex(0.5) = %s, want an interior gray", mid)
	}
	if len(p.Colors()) != 256 {
		t.Errorf("Colors() has %d entries", len(p.Colors()))
	}
	if _, err := GetPalette("nope"); err == nil {
		t.Error("expected error for unknown palette")
	}
	if def, err := GetPalette(""); err != nil || def.Name != DefaultPalette {
		t.Errorf("GetPalette(\"\") = %v, %v", def.Name, err)
	}
}

func TestPaletteNames(t *testing.T) {
	for _, name := range PaletteNames() {
		p, err := GetPalette(name)
		if err != nil {
			t.Fatalf("GetPalette(%q): %v", name, err)
		}
		for _, v := range []float64{0, 0.25, 0.5, 1} {
			if hex := p.Hex(v); len(hex) != 7 || hex[0] != '#' {
				t.Errorf("%s.Hex(%v) = %q", name, v, hex)
			}
		}
		if got := len(p.Palette(16).Colors()); got != 16 {
			t.Errorf("%s.Palette(16) has %d colors", name, got)
		}
	}
}

func TestHeatmapDimensions(t *testing.T) {
	values := make([]float64, 64*64)
	for i := range values {
		values[i] = float64(i%64) / 63
	}
	ds := mustFrames(t, field.Scalar, 64, values)
	pal, _ := GetPalette("hot")

	out := Heatmap(ds.Frame(0), HeatmapOptions{Min: 0, Max: 1, Palette: pal, MaxCols: 32})
	lines := strings.Split(out, "\n")
	if len(lines) != 16 {
		t.Fatalf("got %d lines, want 16", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 32 {
			t.Fatalf("line %d width %d, want 32", i, w)
		}
	}
}

func TestDownsampleAverages(t *testing.T) {
	ds := mustFrames(t, field.Scalar, 2, []float64{1, 2, 3, 6})
	cells := downsample(ds.Frame(0), 1)
	if len(cells) != 1 || cells[0][0] != 3 {
		t.Errorf("downsample = %v, want [[3]]", cells)
	}
}

func TestQuiverDirection(t *testing.T) {
	// One cell pointing along +i, which is down the screen in cartesian mode.
	ds := mustFrames(t, field.Vector, 1, []float64{1, 0})
	c := Quiver(ds.Frame(0), QuiverOptions{Width: 8, Height: 4, Orientation: Cartesian})

	pw, ph := c.PixelSize()
	cx, cy := pw/2, ph/2
	if !c.IsSet(cx, cy+5) {
		t.Error("expected the arrow to extend below the center")
	}
	if c.IsSet(cx, cy-5) {
		t.Error("arrow should not extend above the center")
	}
}

func TestQuiverZeroField(t *testing.T) {
	ds := mustFrames(t, field.Vector, 2, make([]float64, 8))
	c := Quiver(ds.Frame(0), QuiverOptions{Width: 4, Height: 2})
	lit := 0
	pw, ph := c.PixelSize()
	for x := 0; x < pw; x++ {
		for y := 0; y < ph; y++ {
			if c.IsSet(x, y) {
				lit++
			}
		}
	}
	if lit != 4 {
		t.Errorf("zero field lit %d pixels, want one dot per cell (4)", lit)
	}
}
