package viz

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Palette is a named colormap over [0, 1]. It satisfies the gonum/plot
// palette.Palette interface through Colors.
type Palette struct {
	Name string
	cm   palette.ColorMap
}

// Control colors for the luminance maps, darkest first.
var luminanceStops = map[string][]color.Color{
	"viridis": {
		color.NRGBA{0x44, 0x01, 0x54, 0xff}, color.NRGBA{0x3b, 0x52, 0x8b, 0xff},
		color.NRGBA{0x21, 0x91, 0x8c, 0xff}, color.NRGBA{0x5e, 0xc9, 0x62, 0xff},
		color.NRGBA{0xfd, 0xe7, 0x25, 0xff},
	},
	"hot": {
		color.NRGBA{0x00, 0x00, 0x00, 0xff}, color.NRGBA{0xe6, 0x00, 0x00, 0xff},
		color.NRGBA{0xff, 0xd2, 0x00, 0xff}, color.NRGBA{0xff, 0xff, 0xff, 0xff},
	},
	"gray": {
		color.NRGBA{0x00, 0x00, 0x00, 0xff}, color.NRGBA{0xff, 0xff, 0xff, 0xff},
	},
}

// DefaultPalette is used when a panel names none.
const DefaultPalette = "viridis"

// GetPalette builds the named colormap. Each call returns a fresh map.
func GetPalette(name string) (Palette, error) {
	if name == "" {
		name = DefaultPalette
	}
	var cm palette.ColorMap
	switch name {
	case "bluered":
		cm = moreland.SmoothBlueRed()
	case "blackbody":
		cm = moreland.ExtendedBlackBody()
	default:
		stops, ok := luminanceStops[name]
		if !ok {
			return Palette{}, fmt.Errorf("viz: unknown palette %q (available: %v)", name, PaletteNames())
		}
		var err error
		if cm, err = moreland.NewLuminance(stops); err != nil {
			return Palette{}, fmt.Errorf("viz: palette %q: %w", name, err)
		}
	}
	cm.SetMin(0)
	cm.SetMax(1)
	return Palette{Name: name, cm: cm}, nil
}

func PaletteNames() []string {
	names := []string{"bluered", "blackbody"}
	for n := range luminanceStops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// At returns the color at t in [0, 1]; t is clamped and NaN maps to 0.
func (p Palette) At(t float64) color.Color {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if p.cm == nil {
		return color.Black
	}
	c, err := p.cm.At(t)
	if err != nil {
		return color.Black
	}
	return c
}

// Palette samples the colormap at n evenly spaced points.
func (p Palette) Palette(n int) palette.Palette {
	return p.cm.Palette(n)
}

// Colors samples the colormap at 256 points.
func (p Palette) Colors() []color.Color {
	if p.cm == nil {
		return []color.Color{color.Black}
	}
	return p.cm.Palette(256).Colors()
}

// Hex returns the color at t as "#rrggbb".
func (p Palette) Hex(t float64) string {
	c, ok := colorful.MakeColor(p.At(t))
	if !ok {
		return "#000000"
	}
	return c.Clamped().Hex()
}

// Normalize maps v into [0, 1] relative to [min, max].
func Normalize(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	return (v - min) / (max - min)
}
