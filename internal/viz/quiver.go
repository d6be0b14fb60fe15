package viz

import (
	"math"

	"github.com/san-kum/fieldview/internal/field"
)

const defaultMaxArrows = 16

type QuiverOptions struct {
	// Width and Height are the canvas size in characters.
	Width, Height int
	Orientation   Orientation
	// Scale in sub-pixels per velocity unit; zero scales the longest arrow
	// of the frame to the arrow spacing.
	Scale float64
	// MaxArrows bounds the arrows drawn along each axis.
	MaxArrows int
}

// Quiver draws one arrow per sampled cell, tail at the cell center.
func Quiver(g field.Grid, opts QuiverOptions) *Canvas {
	canvas := NewCanvas(opts.Width, opts.Height)
	n := g.N()
	if n == 0 {
		return canvas
	}

	maxArrows := opts.MaxArrows
	if maxArrows <= 0 {
		maxArrows = defaultMaxArrows
	}
	step := 1
	if n > maxArrows {
		step = (n + maxArrows - 1) / maxArrows
	}
	pw, ph := canvas.PixelSize()
	perAxis := float64((n + step - 1) / step)
	spacing := math.Min(float64(pw), float64(ph)) / perAxis

	factor := opts.Scale
	if factor <= 0 {
		maxMag := 0.0
		for r := step / 2; r < n; r += step {
			for c := step / 2; c < n; c += step {
				maxMag = math.Max(maxMag, g.Vec(r, c).Norm())
			}
		}
		if maxMag > 0 {
			factor = 0.9 * spacing / maxMag
		}
	}

	for r := step / 2; r < n; r += step {
		for c := step / 2; c < n; c += step {
			x := (float64(c) + 0.5) / float64(n) * float64(pw)
			y := (float64(r) + 0.5) / float64(n) * float64(ph)
			dx, dy := opts.Orientation.Screen(g.Vec(r, c))
			canvas.DrawArrow(x, y, x+dx*factor, y+dy*factor)
		}
	}
	return canvas
}
