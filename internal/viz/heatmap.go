package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fieldview/internal/field"
)

type HeatmapOptions struct {
	Min, Max float64
	Palette  Palette
	// MaxCols bounds the rendered width; larger grids are block-averaged.
	MaxCols int
}

// Heatmap renders a scalar grid with half-block characters: each character
// shows two grid rows, the upper one as foreground and the lower one as
// background. Row 0 is at the top.
func Heatmap(g field.Grid, opts HeatmapOptions) string {
	cells := downsample(g, opts.MaxCols)
	var b strings.Builder
	for r := 0; r < len(cells); r += 2 {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range cells[r] {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(
				opts.Palette.Hex(Normalize(cells[r][c], opts.Min, opts.Max))))
			if r+1 < len(cells) {
				style = style.Background(lipgloss.Color(
					opts.Palette.Hex(Normalize(cells[r+1][c], opts.Min, opts.Max))))
			}
			b.WriteString(style.Render("▀"))
		}
	}
	return b.String()
}

// downsample averages step×step blocks so the result is at most maxCols wide.
func downsample(g field.Grid, maxCols int) [][]float64 {
	n := g.N()
	step := 1
	if maxCols > 0 && n > maxCols {
		step = (n + maxCols - 1) / maxCols
	}
	size := (n + step - 1) / step
	out := make([][]float64, size)
	for br := range out {
		out[br] = make([]float64, size)
		for bc := range out[br] {
			sum, count := 0.0, 0
			for r := br * step; r < (br+1)*step && r < n; r++ {
				for c := bc * step; c < (bc+1)*step && c < n; c++ {
					sum += g.At(r, c)
					count++
				}
			}
			out[br][bc] = sum / float64(count)
		}
	}
	return out
}
