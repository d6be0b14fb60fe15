package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/fieldview/internal/field"
	"github.com/san-kum/fieldview/internal/storage"
	"github.com/san-kum/fieldview/internal/viz"
)

const (
	svgQuiverWidth  = 64
	svgQuiverHeight = 32
	svgDotScale     = 4
	svgBackground   = "#0a0a0a"
)

// CanvasToSVG draws every lit braille dot of canvas as a circle. scale is the
// distance between dots in SVG units.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fg, bg string) string {
	if canvas == nil {
		return ""
	}
	pw, ph := canvas.PixelSize()
	width, height := float64(pw)*scale, float64(ph)*scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, bg, fg)

	r := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := (float64(x) + 0.5) * scale
			cy := (float64(y) + 0.5) * scale
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r)
		}
	}
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// RenderQuiverSVGs writes every nth frame of each vector panel as
// <title>_00000.svg in dir. Frames stop at the shortest panel, as in
// RenderAll.
func RenderQuiverSVGs(dir string, panels []storage.Panel, every int, orient viz.Orientation, fg string) ([]string, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}
	if every <= 0 {
		every = 1
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	frames := storage.FrameCount(panels)

	var paths []string
	for _, p := range panels {
		if p.Dataset.Kind() != field.Vector {
			continue
		}
		name := strings.ToLower(strings.ReplaceAll(p.Config.Title, " ", "_"))
		for i := 0; i < frames; i += every {
			c := viz.Quiver(p.Dataset.Frame(i), viz.QuiverOptions{
				Width: svgQuiverWidth, Height: svgQuiverHeight, Orientation: orient,
			})
			path := filepath.Join(dir, fmt.Sprintf("%s_%05d.svg", name, i))
			if err := os.WriteFile(path, []byte(CanvasToSVG(c, svgDotScale, fg, svgBackground)), 0644); err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}
