package export

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/fieldview/internal/field"
	"github.com/san-kum/fieldview/internal/storage"
	"github.com/san-kum/fieldview/internal/viz"
)

// ErrNoPanels indicates an export was asked to draw nothing.
var ErrNoPanels = errors.New("export: no panels")

type Options struct {
	// PanelSize is the width and height of each panel.
	PanelSize   vg.Length
	Orientation viz.Orientation
}

func DefaultOptions() Options {
	return Options{PanelSize: 4 * vg.Inch, Orientation: viz.Cartesian}
}

// scalarGrid flips rows so file row 0 is drawn at the top, like imshow.
type scalarGrid struct{ g field.Grid }

func (s scalarGrid) Dims() (c, r int)   { return s.g.N(), s.g.N() }
func (s scalarGrid) Z(c, r int) float64 { return s.g.At(s.g.N()-1-r, c) }
func (s scalarGrid) X(c int) float64    { return float64(c) }
func (s scalarGrid) Y(r int) float64    { return float64(r) }

type vectorGrid struct {
	g      field.Grid
	orient viz.Orientation
}

func (f vectorGrid) Dims() (c, r int) { return f.g.N(), f.g.N() }
func (f vectorGrid) Vector(c, r int) plotter.XY {
	u, v := f.orient.UV(f.g.Vec(f.g.N()-1-r, c))
	return plotter.XY{X: u, Y: v}
}
func (f vectorGrid) X(c int) float64 { return float64(c) }
func (f vectorGrid) Y(r int) float64 { return float64(r) }

// PanelPlot builds the plot of one panel at frame i.
func PanelPlot(p storage.Panel, i int, orient viz.Orientation) (*plot.Plot, error) {
	if i < 0 || i >= p.Dataset.Len() {
		return nil, fmt.Errorf("export: frame %d out of range [0, %d)", i, p.Dataset.Len())
	}
	g := p.Dataset.Frame(i)

	pl := plot.New()
	pl.Title.Text = p.Config.Title
	pl.HideAxes()

	if p.Dataset.Kind() == field.Vector {
		f := plotter.NewField(vectorGrid{g: g, orient: orient})
		f.LineStyle.Color = color.RGBA{B: 0xff, A: 0xff}
		pl.Add(f)
		return pl, nil
	}

	pal, err := viz.GetPalette(p.Config.Palette)
	if err != nil {
		return nil, err
	}
	cmap := pal.Palette(256)
	colors := cmap.Colors()
	hm := plotter.NewHeatMap(scalarGrid{g: g}, cmap)
	hm.Min, hm.Max = p.Config.Min, p.Config.Max
	hm.Underflow = colors[0]
	hm.Overflow = colors[len(colors)-1]
	pl.Add(hm)
	return pl, nil
}

// RenderFrame writes all panels at frame i side by side into a PNG.
func RenderFrame(panels []storage.Panel, i int, path string, opts Options) error {
	if len(panels) == 0 {
		return ErrNoPanels
	}
	if opts.PanelSize <= 0 {
		opts.PanelSize = DefaultOptions().PanelSize
	}

	row := make([]*plot.Plot, len(panels))
	for j, p := range panels {
		pl, err := PanelPlot(p, i, opts.Orientation)
		if err != nil {
			return fmt.Errorf("panel %q: %w", p.Config.Title, err)
		}
		row[j] = pl
	}

	img := vgimg.New(opts.PanelSize*vg.Length(len(panels)), opts.PanelSize)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: len(panels), PadX: vg.Millimeter, PadY: vg.Millimeter}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for j := range row {
		row[j].Draw(canvases[0][j])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

// RenderAll writes every nth frame to dir as frame_00000.png, ... and returns
// the written paths in frame order.
func RenderAll(dir string, panels []storage.Panel, every int, opts Options, log logrus.FieldLogger) ([]string, error) {
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
	for i := 0; i < frames; i += every {
		path := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", i))
		if err := RenderFrame(panels, i, path, opts); err != nil {
			return paths, err
		}
		if log != nil {
			log.WithFields(logrus.Fields{"frame": i, "path": path}).Debug("rendered frame")
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SeriesPlot writes a line chart of one value per frame, e.g. the maximum
// percent density error over time.
func SeriesPlot(path, title string, series []float64, frameInterval float64) error {
	pts := make(plotter.XYs, len(series))
	for i, v := range series {
		pts[i].X = float64(i) * frameInterval
		pts[i].Y = v
	}
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "t (s)"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	pl.Add(line, plotter.NewGrid())
	return pl.Save(6*vg.Inch, 3*vg.Inch, path)
}
