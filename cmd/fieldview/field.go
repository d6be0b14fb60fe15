package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/fieldview/internal/analysis"
	"github.com/san-kum/fieldview/internal/config"
	"github.com/san-kum/fieldview/internal/export"
	"github.com/san-kum/fieldview/internal/field"
	"github.com/san-kum/fieldview/internal/storage"
)

// loadField decodes the file named on the command line. A missing --n is
// filled from sim_params.json in the same directory when one exists.
func loadField(path string) (*field.Dataset, *config.Params, error) {
	kind, err := field.ParseKind(kindName)
	if err != nil {
		return nil, nil, err
	}

	params, perr := config.LoadParams(filepath.Join(filepath.Dir(path), config.DefaultParamsFile))
	if perr != nil {
		log.WithError(perr).Debug("no usable params next to field file")
		params = nil
	}

	n := gridSize
	if n <= 0 && params != nil {
		n = params.N
	}
	if n <= 0 && field.FormatFromPath(path) == field.FormatBinary {
		return nil, nil, fmt.Errorf("binary dumps need --n or a %s next to the file", config.DefaultParamsFile)
	}

	ds, err := storage.ReadDataset(path, kind, n)
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(logrus.Fields{"file": path, "kind": kind, "n": ds.N(), "frames": ds.Len()}).Debug("decoded field")
	return ds, params, nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	ds, params, err := loadField(args[0])
	if err != nil {
		return err
	}
	frames, n, comps := ds.Shape()
	overall := analysis.Overall(ds)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "name\t%s\n", ds.Name())
	fmt.Fprintf(w, "format\t%s\n", field.FormatFromPath(args[0]))
	fmt.Fprintf(w, "kind\t%s\n", ds.Kind())
	fmt.Fprintf(w, "shape\t(%d, %d, %d, %d)\n", frames, n, n, comps)
	fmt.Fprintf(w, "range\t[%.4g, %.4g]\n", overall.Min, overall.Max)
	if params != nil {
		fmt.Fprintf(w, "expected frames\t%d\n", params.ExpectedFrames())
		fmt.Fprintf(w, "duration\t%.3gs at %d fps\n", float64(frames)/float64(params.OutputFPS), params.OutputFPS)
	}
	return w.Flush()
}

func showStats(cmd *cobra.Command, args []string) error {
	ds, params, err := loadField(args[0])
	if err != nil {
		return err
	}
	if derive {
		dt := dtFlag
		if dt <= 0 {
			if params == nil {
				return fmt.Errorf("--pct-density-error needs --dt or a %s", config.DefaultParamsFile)
			}
			dt = params.DT
		}
		if ds, err = field.PercentDensityError(ds, dt); err != nil {
			return err
		}
	}

	stats := analysis.Frames(ds)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "frame\tmin\tmax\tmean\tstddev\t")
	for i, s := range stats {
		fmt.Fprintf(w, "%d\t%.4g\t%.4g\t%.4g\t%.4g\t\n", i, s.Min, s.Max, s.Mean, s.StdDev)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	series := analysis.Series(stats, analysis.MaxOf)
	caption := "max " + strings.ReplaceAll(ds.Name(), "_", " ")
	if len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		))
	}
	if pngPath != "" {
		interval := 1.0
		if params != nil {
			interval = 1 / float64(params.OutputFPS)
		}
		if err := export.SeriesPlot(pngPath, caption, series, interval); err != nil {
			return err
		}
		log.WithField("path", pngPath).Info("wrote series chart")
	}
	return nil
}

func convertField(cmd *cobra.Command, args []string) error {
	ds, _, err := loadField(args[0])
	if err != nil {
		return err
	}
	if err := storage.WriteDataset(args[1], ds, precision); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"in": args[0], "out": args[1], "format": field.FormatFromPath(args[1]), "frames": ds.Len(),
	}).Info("converted field")
	return nil
}

func showParams(cmd *cobra.Command, args []string) error {
	p, err := config.LoadParams(args[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "N\t%d\n", p.N)
	fmt.Fprintf(w, "DT\t%g\n", p.DT)
	fmt.Fprintf(w, "SECONDS\t%g\n", p.Seconds)
	fmt.Fprintf(w, "OUTPUT_FPS\t%d\n", p.OutputFPS)
	fmt.Fprintf(w, "frame interval\t%v\n", p.FrameInterval())
	fmt.Fprintf(w, "steps per frame\t%d\n", p.StepsPerFrame())
	fmt.Fprintf(w, "expected frames\t%d\n", p.ExpectedFrames())
	return w.Flush()
}
