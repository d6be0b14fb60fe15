package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/fieldview/internal/field"
)

type FrameStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Magnitudes returns the per-cell value of g: the scalar itself, or the
// vector length.
func Magnitudes(g field.Grid) []float64 {
	if g.Components() == 1 {
		return g.Values()
	}
	n := g.N()
	out := make([]float64, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out = append(out, g.Vec(r, c).Norm())
		}
	}
	return out
}

func Frame(g field.Grid) FrameStats {
	return summarize(Magnitudes(g))
}

func Frames(ds *field.Dataset) []FrameStats {
	out := make([]FrameStats, ds.Len())
	for i := range out {
		out[i] = Frame(ds.Frame(i))
	}
	return out
}

// Overall summarizes every cell of every frame together.
func Overall(ds *field.Dataset) FrameStats {
	var all []float64
	for i := 0; i < ds.Len(); i++ {
		all = append(all, Magnitudes(ds.Frame(i))...)
	}
	return summarize(all)
}

// Series picks one statistic from each frame.
func Series(stats []FrameStats, pick func(FrameStats) float64) []float64 {
	out := make([]float64, len(stats))
	for i, s := range stats {
		out[i] = pick(s)
	}
	return out
}

func MaxOf(s FrameStats) float64  { return s.Max }
func MeanOf(s FrameStats) float64 { return s.Mean }

func summarize(x []float64) FrameStats {
	if len(x) == 0 {
		return FrameStats{}
	}
	s := FrameStats{Min: floats.Min(x), Max: floats.Max(x)}
	if len(x) == 1 {
		s.Mean = x[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	return s
}
