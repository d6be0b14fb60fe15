package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const pctDensityErrorName = "pct_density_error"

// PercentDensityError derives 100 × dt × |divergence| for every cell. The
// result has the shape of div and is rebuilt on every call.
func PercentDensityError(div *Dataset, dt float64) (*Dataset, error) {
	if div == nil {
		return nil, fmt.Errorf("%w: nil divergence dataset", ErrInvalidArgument)
	}
	if div.kind != Scalar {
		return nil, fmt.Errorf("%w: divergence must be scalar, got %s", ErrInvalidArgument, div.kind)
	}

	factor := 100 * dt
	frames := make([]Grid, div.Len())
	for i, src := range div.frames {
		values := make([]float64, len(src.data))
		for j, v := range src.data {
			values[j] = math.Abs(v)
		}
		floats.Scale(factor, values)
		frames[i] = newGrid(src.n, src.components, values)
	}
	return &Dataset{name: pctDensityErrorName, kind: Scalar, n: div.n, frames: frames}, nil
}

// FromFrames builds a dataset from flat row-major frames. Each frame must
// hold n*n*kind.Components() values; the slices are copied.
func FromFrames(name string, kind Kind, n int, frames [][]float64) (*Dataset, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidArgument, n)
	}
	size := frameSize(n, kind)
	grids := make([]Grid, len(frames))
	for i, f := range frames {
		if len(f) != size {
			return nil, fmt.Errorf("%w: frame %d has %d values, want %d", ErrSizeMismatch, i, len(f), size)
		}
		values := make([]float64, size)
		copy(values, f)
		grids[i] = newGrid(n, kind.Components(), values)
	}
	return &Dataset{name: name, kind: kind, n: n, frames: grids}, nil
}
