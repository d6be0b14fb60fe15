package field

import "math"

// Vec2 is one vector cell, (first, second) in file order.
type Vec2 [2]float64

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 {
	return math.Hypot(v[0], v[1])
}

// Grid is one N×N frame. Values are stored row-major, component-minor.
type Grid struct {
	n          int
	components int
	data       []float64
}

func newGrid(n, components int, data []float64) Grid {
	return Grid{n: n, components: components, data: data}
}

// N returns the grid side length.
func (g Grid) N() int { return g.n }

// Components returns 1 for scalar grids and 2 for vector grids.
func (g Grid) Components() int { return g.components }

// At returns the scalar value at (row, col). For vector grids it returns the
// first component.
func (g Grid) At(row, col int) float64 {
	return g.data[(row*g.n+col)*g.components]
}

// Vec returns the vector value at (row, col). For scalar grids the second
// component is zero.
func (g Grid) Vec(row, col int) Vec2 {
	i := (row*g.n + col) * g.components
	if g.components == 1 {
		return Vec2{g.data[i], 0}
	}
	return Vec2{g.data[i], g.data[i+1]}
}

// Component returns component k of every cell as a new row-major slice.
func (g Grid) Component(k int) []float64 {
	out := make([]float64, g.n*g.n)
	for i := range out {
		out[i] = g.data[i*g.components+k]
	}
	return out
}

// Values returns a copy of the flat cell data.
func (g Grid) Values() []float64 {
	out := make([]float64, len(g.data))
	copy(out, g.data)
	return out
}

// Dataset is the full ordered sequence of frames decoded from one file.
// It cannot be changed once built.
type Dataset struct {
	name   string
	kind   Kind
	n      int
	frames []Grid
}

// Name returns the field name, e.g. "velocity".
func (d *Dataset) Name() string { return d.name }

// Kind returns the value kind of every cell.
func (d *Dataset) Kind() Kind { return d.kind }

// N returns the grid side length shared by all frames.
func (d *Dataset) N() int { return d.n }

// Len returns the number of frames.
func (d *Dataset) Len() int { return len(d.frames) }

// Frame returns frame i. Frame 0 is the first time step.
func (d *Dataset) Frame(i int) Grid { return d.frames[i] }

// Shape returns (frames, n, components).
func (d *Dataset) Shape() (int, int, int) {
	return len(d.frames), d.n, d.kind.Components()
}

// At returns the scalar at (frame, row, col).
func (d *Dataset) At(frame, row, col int) float64 {
	return d.frames[frame].At(row, col)
}

// Vec returns the vector at (frame, row, col).
func (d *Dataset) Vec(frame, row, col int) Vec2 {
	return d.frames[frame].Vec(row, col)
}

// frameSize is the number of float values in one frame.
func frameSize(n int, k Kind) int {
	return n * n * k.Components()
}
