// Package field decodes simulation field dumps into immutable, time-ordered
// grid datasets.
//
// A dump holds one named field (velocity, pressure, color, divergence)
// sampled over an N×N grid at every output time step. Two on-disk
// representations are supported:
//
//   - text: frames separated by a blank line, rows by a line break, cells by
//     a single space; vector cells are written "(a,b)"
//   - binary: a headerless run of little-endian float32 values reshaped as
//     (frame, row, col[, component]) in row-major order
//
// # Example
//
//	ds, err := field.Read("sim_velocity.txt", field.Vector, 0, field.FormatText)
//	if err != nil {
//		return err
//	}
//	u := ds.Frame(0).Vec(3, 4)
//
// Datasets are built in full by a single whole-file read and never mutated
// afterwards, so they can be shared freely between readers.
package field
