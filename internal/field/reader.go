package field

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const float32Size = 4

// Read decodes the dump at path. n is required for FormatBinary; for
// FormatText it is optional and, when positive, must match the file.
// The kind is validated before the file is opened.
func Read(path string, kind Kind, n int, format Format) (*Dataset, error) {
	switch format {
	case FormatText:
		return ReadText(path, kind, n)
	case FormatBinary:
		return ReadBinary(path, kind, n)
	default:
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
		}
		return nil, fmt.Errorf("%w: unknown format %v", ErrInvalidArgument, format)
	}
}

// ReadText decodes a text dump.
func ReadText(path string, kind Kind, n int) (*Dataset, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("field: read %s: %w", path, err)
	}
	ds, err := DecodeText(data, NameFromPath(path), kind, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ReadBinary decodes a binary dump of n×n frames.
func ReadBinary(path string, kind Kind, n int) (*Dataset, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidArgument, n)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("field: read %s: %w", path, err)
	}
	ds, err := DecodeBinary(data, NameFromPath(path), kind, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// DecodeText parses text dump contents. N is taken from the first frame
// unless n is positive, in which case every frame must be n×n. CRLF line
// endings are read as LF.
func DecodeText(data []byte, name string, kind Kind, n int) (*Dataset, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}
	comps := kind.Components()
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	var frames []Grid
	for _, segment := range strings.Split(text, "\n\n") {
		rows := nonEmpty(strings.Split(segment, "\n"))
		if len(rows) == 0 {
			continue
		}
		fi := len(frames)
		if n <= 0 {
			n = len(strings.Split(rows[0], " "))
		}
		if len(rows) != n {
			return nil, decodeErr(fi, -1, -1, "", "frame has %d rows, want %d", len(rows), n)
		}

		values := make([]float64, 0, frameSize(n, kind))
		for ri, row := range rows {
			cells := strings.Split(row, " ")
			if len(cells) != n {
				return nil, decodeErr(fi, ri, -1, "", "row has %d cells, want %d", len(cells), n)
			}
			for ci, cell := range cells {
				var err error
				if kind == Scalar {
					values, err = appendScalar(values, cell)
				} else {
					values, err = appendVector(values, cell)
				}
				if err != nil {
					return nil, &DecodeError{Frame: fi, Row: ri, Col: ci, Cell: cell, Err: err}
				}
			}
		}
		frames = append(frames, newGrid(n, comps, values))
	}

	if n < 0 {
		n = 0
	}
	return &Dataset{name: name, kind: kind, n: n, frames: frames}, nil
}

// DecodeBinary reshapes little-endian float32 data into n×n frames.
func DecodeBinary(data []byte, name string, kind Kind, n int) (*Dataset, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidArgument, n)
	}
	size := frameSize(n, kind)
	frameBytes := size * float32Size
	if len(data)%frameBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes, frame is %d bytes (n=%d, %s)",
			ErrSizeMismatch, len(data), frameBytes, n, kind)
	}

	count := len(data) / frameBytes
	frames := make([]Grid, count)
	for f := 0; f < count; f++ {
		chunk := data[f*frameBytes : (f+1)*frameBytes]
		values := make([]float64, size)
		for i := range values {
			bits := binary.LittleEndian.Uint32(chunk[i*float32Size:])
			values[i] = float64(math.Float32frombits(bits))
		}
		frames[f] = newGrid(n, kind.Components(), values)
	}
	return &Dataset{name: name, kind: kind, n: n, frames: frames}, nil
}

func appendScalar(dst []float64, cell string) ([]float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return dst, err
	}
	return append(dst, v), nil
}

func appendVector(dst []float64, cell string) ([]float64, error) {
	if len(cell) < 2 || cell[0] != '(' || cell[len(cell)-1] != ')' {
		return dst, fmt.Errorf("vector cell must be (a,b)")
	}
	parts := strings.Split(cell[1:len(cell)-1], ",")
	if len(parts) != 2 {
		return dst, fmt.Errorf("vector cell has %d components, want 2", len(parts))
	}
	a, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return dst, err
	}
	b, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return dst, err
	}
	return append(dst, a, b), nil
}

func nonEmpty(rows []string) []string {
	out := rows[:0:0]
	for _, r := range rows {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

// NameFromPath derives a field name from a dump path:
// "out/sim_velocity.arr.zst" becomes "velocity".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".zst")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(base, "sim_")
}
