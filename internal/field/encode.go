package field

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"strconv"
)

// EncodeText writes ds in the text grammar. Every frame, including the last,
// is followed by a blank line. A negative precision writes the shortest
// representation that round-trips.
func EncodeText(w io.Writer, ds *Dataset, precision int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for f := 0; f < ds.Len(); f++ {
		g := ds.Frame(f)
		for r := 0; r < g.n; r++ {
			for c := 0; c < g.n; c++ {
				if c > 0 {
					bw.WriteByte(' ')
				}
				buf = buf[:0]
				if ds.kind == Vector {
					v := g.Vec(r, c)
					buf = append(buf, '(')
					buf = strconv.AppendFloat(buf, v[0], 'f', precision, 64)
					buf = append(buf, ',')
					buf = strconv.AppendFloat(buf, v[1], 'f', precision, 64)
					buf = append(buf, ')')
				} else {
					buf = strconv.AppendFloat(buf, g.At(r, c), 'f', precision, 64)
				}
				bw.Write(buf)
			}
			if r != g.n-1 {
				bw.WriteByte('\n')
			}
		}
		bw.WriteString("\n\n")
	}
	return bw.Flush()
}

// EncodeBinary writes ds as little-endian float32 values.
func EncodeBinary(w io.Writer, ds *Dataset) error {
	bw := bufio.NewWriter(w)
	var word [float32Size]byte
	for f := 0; f < ds.Len(); f++ {
		for _, v := range ds.Frame(f).data {
			binary.LittleEndian.PutUint32(word[:], math.Float32bits(float32(v)))
			if _, err := bw.Write(word[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Encode dispatches on format. precision applies to text only.
func Encode(w io.Writer, ds *Dataset, format Format, precision int) error {
	if format == FormatBinary {
		return EncodeBinary(w, ds)
	}
	return EncodeText(w, ds, precision)
}
