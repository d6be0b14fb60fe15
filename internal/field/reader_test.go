package field_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldview/internal/field"
)

func float32Bytes(values ...float32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func writeFile(dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, data, 0644)).To(Succeed())
	return path
}

var _ = Describe("Reader", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Describe("text scalars", func() {
		It("decodes a single 2x2 frame", func() {
			ds, err := field.DecodeText([]byte("1.0 2.0\n3.0 4.0"), "color", field.Scalar, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Len()).To(Equal(1))
			g := ds.Frame(0)
			Expect([][]float64{
				{g.At(0, 0), g.At(0, 1)},
				{g.At(1, 0), g.At(1, 1)},
			}).To(Equal([][]float64{{1, 2}, {3, 4}}))
		})

		It("infers N from the first frame", func() {
			ds, err := field.DecodeText([]byte("1 2 3\n4 5 6\n7 8 9\n\n"), "p", field.Scalar, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(ds.N()).To(Equal(3))
			Expect(ds.At(0, 2, 1)).To(Equal(8.0))
		})

		It("splits frames on blank lines into independent grids", func() {
			ds, err := field.DecodeText([]byte("1 2\n3 4\n\n5 6\n7 8\n\n"), "p", field.Scalar, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Len()).To(Equal(2))
			Expect(ds.Frame(0).Values()).To(Equal([]float64{1, 2, 3, 4}))
			Expect(ds.Frame(1).Values()).To(Equal([]float64{5, 6, 7, 8}))

			v := ds.Frame(0).Values()
			v[0] = 100
			Expect(ds.At(0, 0, 0)).To(Equal(1.0))
		})

		It("round-trips through the encoder", func() {
			src := []byte("0.25 -1.5\n3 1e-3\n\n2 4\n6 8\n\n")
			ds, err := field.DecodeText(src, "p", field.Scalar, 0)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(field.EncodeText(&buf, ds, -1)).To(Succeed())
			again, err := field.DecodeText(buf.Bytes(), "p", field.Scalar, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Len()).To(Equal(ds.Len()))
			for i := 0; i < ds.Len(); i++ {
				Expect(again.Frame(i).Values()).To(Equal(ds.Frame(i).Values()))
			}
		})

		It("rejects non-numeric cells", func() {
			_, err := field.DecodeText([]byte("1 x\n3 4"), "p", field.Scalar, 2)
			Expect(err).To(MatchError(field.ErrDecode))
			var de *field.DecodeError
			Expect(err).To(BeAssignableToTypeOf(de))
			de = err.(*field.DecodeError)
			Expect(de.Row).To(Equal(0))
			Expect(de.Col).To(Equal(1))
		})

		DescribeTable("enforces a caller-supplied grid size",
			func(text string, n int) {
				_, err := field.DecodeText([]byte(text), "p", field.Scalar, n)
				Expect(err).To(MatchError(field.ErrDecode))
			},
			Entry("n=3 on a 2x2 frame", "1 2\n3 4\n\n", 3),
			Entry("n=2 on a 2x3 frame", "1 2 3\n4 5 6\n\n", 2),
			Entry("n=2 with a 3x3 second frame", "1 2\n3 4\n\n1 2 3\n4 5 6\n7 8 9\n\n", 2),
		)

		It("reads CRLF line endings", func() {
			ds, err := field.DecodeText([]byte("1 2\r\n3 4\r\n\r\n5 6\r\n7 8\r\n\r\n"), "p", field.Scalar, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Len()).To(Equal(2))
			Expect(ds.Frame(1).Values()).To(Equal([]float64{5, 6, 7, 8}))
		})

		It("rejects values outside the float64 range", func() {
			_, err := field.DecodeText([]byte("1e400"), "p", field.Scalar, 1)
			Expect(err).To(MatchError(field.ErrDecode))
		})

		It("rejects ragged and non-square frames", func() {
			_, err := field.DecodeText([]byte("1 2\n3"), "p", field.Scalar, 0)
			Expect(err).To(MatchError(field.ErrDecode))
			_, err = field.DecodeText([]byte("1 2\n3 4\n\n1 2 3\n4 5 6\n7 8 9"), "p", field.Scalar, 0)
			Expect(err).To(MatchError(field.ErrDecode))
		})
	})

	Describe("text vectors", func() {
		It("decodes (a,b) cells", func() {
			ds, err := field.DecodeText([]byte("(1.0,2.0) (3.0,4.0)\n(5.0,6.0) (7.0,8.0)"), "velocity", field.Vector, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Vec(0, 0, 0)).To(Equal(field.Vec2{1, 2}))
			Expect(ds.Vec(0, 1, 1)).To(Equal(field.Vec2{7, 8}))
		})

		DescribeTable("rejects malformed pairs",
			func(cell string) {
				_, err := field.DecodeText([]byte(cell), "velocity", field.Vector, 1)
				Expect(err).To(MatchError(field.ErrDecode))
			},
			Entry("one component", "(1.0)"),
			Entry("three components", "(1.0,2.0,3.0)"),
			Entry("non-numeric", "(a,2.0)"),
			Entry("missing parens", "1.0,2.0"),
			Entry("embedded space", "(1.0, 2.0)"),
		)
	})

	Describe("binary", func() {
		It("reshapes vectors component-minor", func() {
			path := writeFile(dir, "sim_velocity.arr", float32Bytes(1, 2, 3, 4, 5, 6, 7, 8))
			ds, err := field.ReadBinary(path, field.Vector, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Name()).To(Equal("velocity"))
			Expect(ds.Len()).To(Equal(1))
			Expect(ds.Vec(0, 0, 1)).To(Equal(field.Vec2{3, 4}))
			Expect(ds.Vec(0, 1, 0)).To(Equal(field.Vec2{5, 6}))
		})

		It("counts frames from the file size", func() {
			path := writeFile(dir, "sim_color.arr", float32Bytes(1, 2, 3, 4, 5, 6, 7, 8))
			ds, err := field.ReadBinary(path, field.Scalar, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(ds.Len()).To(Equal(2))
			Expect(ds.At(1, 1, 1)).To(Equal(8.0))
		})

		DescribeTable("fails on partial frames",
			func(kind field.Kind, n, floats int) {
				data := float32Bytes(make([]float32, floats)...)
				_, err := field.DecodeBinary(data, "x", kind, n)
				Expect(err).To(MatchError(field.ErrSizeMismatch))
			},
			Entry("scalar short frame", field.Scalar, 2, 3),
			Entry("scalar extra value", field.Scalar, 2, 5),
			Entry("vector half frame", field.Vector, 2, 4),
			Entry("vector odd", field.Vector, 3, 19),
		)

		It("fails on a trailing partial float", func() {
			_, err := field.DecodeBinary(append(float32Bytes(1, 2, 3, 4), 0x00), "x", field.Scalar, 2)
			Expect(err).To(MatchError(field.ErrSizeMismatch))
		})

		It("requires a positive grid size", func() {
			_, err := field.DecodeBinary(float32Bytes(1), "x", field.Scalar, 0)
			Expect(err).To(MatchError(field.ErrInvalidArgument))
		})
	})

	Describe("argument validation", func() {
		It("rejects an unknown kind before touching the filesystem", func() {
			missing := filepath.Join(dir, "does-not-exist.txt")
			for _, format := range []field.Format{field.FormatText, field.FormatBinary} {
				_, err := field.Read(missing, field.Kind(9), 4, format)
				Expect(err).To(MatchError(field.ErrInvalidKind))
				Expect(os.IsNotExist(err)).To(BeFalse())
			}
		})

		It("rejects kind strings other than scalar and vector", func() {
			for _, s := range []string{"", "Scalar", "vec", "tensor"} {
				_, err := field.ParseKind(s)
				Expect(err).To(MatchError(field.ErrInvalidKind))
			}
		})

		It("reports missing files as I/O failures", func() {
			_, err := field.ReadText(filepath.Join(dir, "nope.txt"), field.Scalar, 0)
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(os.ErrNotExist))
		})
	})
})
