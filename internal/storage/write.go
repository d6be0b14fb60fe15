package storage

import (
	"bytes"
	"os"
	"strings"

	"github.com/DataDog/zstd"

	"github.com/san-kum/fieldview/internal/field"
)

// WriteDataset writes ds to path in the representation implied by the
// extension; ".zst" output is compressed at the default level.
func WriteDataset(path string, ds *field.Dataset, precision int) error {
	var buf bytes.Buffer
	if err := field.Encode(&buf, ds, field.FormatFromPath(path), precision); err != nil {
		return err
	}
	data := buf.Bytes()
	if strings.HasSuffix(path, zstdExt) {
		compressed, err := zstd.Compress(nil, data)
		if err != nil {
			return err
		}
		data = compressed
	}
	return os.WriteFile(path, data, 0644)
}
