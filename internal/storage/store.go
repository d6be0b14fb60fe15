package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DataDog/zstd"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/fieldview/internal/config"
	"github.com/san-kum/fieldview/internal/field"
)

const zstdExt = ".zst"

// Run is one simulation output directory: a parameters file plus field dumps.
type Run struct {
	Dir    string
	Params *config.Params
	cfg    *config.Config
	log    logrus.FieldLogger
}

// Panel is a loaded, possibly derived, dataset ready for display.
type Panel struct {
	Config  config.PanelConfig
	Dataset *field.Dataset
}

// Open loads the parameters of the run in dir. The config decides which
// parameters file to read and which panels LoadAll produces.
func Open(dir string, cfg *config.Config, log logrus.FieldLogger) (*Run, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	params, err := config.LoadParams(filepath.Join(dir, cfg.ParamsFile))
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"dir": dir, "n": params.N, "dt": params.DT, "fps": params.OutputFPS,
	}).Debug("opened run")
	return &Run{Dir: dir, Params: params, cfg: cfg, log: log}, nil
}

// Path resolves a file name relative to the run directory.
func (r *Run) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.Dir, name)
}

// Load decodes the dump of a single panel, applying its derivation.
func (r *Run) Load(pc config.PanelConfig) (*field.Dataset, error) {
	ds, err := ReadDataset(r.Path(pc.File), pc.Kind, r.Params.N)
	if err != nil {
		return nil, err
	}
	if pc.Derive == config.DerivePctDensityError {
		ds, err = field.PercentDensityError(ds, r.Params.DT)
		if err != nil {
			return nil, err
		}
	}
	r.log.WithFields(logrus.Fields{
		"file": pc.File, "kind": pc.Kind, "frames": ds.Len(),
	}).Debug("loaded field")
	return ds, nil
}

// LoadAll loads every configured panel. It stops at the first failure and
// returns no panels in that case.
func (r *Run) LoadAll() ([]Panel, error) {
	panels := make([]Panel, 0, len(r.cfg.Panels))
	for _, pc := range r.cfg.Panels {
		ds, err := r.Load(pc)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", pc.Title, err)
		}
		panels = append(panels, Panel{Config: pc, Dataset: ds})
	}

	frames := panels[0].Dataset.Len()
	for _, p := range panels[1:] {
		if p.Dataset.Len() != frames {
			r.log.WithFields(logrus.Fields{
				"panel": p.Config.Title, "frames": p.Dataset.Len(), "want": frames,
			}).Warn("panel frame counts differ")
		}
	}
	if want := r.Params.ExpectedFrames(); frames != want {
		r.log.WithFields(logrus.Fields{"frames": frames, "expected": want}).Debug("frame count differs from params")
	}
	return panels, nil
}

// FrameCount is the number of frames every panel can show: the length of
// the shortest dataset, or zero when there are no panels.
func FrameCount(panels []Panel) int {
	frames := -1
	for _, p := range panels {
		if frames < 0 || p.Dataset.Len() < frames {
			frames = p.Dataset.Len()
		}
	}
	return max(frames, 0)
}

// List returns the recognized field dumps in the run directory, sorted.
func (r *Run) List() ([]string, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsFieldFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// IsFieldFile reports whether name carries a field dump extension.
func IsFieldFile(name string) bool {
	name = strings.TrimSuffix(strings.ToLower(name), zstdExt)
	switch filepath.Ext(name) {
	case ".txt", ".arr":
		return true
	}
	return false
}

// ReadDataset decodes a dump, choosing the representation from the
// extension and decompressing ".zst" files first. n is required for binary
// dumps and checked against text dumps when positive.
func ReadDataset(path string, kind field.Kind, n int) (*field.Dataset, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", field.ErrInvalidKind, kind)
	}
	format := field.FormatFromPath(path)
	if !strings.HasSuffix(path, zstdExt) {
		return field.Read(path, kind, n, format)
	}

	data, err := readCompressed(path)
	if err != nil {
		return nil, err
	}
	var ds *field.Dataset
	if format == field.FormatBinary {
		ds, err = field.DecodeBinary(data, field.NameFromPath(path), kind, n)
	} else {
		ds, err = field.DecodeText(data, field.NameFromPath(path), kind, n)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

func readCompressed(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	data, err := zstd.Decompress(nil, raw)
	if err != nil {
		return nil, fmt.Errorf("storage: decompress %s: %w", path, err)
	}
	return data, nil
}
