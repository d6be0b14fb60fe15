package field

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the value kind stored in every cell of a field.
type Kind int

const (
	Scalar Kind = iota + 1
	Vector
)

// ParseKind maps "scalar" and "vector" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "scalar":
		return Scalar, nil
	case "vector":
		return Vector, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	return k == Scalar || k == Vector
}

// Components returns the number of float values per cell.
func (k Kind) Components() int {
	switch k {
	case Scalar:
		return 1
	case Vector:
		return 2
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText lets a Kind appear as "scalar"/"vector" in YAML and JSON.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Format is an on-disk representation of a field dump.
type Format int

const (
	FormatText Format = iota + 1
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "text"/"txt" and "binary"/"arr".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return FormatText, nil
	case "binary", "arr":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("%w: unknown format %q", ErrInvalidArgument, s)
	}
}

// FormatFromPath picks a format from the file extension: ".arr" is binary,
// anything else is text. A trailing ".zst" is ignored.
func FormatFromPath(path string) Format {
	path = strings.TrimSuffix(path, ".zst")
	if strings.EqualFold(filepath.Ext(path), ".arr") {
		return FormatBinary
	}
	return FormatText
}
