package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingParam indicates a required simulation parameter was absent.
	ErrMissingParam = errors.New("config: missing required parameter")

	// ErrInvalidParam indicates a simulation parameter outside its valid range.
	ErrInvalidParam = errors.New("config: invalid parameter")

	// ErrInvalidConfig indicates an unusable playback configuration.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Params are the simulation parameters written next to the field dumps.
type Params struct {
	N         int     `json:"N" yaml:"N"`
	DT        float64 `json:"DT" yaml:"DT"`
	Seconds   float64 `json:"SECONDS" yaml:"SECONDS"`
	OutputFPS int     `json:"OUTPUT_FPS" yaml:"OUTPUT_FPS"`
}

// rawParams detects absent keys; a zero value is not the same as missing.
type rawParams struct {
	N         *int     `json:"N" yaml:"N"`
	DT        *float64 `json:"DT" yaml:"DT"`
	Seconds   *float64 `json:"SECONDS" yaml:"SECONDS"`
	OutputFPS *int     `json:"OUTPUT_FPS" yaml:"OUTPUT_FPS"`
}

// LoadParams reads a parameters file. ".yaml" and ".yml" files are parsed as
// YAML, everything else as JSON.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	p, err := ParseParams(data, ext == ".yaml" || ext == ".yml")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseParams decodes parameters from JSON, or YAML when asYAML is set, and
// validates them.
func ParseParams(data []byte, asYAML bool) (*Params, error) {
	var raw rawParams
	if asYAML {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	}

	var missing []string
	if raw.N == nil {
		missing = append(missing, "N")
	}
	if raw.DT == nil {
		missing = append(missing, "DT")
	}
	if raw.Seconds == nil {
		missing = append(missing, "SECONDS")
	}
	if raw.OutputFPS == nil {
		missing = append(missing, "OUTPUT_FPS")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingParam, strings.Join(missing, ", "))
	}

	p := &Params{N: *raw.N, DT: *raw.DT, Seconds: *raw.Seconds, OutputFPS: *raw.OutputFPS}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that every parameter is positive and finite.
func (p *Params) Validate() error {
	switch {
	case p.N <= 0:
		return fmt.Errorf("%w: N must be positive, got %d", ErrInvalidParam, p.N)
	case !(p.DT > 0) || math.IsInf(p.DT, 0):
		return fmt.Errorf("%w: DT must be positive, got %v", ErrInvalidParam, p.DT)
	case !(p.Seconds > 0) || math.IsInf(p.Seconds, 0):
		return fmt.Errorf("%w: SECONDS must be positive, got %v", ErrInvalidParam, p.Seconds)
	case p.OutputFPS <= 0:
		return fmt.Errorf("%w: OUTPUT_FPS must be positive, got %d", ErrInvalidParam, p.OutputFPS)
	}
	return nil
}

// FrameInterval is the playback delay between frames, 1000/OUTPUT_FPS
// milliseconds truncated to a whole millisecond.
func (p *Params) FrameInterval() time.Duration {
	return time.Duration(1000/p.OutputFPS) * time.Millisecond
}

// StepsPerFrame is the number of solver steps between two output frames.
func (p *Params) StepsPerFrame() int {
	steps := int(1 / (float64(p.OutputFPS) * p.DT))
	if steps < 1 {
		return 1
	}
	return steps
}

// ExpectedFrames is the number of frames the simulator writes: one every
// StepsPerFrame steps, starting with step 0.
func (p *Params) ExpectedFrames() int {
	total := int(p.Seconds / p.DT)
	spf := p.StepsPerFrame()
	return (total + spf - 1) / spf
}

// SaveParams writes p as indented JSON in the simulator's layout.
func SaveParams(path string, p *Params) error {
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
