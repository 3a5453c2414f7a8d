// Package config provides YAML-backed settings for the reconstruction
// engine: connectivity and the output value pair, with sane defaults
// for files that are absent or partial.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/morpho-go/morpho/raster"
	"github.com/morpho-go/morpho/reconstruct"
)

// ErrBadConnectivity indicates a connectivity string other than "face" or "full".
var ErrBadConnectivity = errors.New(`config: connectivity must be "face" or "full"`)

// Settings is the engine configuration as loaded from YAML.
type Settings struct {
	// Connectivity selects the adjacency rule: "face" or "full".
	Connectivity string `yaml:"connectivity"`

	// ForegroundValue is written for reconstructed components.
	ForegroundValue uint8 `yaml:"foregroundValue"`

	// BackgroundValue is written everywhere else.
	BackgroundValue uint8 `yaml:"backgroundValue"`
}

// Default returns the default settings: face connectivity, foreground
// 255, background 0.
func Default() *Settings {
	return &Settings{
		Connectivity:    raster.Face.String(),
		ForegroundValue: 255,
		BackgroundValue: 0,
	}
}

// Load reads settings from a YAML file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	s := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings as YAML, creating parent directories as needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: creating directory for %s: %w", path, err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// Engine converts the settings into validated engine options.
// Returns ErrBadConnectivity for an unrecognized connectivity string;
// value misconfiguration is surfaced by the engine itself.
func (s *Settings) Engine() (reconstruct.Options[uint8], error) {
	var conn raster.Connectivity
	switch s.Connectivity {
	case raster.Face.String():
		conn = raster.Face
	case raster.Full.String():
		conn = raster.Full
	default:
		return reconstruct.Options[uint8]{}, fmt.Errorf("%w: got %q", ErrBadConnectivity, s.Connectivity)
	}
	return reconstruct.Options[uint8]{
		Connectivity: conn,
		Foreground:   s.ForegroundValue,
		Background:   s.BackgroundValue,
	}, nil
}
