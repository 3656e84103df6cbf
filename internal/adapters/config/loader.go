// Package config provides the configuration loader for weave.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
	"weave/internal/core/domain"
	"weave/internal/core/ports"
)

// Filename is the configuration file looked up in the working directory.
const Filename = "weave.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a FileConfigLoader reading the default filename.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: Filename, logger: logger}
}

// Load reads the configuration from the given working directory.
// A missing file yields the defaults.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from cwd
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var wf Weavefile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := domain.DefaultConfig()
	if len(wf.Engine) > 0 {
		cfg.Engine = wf.Engine
	}
	if wf.CacheDir != "" {
		cfg.CacheDir = wf.CacheDir
	}
	if wf.OutputDir != "" {
		cfg.OutputDir = wf.OutputDir
	}

	return cfg, nil
}
