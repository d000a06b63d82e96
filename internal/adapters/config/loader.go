// Package config provides the configuration loader for yarnix.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/yarnix/internal/core/domain"
	"go.trai.ch/yarnix/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads settings from the given working directory. A missing config
// file is not an error: the built-in defaults apply.
func (l *FileConfigLoader) Load(cwd string) (domain.Settings, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a config file from the given path and returns run settings.
func Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Lockfile != "" {
		settings.LockfilePath = file.Lockfile
	}
	settings.NoNix = file.NoNix
	settings.NoPatch = file.NoPatch
	settings.Progress = file.Progress

	return settings, nil
}
