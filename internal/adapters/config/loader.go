// Package config provides the configuration loader for rcstring.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	"go.trai.ch/rcstring/internal/core/domain"
	"go.trai.ch/rcstring/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no path is given.
const DefaultFilename = "rcstring.yaml"

// FileConfigLoader implements ports.ConfigLoader on top of an afero filesystem.
type FileConfigLoader struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys afero.Fs, logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{fs: fsys, logger: logger}
}

// Load reads the configuration file at path. Values present in the file
// override the defaults; a missing or empty file yields the defaults.
func (l *FileConfigLoader) Load(path string) (*domain.Settings, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := afero.ReadFile(l.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("no configuration file, using defaults", "path", path)
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	file := File{Version: SchemaVersion, Settings: *domain.DefaultSettings()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Version != SchemaVersion {
		return nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "unsupported config version"), "version", file.Version),
			"path", path,
		)
	}
	if err := file.Settings.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug("loaded configuration", "path", path)
	settings := file.Settings
	return &settings, nil
}
