package config

import "go.trai.ch/rcstring/internal/core/domain"

// SchemaVersion is the only rcstring.yaml version this loader understands.
const SchemaVersion = "1"

// File represents the structure of the rcstring.yaml configuration file.
type File struct {
	Version string `yaml:"version"`

	domain.Settings `yaml:",inline"`
}
