package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Format names a document encoding.
type Format string

const (
	// FormatJSON is JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name. "yml" is accepted as YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownFormat, "cannot parse format"), "format", name)
	}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}
