package rcstring

import (
	"encoding/base64"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const binaryTag = "!!binary"

// MarshalText implements encoding.TextMarshaler. JSON encodes the value as a
// plain string, both as a value and as an object key.
func (s SharedString) MarshalText() ([]byte, error) {
	return []byte(s.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It fails with ErrInvalidEncoding when text is not valid UTF-8.
func (s *SharedString) UnmarshalText(text []byte) error {
	v, err := FromBytes(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler and emits a plain string scalar.
func (s SharedString) MarshalYAML() (any, error) {
	return s.s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. String scalars are taken
// verbatim; !!binary scalars are decoded and must hold UTF-8 text.
func (s *SharedString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == binaryTag {
		raw, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(node.Value), ""))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to decode binary scalar"), "line", node.Line)
		}
		v, err := FromBytes(raw)
		if err != nil {
			return zerr.With(err, "line", node.Line)
		}
		*s = v
		return nil
	}

	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	*s = New(text)
	return nil
}
