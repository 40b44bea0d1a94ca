// Package codec reads and writes document trees as JSON and YAML.
package codec

import (
	"io"

	"go.trai.ch/rcstring/internal/core/domain"
	"go.trai.ch/zerr"
)

// Codec implements ports.DocumentCodec.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Decode reads one document in the given format.
func (c *Codec) Decode(r io.Reader, format domain.Format) (domain.Value, error) {
	switch format {
	case domain.FormatJSON:
		return decodeJSON(r)
	case domain.FormatYAML:
		return decodeYAML(r)
	default:
		return nil, unknownFormat(format)
	}
}

// Encode writes v in the given format.
func (c *Codec) Encode(w io.Writer, format domain.Format, v domain.Value) error {
	switch format {
	case domain.FormatJSON:
		return encodeJSON(w, v)
	case domain.FormatYAML:
		return encodeYAML(w, v)
	default:
		return unknownFormat(format)
	}
}

func unknownFormat(format domain.Format) error {
	return zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "no codec for format"), "format", format.String())
}

func unsupported(v domain.Value) error {
	return zerr.With(zerr.Wrap(domain.ErrUnsupportedValue, "cannot encode value"), "type", typeName(v))
}
