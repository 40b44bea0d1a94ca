package ports

import (
	"io"

	"go.trai.ch/rcstring/internal/core/domain"
)

// DocumentCodec defines the interface for reading and writing document trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type DocumentCodec interface {
	// Decode reads one document in the given format.
	Decode(r io.Reader, format domain.Format) (domain.Value, error)

	// Encode writes v in the given format.
	Encode(w io.Writer, format domain.Format, v domain.Value) error
}
