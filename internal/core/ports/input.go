package ports

import (
	"io"

	"go.trai.ch/rcstring"
)

// StdinPath selects standard input wherever a path is expected.
const StdinPath = "-"

// InputReader defines the interface for reading command input.
//
//go:generate go run go.uber.org/mock/mockgen -source=input.go -destination=mocks/mock_input.go -package=mocks
type InputReader interface {
	// Open returns the content at path, or standard input for StdinPath or "".
	Open(path string) (io.ReadCloser, error)

	// ReadIdentifiers returns one SharedString per non-blank line at path,
	// with surrounding whitespace trimmed.
	ReadIdentifiers(path string) ([]rcstring.SharedString, error)
}
