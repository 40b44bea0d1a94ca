package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownFormat is returned when a document format name is not recognised.
	ErrUnknownFormat = zerr.New("unknown document format")

	// ErrInvalidSettings is returned when a configuration value is out of range.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrUnsupportedValue is returned when a decoded document holds a value
	// that has no place in a Document tree.
	ErrUnsupportedValue = zerr.New("unsupported document value")

	// ErrHandleLeak is returned when a stress run ends with a different
	// live-handle count than it started with.
	ErrHandleLeak = zerr.New("live handle count did not return to its initial value")
)
