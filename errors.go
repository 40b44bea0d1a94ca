package rcstring

import "go.trai.ch/zerr"

// ErrInvalidEncoding is returned when byte input does not decode as UTF-8 text.
var ErrInvalidEncoding = zerr.New("invalid text encoding")
