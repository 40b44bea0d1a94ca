package rcstring

import (
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"

	"go.trai.ch/zerr"
)

// SharedString is an immutable text value backed by a reference-counted buffer.
//
// Copy a handle with Clone to have the copy counted; plain assignment copies
// the handle without touching the count. Memory safety never depends on the
// count: a buffer stays valid for as long as any handle refers to it.
type SharedString struct {
	s string
}

// New returns a handle to a fresh buffer holding a copy of text, with a
// live-handle count of one. Invalid UTF-8 sequences are replaced with U+FFFD.
func New(text string) SharedString {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return newOwned(ownedCopy(text))
}

// FromBytes returns a handle to a fresh buffer holding a copy of b.
// It fails with ErrInvalidEncoding when b is not valid UTF-8.
func FromBytes(b []byte) (SharedString, error) {
	if off := invalidOffset(b); off >= 0 {
		return SharedString{}, zerr.With(
			zerr.Wrap(ErrInvalidEncoding, "shared string content is not UTF-8"),
			"offset", off,
		)
	}
	return newOwned(ownedCopy(unsafe.String(unsafe.SliceData(b), len(b)))), nil
}

func newOwned(text string) SharedString {
	track(text)
	return SharedString{s: text}
}

// invalidOffset reports the offset of the first byte that is not part of a
// valid UTF-8 sequence, or -1.
func invalidOffset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Clone returns a new handle to the same buffer and increments its count.
// If the buffer is no longer tracked, the clone gets a fresh buffer.
func (s SharedString) Clone() SharedString {
	c := lookup(s.s)
	if c == nil {
		return New(s.s)
	}
	c.refs.Inc()
	return s
}

// Release gives up this handle. The count of its buffer is decremented and
// the buffer is untracked once the count reaches zero. s becomes the zero
// value, so releasing twice is harmless.
func (s *SharedString) Release() {
	if c := lookup(s.s); c != nil {
		if c.refs.Dec() <= 0 {
			untrack(s.s, c)
		}
	}
	*s = SharedString{}
}

// LiveHandleCount returns the number of counted handles that share s's buffer,
// including s. The zero value and untracked copies report zero.
//
// The count is a diagnostic. Other goroutines may change it at any moment, so
// it must not drive decisions such as "am I the last owner".
func (s SharedString) LiveHandleCount() int64 {
	c := lookup(s.s)
	if c == nil {
		return 0
	}
	return c.refs.Load()
}

// String returns the text.
func (s SharedString) String() string {
	return s.s
}

// GoString implements fmt.GoStringer.
func (s SharedString) GoString() string {
	return "rcstring.New(" + strconv.Quote(s.s) + ")"
}

// Len returns the length of the text in bytes.
func (s SharedString) Len() int {
	return len(s.s)
}

// IsEmpty reports whether the text is empty.
func (s SharedString) IsEmpty() bool {
	return s.s == ""
}

// Concat returns the text followed by suffix as a new string.
// The handle and its buffer are left alone.
func (s SharedString) Concat(suffix string) string {
	return s.s + suffix
}

// Unshare returns a copy of the text that shares no storage with the buffer.
func (s SharedString) Unshare() string {
	return strings.Clone(s.s)
}
