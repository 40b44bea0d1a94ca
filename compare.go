package rcstring

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether s and other hold the same text.
// It is equivalent to s == other.
func (s SharedString) Equal(other SharedString) bool {
	return s.s == other.s
}

// EqualString reports whether s holds exactly text.
func (s SharedString) EqualString(text string) bool {
	return s.s == text
}

// Compare orders s and other by the bytes of their text.
func (s SharedString) Compare(other SharedString) int {
	return strings.Compare(s.s, other.s)
}

// Less reports whether s sorts before other.
func (s SharedString) Less(other SharedString) bool {
	return s.s < other.s
}

// Hash returns the xxhash64 of the text. Equal text hashes equally no matter
// which buffer holds it.
func (s SharedString) Hash() uint64 {
	return xxhash.Sum64String(s.s)
}

// Compare is the byte-lexicographic order, in the shape slices.SortFunc wants.
func Compare(a, b SharedString) int {
	return strings.Compare(a.s, b.s)
}

// ReverseCompare is Compare with its operands swapped.
func ReverseCompare(a, b SharedString) int {
	return Compare(b, a)
}

// Sort sorts values in ascending byte order.
func Sort(values []SharedString) {
	slices.SortFunc(values, Compare)
}

// SortDescending sorts values in descending byte order.
func SortDescending(values []SharedString) {
	slices.SortFunc(values, ReverseCompare)
}
