// Package rcstring provides SharedString, an immutable text value that is
// cheap to duplicate.
//
// A SharedString is a handle to an immutable buffer. Cloning a handle bumps an
// atomic live-handle count instead of copying bytes, so large numbers of
// repeated identifiers (map keys across a big in-memory dataset, for example)
// cost one buffer each. Every observable behaviour is that of an owned string:
// equality, ordering and hashing depend on content only, formatting prints the
// bare text, and serialization produces a plain text scalar.
//
// Two handles built independently from equal text are equal but never share a
// buffer; there is no interning.
//
// The zero value is the empty text and is ready to use.
package rcstring
