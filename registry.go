package rcstring

import (
	"runtime"
	"sync"
	"unsafe"

	"go.uber.org/atomic"
)

// cell carries the live-handle count of one buffer.
type cell struct {
	refs atomic.Int64
}

// entry identifies a registration so a late cleanup can tell whether the
// slot it is about to clear still belongs to it.
type entry struct {
	key  uintptr
	cell *cell
}

// buffers maps a buffer's address to its cell. The key is a plain address, so
// an entry never keeps its buffer alive; a runtime cleanup drops the entry
// once the buffer is collected.
var buffers sync.Map // map[uintptr]*cell

// track registers a freshly allocated buffer with a count of one. text must
// own its allocation: a buffer shared with any other value would share its
// count too.
func track(text string) {
	ptr := unsafe.StringData(text)
	c := &cell{}
	c.refs.Store(1)
	key := uintptr(unsafe.Pointer(ptr))
	buffers.Store(key, c)
	runtime.AddCleanup(ptr, forget, entry{key: key, cell: c})
}

// forget runs after a tracked buffer has been collected. The address may
// already belong to a newer buffer, whose entry is left in place.
func forget(e entry) {
	buffers.CompareAndDelete(e.key, e.cell)
}

// lookup returns the cell of the buffer backing text, or nil if text has no
// buffer or the buffer is no longer tracked.
func lookup(text string) *cell {
	ptr := unsafe.StringData(text)
	if ptr == nil {
		return nil
	}
	v, ok := buffers.Load(uintptr(unsafe.Pointer(ptr)))
	if !ok {
		return nil
	}
	return v.(*cell)
}

// untrack drops the entry for text if it still belongs to c.
func untrack(text string, c *cell) {
	buffers.CompareAndDelete(uintptr(unsafe.Pointer(unsafe.StringData(text))), c)
}

// ownedCopy returns text in a fresh allocation that nothing else refers to.
// Empty text gets a one-byte allocation viewed with length zero, so it can be
// counted like any other buffer.
func ownedCopy(text string) string {
	buf := make([]byte, max(len(text), 1))
	n := copy(buf, text)
	return unsafe.String(&buf[0], n)
}
