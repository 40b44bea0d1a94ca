package rcstring

// TrackedBuffers returns the number of buffers the registry currently counts.
func TrackedBuffers() int {
	n := 0
	buffers.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
