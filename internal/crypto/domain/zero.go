package domain

// Zero overwrites key material with zeros. Callers own derived keys and scrub them after use.
func Zero(b []byte) {
	clear(b)
}

// ZeroAll scrubs several buffers at once.
func ZeroAll(bufs ...[]byte) {
	for _, b := range bufs {
		Zero(b)
	}
}
