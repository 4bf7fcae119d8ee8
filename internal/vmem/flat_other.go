//go:build !unix && !windows

// File: internal/vmem/flat_other.go
// Author: momentics <momentics@gmail.com>

package vmem

func allocFlat(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func freeFlat([]byte) error { return nil }
