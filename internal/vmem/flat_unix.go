//go:build unix

// File: internal/vmem/flat_unix.go
// Author: momentics <momentics@gmail.com>

package vmem

import "golang.org/x/sys/unix"

func allocFlat(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func freeFlat(mem []byte) error {
	return unix.Munmap(mem)
}
