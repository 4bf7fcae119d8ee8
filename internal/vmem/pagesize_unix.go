//go:build unix

// File: internal/vmem/pagesize_unix.go
// Author: momentics <momentics@gmail.com>

package vmem

import "golang.org/x/sys/unix"

func queryPageSize() int {
	return unix.Getpagesize()
}
