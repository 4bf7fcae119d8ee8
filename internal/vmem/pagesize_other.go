//go:build !unix

// File: internal/vmem/pagesize_other.go
// Author: momentics <momentics@gmail.com>

package vmem

import "os"

func queryPageSize() int {
	return os.Getpagesize()
}
