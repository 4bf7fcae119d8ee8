//go:build windows

// File: internal/vmem/flat_windows.go
// Author: momentics <momentics@gmail.com>
//
// VirtualAlloc-backed flat region.

package vmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func allocFlat(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func freeFlat(mem []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(mem))), 0, windows.MEM_RELEASE)
}
