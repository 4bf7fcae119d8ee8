//go:build linux

// File: internal/vmem/platform_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux memfd_create(2) + mmap(2) MAP_FIXED implementation of Platform.

package vmem

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// linuxPlatform builds mirrored regions from anonymous memfd objects.
type linuxPlatform struct{}

// Native returns the host Platform, or nil when mirroring is unavailable.
func Native() Platform {
	return linuxPlatform{}
}

func (linuxPlatform) PageSize() (int, error) {
	return PageSize()
}

func (linuxPlatform) CreateSharedRegion(name string) (Handle, error) {
	fd, err := unix.MemfdCreate(name, unix.MFD_CLOEXEC)
	if err != nil {
		return 0, err
	}
	return Handle(fd), nil
}

func (linuxPlatform) ResizeSharedRegion(h Handle, size int) error {
	return unix.Ftruncate(int(h), int64(size))
}

func (linuxPlatform) ReserveAddressSpace(size int) (unsafe.Pointer, error) {
	return unix.MmapPtr(-1, 0, nil, uintptr(size),
		unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS|unix.MAP_NORESERVE)
}

func (linuxPlatform) MapFixed(addr unsafe.Pointer, size int, h Handle, offset int64) error {
	got, err := unix.MmapPtr(int(h), offset, addr, uintptr(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_FIXED)
	if err != nil {
		return err
	}
	if got != addr {
		// MAP_FIXED never relocates; treat it as a kernel contract breach.
		_ = unix.MunmapPtr(got, uintptr(size))
		return unix.EFAULT
	}
	return nil
}

func (linuxPlatform) ReleaseMapping(addr unsafe.Pointer, size int) error {
	return unix.MunmapPtr(addr, uintptr(size))
}

func (linuxPlatform) CloseHandle(h Handle) error {
	return unix.Close(int(h))
}
