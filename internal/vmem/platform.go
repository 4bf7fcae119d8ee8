// File: internal/vmem/platform.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// OS capability contract used to build mirrored regions.

package vmem

import "unsafe"

// Handle identifies a shared memory object (a file descriptor on unix).
type Handle uintptr

// Steps of region acquisition and release, reported in resource errors.
const (
	StepPageSize      = "page_size"
	StepCreate        = "create_shared_region"
	StepResize        = "resize_shared_region"
	StepReserve       = "reserve_address_space"
	StepMapFirstHalf  = "map_first_half"
	StepMapSecondHalf = "map_second_half"
	StepCloseHandle   = "close_handle"
	StepRelease       = "release_mapping"
	StepAllocFlat     = "alloc_flat"
	StepFreeFlat      = "free_flat"
)

// Platform is the host capability set a mirrored region is built from.
type Platform interface {
	// PageSize returns the host mapping granularity.
	PageSize() (int, error)
	// CreateSharedRegion creates an anonymous, resizable shared memory object.
	CreateSharedRegion(name string) (Handle, error)
	// ResizeSharedRegion sets the object size in bytes.
	ResizeSharedRegion(h Handle, size int) error
	// ReserveAddressSpace reserves size bytes of address space with no access.
	ReserveAddressSpace(size int) (unsafe.Pointer, error)
	// MapFixed maps size bytes of h at offset exactly at addr, read/write, shared.
	MapFixed(addr unsafe.Pointer, size int, h Handle, offset int64) error
	// ReleaseMapping unmaps [addr, addr+size).
	ReleaseMapping(addr unsafe.Pointer, size int) error
	// CloseHandle releases the shared memory object handle.
	CloseHandle(h Handle) error
}

// Mirrored reports whether the host can build mirrored regions.
func Mirrored() bool {
	return Native() != nil
}
