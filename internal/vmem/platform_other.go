//go:build !linux

// File: internal/vmem/platform_other.go
// Author: momentics <momentics@gmail.com>
//
// Platforms without anonymous shared memory plus fixed mappings.

package vmem

// Native returns nil: mirrored regions are not available on this platform.
func Native() Platform {
	return nil
}
