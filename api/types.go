// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations, DTOs, and constants.

package api

// RingStats is a point-in-time accounting snapshot of a ring buffer.
type RingStats struct {
	Backend     string
	ElemSize    int
	RegionBytes int
	Capacity    int
	Len         int
	Written     uint64 // elements accepted by Write
	Read        uint64 // elements consumed by Read or Discard
	Overwritten uint64 // unread elements discarded by overwrite-on-full
}

// Metrics is the sink ring buffers export their counters into.
type Metrics interface {
	Set(key string, value any)
}

// Debug collects named state probes, such as per-buffer Stats, for
// on-demand diagnostics.
type Debug interface {
	// DumpState evaluates every probe and returns the results by name.
	DumpState() map[string]any
	// RegisterProbe adds or replaces the probe stored under name.
	RegisterProbe(name string, fn func() any)
}
