// File: ring/stats.go
// Author: momentics <momentics@gmail.com>
//
// Accounting export for metrics registries and debug probes.

package ring

import "github.com/momentics/vring/api"

// Stats returns cumulative counters. Unlike the other accessors it is valid
// on a released buffer, which reports Backend "released".
func (r *RingBuffer[T]) Stats() api.RingStats {
	s := api.RingStats{
		Backend:     "released",
		ElemSize:    r.elemSize,
		RegionBytes: r.regionBytes,
		Capacity:    int(r.capacity),
		Written:     r.written,
		Read:        r.read,
		Overwritten: r.overwritten,
	}
	if r.store != nil {
		s.Backend = r.backend.String()
		s.Len = int(r.head - r.tail)
	}
	return s
}

// ExportMetrics publishes the current Stats under prefix.
func (r *RingBuffer[T]) ExportMetrics(m api.Metrics, prefix string) {
	s := r.Stats()
	m.Set(prefix+".backend", s.Backend)
	m.Set(prefix+".capacity", s.Capacity)
	m.Set(prefix+".region_bytes", s.RegionBytes)
	m.Set(prefix+".len", s.Len)
	m.Set(prefix+".written", s.Written)
	m.Set(prefix+".read", s.Read)
	m.Set(prefix+".overwritten", s.Overwritten)
}

// RegisterProbe exposes Stats as a named debug probe.
func (r *RingBuffer[T]) RegisterProbe(d api.Debug, name string) {
	d.RegisterProbe(name, func() any {
		return r.Stats()
	})
}
