// File: internal/vmem/flat.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Flat, non-mirrored region for platforms without fixed shared mappings.
// Callers copy in two segments across the wrap point.

package vmem

import (
	"fmt"

	"github.com/momentics/vring/api"
)

// Flat is an ordinary read/write region of fixed size.
type Flat struct {
	mem []byte
}

// AllocFlat allocates size bytes of region memory.
func AllocFlat(size int) (*Flat, error) {
	if size <= 0 {
		return nil, api.NewConfigError(fmt.Errorf("region size %d must be positive", size))
	}
	mem, err := allocFlat(size)
	if err != nil {
		return nil, api.NewResourceError(StepAllocFlat, err).WithContext("bytes", size)
	}
	return &Flat{mem: mem}, nil
}

// Bytes returns the region, or nil once released.
func (f *Flat) Bytes() []byte { return f.mem }

// Size returns the region size in bytes.
func (f *Flat) Size() int { return len(f.mem) }

// Release frees the region. It is safe to call more than once.
func (f *Flat) Release() error {
	if f.mem == nil {
		return nil
	}
	mem := f.mem
	f.mem = nil
	if err := freeFlat(mem); err != nil {
		return api.NewResourceError(StepFreeFlat, err)
	}
	return nil
}
