// File: internal/vmem/mirror.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mirrored region acquisition. Construction is all-or-nothing: a failing
// step releases everything acquired before it, newest first.

package vmem

import (
	"fmt"
	"unsafe"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/momentics/vring/api"
)

// Mirror is a size-byte shared object mapped at base and at base+size.
// Only the two mappings are held; the object handle is closed once both
// mappings exist.
type Mirror struct {
	p    Platform
	base unsafe.Pointer
	size int
	log  *zap.Logger
}

// MapMirror builds a mirrored region of size bytes on p. size must be a
// positive multiple of the platform page size.
func MapMirror(p Platform, name string, size int, log *zap.Logger) (*Mirror, error) {
	if p == nil {
		return nil, api.ErrNotSupported
	}
	if log == nil {
		log = zap.NewNop()
	}
	ps, err := p.PageSize()
	if err != nil {
		return nil, api.NewResourceError(StepPageSize, err)
	}
	if size <= 0 || size%ps != 0 {
		return nil, api.NewConfigError(fmt.Errorf("region size %d is not a positive multiple of page size %d", size, ps))
	}

	var undo []func() error
	fail := func(step string, cause error) error {
		rerr := api.NewResourceError(step, cause).WithContext("bytes", size)
		var rollback *multierror.Error
		for i := len(undo) - 1; i >= 0; i-- {
			if err := undo[i](); err != nil {
				rollback = multierror.Append(rollback, err)
			}
		}
		if rollback != nil {
			rerr.WithContext("rollback", rollback.ErrorOrNil())
		}
		log.Debug("mirrored region acquisition failed", zap.String("step", step), zap.Error(cause))
		return rerr
	}

	h, err := p.CreateSharedRegion(name)
	if err != nil {
		return nil, fail(StepCreate, err)
	}
	undo = append(undo, func() error {
		if err := p.CloseHandle(h); err != nil {
			return fmt.Errorf("%s: %w", StepCloseHandle, err)
		}
		return nil
	})

	if err := p.ResizeSharedRegion(h, size); err != nil {
		return nil, fail(StepResize, err)
	}

	base, err := p.ReserveAddressSpace(2 * size)
	if err != nil {
		return nil, fail(StepReserve, err)
	}
	undo = append(undo, func() error {
		if err := p.ReleaseMapping(base, 2*size); err != nil {
			return fmt.Errorf("%s: %w", StepRelease, err)
		}
		return nil
	})

	if err := p.MapFixed(base, size, h, 0); err != nil {
		return nil, fail(StepMapFirstHalf, err)
	}
	if err := p.MapFixed(unsafe.Add(base, size), size, h, 0); err != nil {
		return nil, fail(StepMapSecondHalf, err)
	}

	// The mappings keep the object alive from here on.
	if err := p.CloseHandle(h); err != nil {
		log.Warn("closing shared region handle failed", zap.Error(err))
	}

	log.Debug("mirrored region mapped", zap.Int("bytes", size), zap.Uintptr("base", uintptr(base)))
	return &Mirror{p: p, base: base, size: size, log: log}, nil
}

// Base returns the start of the reservation, or nil once released.
func (m *Mirror) Base() unsafe.Pointer { return m.base }

// Size returns the size of one half in bytes.
func (m *Mirror) Size() int { return m.size }

// Bytes returns both halves as one 2*Size() byte slice.
func (m *Mirror) Bytes() []byte {
	if m.base == nil {
		return nil
	}
	return unsafe.Slice((*byte)(m.base), 2*m.size)
}

// Release unmaps both halves. It is safe to call more than once.
func (m *Mirror) Release() error {
	if m.base == nil {
		return nil
	}
	base := m.base
	m.base = nil
	if err := m.p.ReleaseMapping(base, 2*m.size); err != nil {
		return api.NewResourceError(StepRelease, err).WithContext("bytes", m.size)
	}
	m.log.Debug("mirrored region released", zap.Int("bytes", m.size))
	return nil
}
