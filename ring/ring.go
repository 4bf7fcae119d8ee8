// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer keeps the most recent Cap() elements written to it. head and
// tail are monotonic element counters; the slot of logical element i is
// i % capacity.

package ring

import (
	"errors"
	"fmt"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/cpu"

	"github.com/momentics/vring/api"
	"github.com/momentics/vring/internal/vmem"
)

// Ensure compile-time interface compliance.
var _ api.Ring[int] = (*RingBuffer[int])(nil)

// region is the memory a RingBuffer views: a vmem.Mirror or a vmem.Flat.
type region interface {
	Bytes() []byte
	Release() error
}

// RingBuffer is an overwrite-on-full circular buffer over a mirrored region.
// It is not safe for concurrent use.
type RingBuffer[T any] struct {
	// buf spans 2*capacity elements on the mirrored backend, capacity on flat.
	buf         []T
	store       region // nil once released
	capacity    uint64
	elemSize    int
	regionBytes int
	backend     Backend
	log         *zap.Logger

	head uint64
	_    cpu.CacheLinePad
	tail uint64
	_    cpu.CacheLinePad

	written     uint64
	read        uint64
	overwritten uint64
}

// NewRingBuffer maps a buffer holding at least capacity elements. The
// effective capacity is rounded up so the region fills whole pages.
func NewRingBuffer[T any](capacity uint64, opts ...Option) (*RingBuffer[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.Named("vring")

	if capacity == 0 {
		return nil, api.NewConfigError(api.ErrZeroCapacity)
	}
	elemSize, err := elementSize[T]()
	if err != nil {
		return nil, err
	}
	pageSize := vmem.PageSize
	if o.platform != nil {
		pageSize = o.platform.PageSize
	}
	page, err := pageSize()
	if err != nil {
		return nil, err
	}
	size, err := regionSize(capacity, elemSize, page)
	if err != nil {
		return nil, err
	}

	store, backend, err := acquire(o, size, log)
	if err != nil {
		return nil, err
	}
	mem := store.Bytes()
	r := &RingBuffer[T]{
		buf:         unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), len(mem)/elemSize),
		store:       store,
		capacity:    uint64(size / elemSize),
		elemSize:    elemSize,
		regionBytes: size,
		backend:     backend,
		log:         log,
	}
	log.Debug("ring buffer ready",
		zap.Stringer("backend", backend),
		zap.Uint64("requested", capacity),
		zap.Uint64("capacity", r.capacity),
		zap.Int("region_bytes", size))
	return r, nil
}

func acquire(o options, size int, log *zap.Logger) (region, Backend, error) {
	switch o.backend {
	case BackendFlat:
		return allocFlat(size)
	case BackendAuto, BackendMirrored:
		m, err := vmem.MapMirror(o.platform, o.name, size, log)
		if err == nil {
			return m, BackendMirrored, nil
		}
		if o.backend == BackendAuto && errors.Is(err, api.ErrNotSupported) {
			log.Warn("mirrored mapping unavailable, using flat region", zap.Int("bytes", size))
			return allocFlat(size)
		}
		return nil, 0, err
	default:
		return nil, 0, api.NewConfigError(fmt.Errorf("%w: %s", api.ErrUnknownBackend, o.backend))
	}
}

func allocFlat(size int) (region, Backend, error) {
	f, err := vmem.AllocFlat(size)
	if err != nil {
		return nil, 0, err
	}
	return f, BackendFlat, nil
}

// Write appends data. When the unread elements would exceed Cap(), the
// oldest are dropped. A write longer than Cap() keeps only its last Cap()
// elements.
func (r *RingBuffer[T]) Write(data []T) {
	r.mustLive()
	n := uint64(len(data))
	if n == 0 {
		return
	}
	r.written += n
	if n > r.capacity {
		skip := n - r.capacity
		r.head += skip
		data = data[skip:]
		n = r.capacity
	}
	off := r.head % r.capacity
	if c := copy(r.buf[off:], data); c < len(data) {
		copy(r.buf, data[c:])
	}
	r.head += n
	if r.head-r.tail > r.capacity {
		tail := r.head - r.capacity
		r.overwritten += tail - r.tail
		r.tail = tail
	}
}

// Read moves up to len(out) of the oldest unread elements into out and
// returns how many were copied.
func (r *RingBuffer[T]) Read(out []T) int {
	r.mustLive()
	n := min(r.head-r.tail, uint64(len(out)))
	if n == 0 {
		return 0
	}
	off := r.tail % r.capacity
	if c := copy(out[:n], r.buf[off:]); uint64(c) < n {
		copy(out[c:n], r.buf)
	}
	r.tail += n
	r.read += n
	return int(n)
}

// Peek returns up to limit unread elements, oldest first, without consuming
// them; a negative limit asks for all of them. On the mirrored backend the
// view always covers the requested range; on the flat backend it stops at
// the end of the region. The view aliases the buffer and is invalidated by
// the next Write, Clear, Close or Move.
func (r *RingBuffer[T]) Peek(limit int) []T {
	r.mustLive()
	n := r.head - r.tail
	if limit >= 0 && uint64(limit) < n {
		n = uint64(limit)
	}
	off := r.tail % r.capacity
	end := min(off+n, uint64(len(r.buf)))
	return r.buf[off:end:end]
}

// Discard drops up to n of the oldest unread elements and returns how many
// were dropped.
func (r *RingBuffer[T]) Discard(n int) int {
	r.mustLive()
	if n <= 0 {
		return 0
	}
	k := min(uint64(n), r.head-r.tail)
	r.tail += k
	r.read += k
	return int(k)
}

// Len returns the number of unread elements.
func (r *RingBuffer[T]) Len() int {
	r.mustLive()
	return int(r.head - r.tail)
}

// Cap returns the element capacity, which may exceed the requested one.
func (r *RingBuffer[T]) Cap() int {
	r.mustLive()
	return int(r.capacity)
}

// Empty reports whether there is nothing to read.
func (r *RingBuffer[T]) Empty() bool {
	r.mustLive()
	return r.head == r.tail
}

// Clear forgets all unread elements. Memory is not zeroed.
func (r *RingBuffer[T]) Clear() {
	r.mustLive()
	r.head = 0
	r.tail = 0
}

// Backend reports the layout in use.
func (r *RingBuffer[T]) Backend() Backend {
	r.mustLive()
	return r.backend
}

// RegionBytes returns the size of the physical backing region.
func (r *RingBuffer[T]) RegionBytes() int {
	r.mustLive()
	return r.regionBytes
}

// Close releases the backing region. Further calls are no-ops. A release
// failure is logged and returned; the buffer is released regardless.
func (r *RingBuffer[T]) Close() error {
	if r.store == nil {
		return nil
	}
	store := r.store
	r.store = nil
	r.buf = nil
	if err := store.Release(); err != nil {
		r.log.Error("releasing ring buffer region failed", zap.Error(err))
		return err
	}
	return nil
}

// Move hands the region and all state to a new RingBuffer. The receiver is
// released and must not be used afterwards.
func (r *RingBuffer[T]) Move() *RingBuffer[T] {
	r.mustLive()
	moved := new(RingBuffer[T])
	*moved = *r
	r.store = nil
	r.buf = nil
	return moved
}

func (r *RingBuffer[T]) mustLive() {
	if r.store == nil {
		panic(api.ErrReleased)
	}
}
