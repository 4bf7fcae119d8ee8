package vmem

import (
	"fmt"
	"syscall"
	"unsafe"
)

// fakePlatform backs reservations with Go memory and records every call,
// failing the step named in failAt.
type fakePlatform struct {
	page     int
	failAt   string
	failErr  error
	calls    []string
	reserved []byte
	handle   Handle
	mapped   []unsafe.Pointer
	released int
	closed   int
}

func newFakePlatform(page int) *fakePlatform {
	return &fakePlatform{page: page, handle: 7, failErr: syscall.ENOMEM}
}

func (f *fakePlatform) step(name string) error {
	f.calls = append(f.calls, name)
	if f.failAt == name {
		return f.failErr
	}
	return nil
}

func (f *fakePlatform) PageSize() (int, error) {
	if err := f.step(StepPageSize); err != nil {
		return 0, err
	}
	return f.page, nil
}

func (f *fakePlatform) CreateSharedRegion(name string) (Handle, error) {
	if err := f.step(StepCreate); err != nil {
		return 0, err
	}
	return f.handle, nil
}

func (f *fakePlatform) ResizeSharedRegion(h Handle, size int) error {
	if h != f.handle {
		return fmt.Errorf("unexpected handle %d", h)
	}
	return f.step(StepResize)
}

func (f *fakePlatform) ReserveAddressSpace(size int) (unsafe.Pointer, error) {
	if err := f.step(StepReserve); err != nil {
		return nil, err
	}
	f.reserved = make([]byte, size)
	return unsafe.Pointer(&f.reserved[0]), nil
}

func (f *fakePlatform) MapFixed(addr unsafe.Pointer, size int, h Handle, offset int64) error {
	name := StepMapFirstHalf
	if len(f.mapped) == 1 {
		name = StepMapSecondHalf
	}
	if err := f.step(name); err != nil {
		return err
	}
	f.mapped = append(f.mapped, addr)
	return nil
}

func (f *fakePlatform) ReleaseMapping(addr unsafe.Pointer, size int) error {
	if err := f.step(StepRelease); err != nil {
		return err
	}
	f.released++
	return nil
}

func (f *fakePlatform) CloseHandle(h Handle) error {
	if err := f.step(StepCloseHandle); err != nil {
		return err
	}
	f.closed++
	return nil
}
