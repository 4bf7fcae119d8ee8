// File: ring/layout.go
// Author: momentics <momentics@gmail.com>
//
// Element validation and region sizing.

package ring

import (
	"fmt"
	"math"
	"reflect"

	"github.com/momentics/vring/api"
	"github.com/momentics/vring/internal/vmem"
)

// elementSize returns the byte size of T after checking that T is
// fixed-size and carries no pointers.
func elementSize[T any]() (int, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Size() == 0 {
		return 0, api.NewConfigError(fmt.Errorf("%w: %s has zero size", api.ErrElementType, t))
	}
	if !pointerFree(t) {
		return 0, api.NewConfigError(fmt.Errorf("%w: %s contains pointers", api.ErrElementType, t))
	}
	return int(t.Size()), nil
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// regionSize returns the smallest multiple of both page and elemSize that
// holds requested elements. Keeping the region a whole number of elements
// keeps the mirror element-aligned.
func regionSize(requested uint64, elemSize, page int) (int, error) {
	unit := uint64(lcm(page, elemSize))
	limit := uint64(math.MaxInt / 2)
	if requested > limit/uint64(elemSize) {
		return 0, api.NewConfigError(fmt.Errorf("%w: %d elements of %d bytes", api.ErrCapacityOverflow, requested, elemSize))
	}
	need := requested * uint64(elemSize)
	size := (need + unit - 1) / unit * unit
	if size > limit {
		return 0, api.NewConfigError(fmt.Errorf("%w: region of %d bytes", api.ErrCapacityOverflow, size))
	}
	return int(size), nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// Layout reports the capacity and region size NewRingBuffer picks for
// requested elements of elemSize bytes on this host.
func Layout(requested uint64, elemSize int) (capacity, regionBytes int, err error) {
	if requested == 0 {
		return 0, 0, api.NewConfigError(api.ErrZeroCapacity)
	}
	if elemSize <= 0 {
		return 0, 0, api.NewConfigError(fmt.Errorf("%w: size %d", api.ErrElementType, elemSize))
	}
	page, err := vmem.PageSize()
	if err != nil {
		return 0, 0, err
	}
	size, err := regionSize(requested, elemSize, page)
	if err != nil {
		return 0, 0, err
	}
	return size / elemSize, size, nil
}
