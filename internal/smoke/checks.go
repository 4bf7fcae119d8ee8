// File: internal/smoke/checks.go
// Author: momentics <momentics@gmail.com>

package smoke

import (
	"fmt"
	"slices"

	"github.com/momentics/vring/ring"
)

func open[T any](env Env, name string, fn func(rb *ring.RingBuffer[T]) error) error {
	rb, err := ring.NewRingBuffer[T](env.Capacity, env.Options...)
	if err != nil {
		return fmt.Errorf("construct: %w", err)
	}
	defer rb.Close()
	if err := fn(rb); err != nil {
		return err
	}
	if env.Metrics != nil {
		rb.ExportMetrics(env.Metrics, "smoke."+name)
	}
	return nil
}

func expect(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf(format, args...)
}

func fill[T any](n int, v T) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func checkSimpleWriteRead(env Env) error {
	return open(env, "simple_write_read", func(rb *ring.RingBuffer[int32]) error {
		input := []int32{1, 2, 3, 4, 5}
		rb.Write(input)
		if err := expect(rb.Len() == 5, "size %d after writing 5", rb.Len()); err != nil {
			return err
		}
		out := make([]int32, 5)
		n := rb.Read(out)
		if err := expect(n == 5 && slices.Equal(out, input), "read %d elements %v, want %v", n, out, input); err != nil {
			return err
		}
		return expect(rb.Empty(), "buffer not empty after full read")
	})
}

func checkWrapAround(env Env) error {
	return open(env, "wrap_around", func(rb *ring.RingBuffer[byte]) error {
		capacity := rb.Cap()
		if capacity < 12 {
			return fmt.Errorf("capacity %d too small", capacity)
		}
		rb.Write(fill(capacity-10, byte('a')))
		overlap := []byte("1234567890XY")
		rb.Write(overlap)
		if err := expect(rb.Len() == capacity, "size %d, want %d", rb.Len(), capacity); err != nil {
			return err
		}
		out := make([]byte, capacity)
		rb.Read(out)
		if err := expect(out[capacity-13] == 'a', "filler lost before the wrap point"); err != nil {
			return err
		}
		return expect(slices.Equal(out[capacity-12:], overlap), "wrapped tail %q, want %q", out[capacity-12:], overlap)
	})
}

func checkOverwrite(env Env) error {
	return open(env, "overwrite", func(rb *ring.RingBuffer[int32]) error {
		capacity := rb.Cap()
		rb.Write(fill(capacity, int32(1)))
		rb.Write([]int32{9, 9, 9})
		if err := expect(rb.Len() == capacity, "size %d, want %d", rb.Len(), capacity); err != nil {
			return err
		}
		out := make([]int32, capacity)
		rb.Read(out)
		if err := expect(out[0] == 1 && out[capacity-4] == 1, "oldest survivors were not kept"); err != nil {
			return err
		}
		return expect(slices.Equal(out[capacity-3:], []int32{9, 9, 9}), "newest elements %v, want [9 9 9]", out[capacity-3:])
	})
}

func checkEmptyRead(env Env) error {
	return open(env, "empty_read", func(rb *ring.RingBuffer[float64]) error {
		out := make([]float64, 10)
		n := rb.Read(out)
		return expect(n == 0 && rb.Empty(), "fresh buffer read %d elements", n)
	})
}

func checkClear(env Env) error {
	return open(env, "clear", func(rb *ring.RingBuffer[int32]) error {
		capacity := rb.Cap()
		rb.Write([]int32{1, 2, 3})
		rb.Clear()
		if err := expect(rb.Len() == 0 && rb.Empty(), "size %d after clear", rb.Len()); err != nil {
			return err
		}
		if err := expect(rb.Cap() == capacity, "capacity changed by clear"); err != nil {
			return err
		}
		rb.Write([]int32{4, 5})
		out := make([]int32, 2)
		n := rb.Read(out)
		return expect(n == 2 && out[0] == 4 && out[1] == 5, "round trip after clear read %v", out[:n])
	})
}

func checkLargeInputOverwrite(env Env) error {
	return open(env, "large_input_overwrite", func(rb *ring.RingBuffer[int32]) error {
		capacity := rb.Cap()
		massive := fill(2*capacity, int32(7))
		massive[len(massive)-1] = 8
		rb.Write(massive)
		if err := expect(rb.Len() == capacity, "size %d, want %d", rb.Len(), capacity); err != nil {
			return err
		}
		out := make([]int32, capacity)
		rb.Read(out)
		return expect(out[0] == 7 && out[capacity-1] == 8, "kept %d..%d, want 7..8", out[0], out[capacity-1])
	})
}

func checkPartialReads(env Env) error {
	return open(env, "partial_reads", func(rb *ring.RingBuffer[int32]) error {
		rb.Write([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
		out1 := make([]int32, 3)
		out2 := make([]int32, 7)
		if n := rb.Read(out1); n != 3 || out1[0] != 1 {
			return fmt.Errorf("first read %d elements %v", n, out1)
		}
		if err := expect(rb.Len() == 7, "size %d after first read", rb.Len()); err != nil {
			return err
		}
		if n := rb.Read(out2); n != 7 || out2[0] != 4 {
			return fmt.Errorf("second read %d elements %v", n, out2)
		}
		return expect(rb.Empty(), "buffer not empty after partial reads")
	})
}

func checkFloatType(env Env) error {
	return open(env, "float_type", func(rb *ring.RingBuffer[float32]) error {
		in := []float32{1.1, 2.2, 3.3}
		rb.Write(in)
		out := make([]float32, 3)
		rb.Read(out)
		return expect(slices.Equal(out, in), "read %v, want %v", out, in)
	})
}
