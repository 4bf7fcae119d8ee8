// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity ring buffer with a linear memory view.
//
// The backing region is mapped twice, back to back, into one virtual
// reservation, so any run of up to Cap() elements starting anywhere in the
// region is contiguous. Writes and reads are single copies and Peek hands
// out the unread elements as one slice even across the wrap point.
//
// When the host cannot create fixed shared mappings, the buffer falls back
// to a flat region and copies in two segments across the wrap point.
//
// Writes never fail and never block: once the buffer is full the oldest
// unread elements are discarded. Elements must be fixed-size and free of
// pointers; the buffer copies raw memory and never interprets it.
//
// A RingBuffer is single-owner and performs no synchronization. Close
// releases the mappings; Move transfers them to a new owner.
//
//	rb, err := ring.NewRingBuffer[int32](4096)
//	if err != nil {
//		return err
//	}
//	defer rb.Close()
//	rb.Write([]int32{1, 2, 3})
//	out := make([]int32, 3)
//	n := rb.Read(out)
package ring
