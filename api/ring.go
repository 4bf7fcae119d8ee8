// Package api
// Author: momentics@gmail.com
//
// Linear-view ring buffer contract.

package api

// Ring is the contract of a fixed-capacity, overwrite-on-full ring buffer
// of fixed-layout elements. Implementations are single-owner and perform no
// internal synchronization.
type Ring[T any] interface {
	// Write appends data, discarding the oldest unread elements when full.
	Write(data []T)
	// Read copies up to len(out) of the oldest elements into out.
	Read(out []T) int
	// Peek returns a view of up to limit unread elements without consuming them.
	Peek(limit int) []T
	// Discard drops up to n unread elements.
	Discard(n int) int
	// Len returns the number of unread elements.
	Len() int
	// Cap returns the element capacity.
	Cap() int
	// Empty reports whether there is nothing to read.
	Empty() bool
	// Clear resets both cursors.
	Clear()
	// Close releases the backing memory.
	Close() error
}
