// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, debug introspection and configuration for vring.
//
// Provides concurrent-safe state handling primitives including:
//   - Metrics registry ring buffers export their counters into
//   - Debug probe registration and state dump
//   - Platform probes (page size, mirrored mapping support)
//   - File/env configuration loading for the vringcheck tool
package control
