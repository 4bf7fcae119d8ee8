// File: ring/options.go
// Package ring defines functional options for RingBuffer construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/momentics/vring/api"
	"github.com/momentics/vring/internal/vmem"
)

// Backend selects the memory layout behind a RingBuffer.
type Backend int

const (
	// BackendAuto uses a mirrored region when the host supports it and a
	// flat region otherwise.
	BackendAuto Backend = iota
	// BackendMirrored requires a mirrored region.
	BackendMirrored
	// BackendFlat uses an ordinary region with two-segment copies.
	BackendFlat
)

func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendMirrored:
		return "mirrored"
	case BackendFlat:
		return "flat"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// ParseBackend maps "auto", "mirrored" or "flat" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return BackendAuto, nil
	case "mirrored", "mirror":
		return BackendMirrored, nil
	case "flat":
		return BackendFlat, nil
	}
	return 0, api.NewConfigError(fmt.Errorf("%w: %q", api.ErrUnknownBackend, s))
}

// Option customizes RingBuffer construction.
type Option func(*options)

type options struct {
	backend  Backend
	log      *zap.Logger
	name     string
	platform vmem.Platform
}

func defaultOptions() options {
	return options{
		backend:  BackendAuto,
		log:      zap.NewNop(),
		name:     "vring",
		platform: vmem.Native(),
	}
}

// WithBackend overrides the default BackendAuto selection.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithLogger sets the logger used for region lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithName labels the shared memory object, visible in /proc/<pid>/maps on Linux.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// withPlatform swaps the host platform; nil means mirroring is unsupported.
func withPlatform(p vmem.Platform) Option {
	return func(o *options) {
		o.platform = p
	}
}
