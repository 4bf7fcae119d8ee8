// File: internal/vmem/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Virtual-memory capability layer for vring.
//
// A mirrored region is one physical backing object mapped twice, back to
// back, inside a single address-space reservation, so byte i and byte
// i+size always alias. Platforms without fixed shared mappings report
// themselves unsupported and callers fall back to a flat region.
//
// All implementations are build-tag-partitioned; see platform_linux.go,
// flat_unix.go, flat_windows.go.
package vmem
