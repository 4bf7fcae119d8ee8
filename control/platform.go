// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Host memory capabilities as debug probes.

package control

import (
	"runtime"

	"github.com/momentics/vring/internal/vmem"
)

// RegisterPlatformProbes publishes page size, mirroring support and CPU count.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.os", func() any {
		return runtime.GOOS + "/" + runtime.GOARCH
	})
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.page_size", func() any {
		ps, err := vmem.PageSize()
		if err != nil {
			return err.Error()
		}
		return ps
	})
	dp.RegisterProbe("platform.mirrored", func() any {
		return vmem.Mirrored()
	})
}
