// File: internal/cli/info.go
// Author: momentics <momentics@gmail.com>

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/momentics/vring/control"
	"github.com/momentics/vring/ring"
)

func newInfoCmd(a *app) *cobra.Command {
	var elemSize int
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show host page size, mirroring support and buffer layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, region, err := ring.Layout(a.cfg.Ring.Capacity, elemSize)
			if err != nil {
				return err
			}
			dp := control.NewDebugProbes()
			control.RegisterPlatformProbes(dp)
			state := dp.DumpState()

			mirrored, _ := state["platform.mirrored"].(bool)
			backend := "flat"
			if mirrored {
				backend = "mirrored"
			}
			virtual := region
			if mirrored {
				virtual = 2 * region
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "platform\t%v\n", state["platform.os"])
			fmt.Fprintf(w, "cpus\t%v\n", state["platform.cpus"])
			if ps, ok := state["platform.page_size"].(int); ok {
				fmt.Fprintf(w, "page size\t%s (%d bytes)\n", humanize.IBytes(uint64(ps)), ps)
			} else {
				fmt.Fprintf(w, "page size\tunavailable: %v\n", state["platform.page_size"])
			}
			fmt.Fprintf(w, "mirrored mapping\t%t\n", mirrored)
			fmt.Fprintf(w, "auto backend\t%s\n", backend)
			fmt.Fprintf(w, "requested\t%s elements x %d bytes\n", humanize.Comma(int64(a.cfg.Ring.Capacity)), elemSize)
			fmt.Fprintf(w, "capacity\t%s elements\n", humanize.Comma(int64(capacity)))
			fmt.Fprintf(w, "region\t%s\n", humanize.IBytes(uint64(region)))
			fmt.Fprintf(w, "address space\t%s\n", humanize.IBytes(uint64(virtual)))
			return w.Flush()
		},
	}
	cmd.Flags().Uint64("capacity", control.DefaultConfig().Ring.Capacity, "requested element capacity")
	cmd.Flags().IntVar(&elemSize, "element-size", 1, "element size in bytes")
	return cmd
}
