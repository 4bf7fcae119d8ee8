// File: internal/cli/smoke.go
// Author: momentics <momentics@gmail.com>

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/momentics/vring/control"
	"github.com/momentics/vring/internal/smoke"
	"github.com/momentics/vring/ring"
)

func newSmokeCmd(a *app) *cobra.Command {
	var showMetrics bool
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run the ring buffer contract checks",
		Long: `Run every ring buffer contract check (round trip, wrap-around, overwrite,
empty read, clear, overlong write, partial reads, float elements) and print
PASS or FAIL for each. Exits non-zero when any check fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.RingOptions()
			if err != nil {
				return err
			}
			opts = append(opts, ring.WithLogger(a.log))

			reg := control.NewMetricsRegistry()
			env := smoke.Env{Capacity: a.cfg.Ring.Capacity, Options: opts, Metrics: reg}

			failed := 0
			results := smoke.Run(env, smoke.Checks(), func(r smoke.Result) {
				if r.Passed() {
					fmt.Fprintf(a.out, "PASS %s (%s)\n", r.Name, r.Duration)
					return
				}
				failed++
				fmt.Fprintf(a.out, "FAIL %s: %v\n", r.Name, r.Err)
				a.log.Error("smoke check failed", zap.String("check", r.Name), zap.Error(r.Err))
			})

			if showMetrics {
				for _, k := range reg.Keys() {
					v, _ := reg.Get(k)
					fmt.Fprintf(a.out, "%s = %v\n", k, v)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			fmt.Fprintf(a.out, "all %d checks passed\n", len(results))
			return nil
		},
	}
	cmd.Flags().Uint64("capacity", control.DefaultConfig().Ring.Capacity, "requested capacity of every checked buffer")
	cmd.Flags().String("backend", "auto", "buffer backend: auto, mirrored, flat")
	cmd.Flags().String("name", "vring", "shared memory object name")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print per-check buffer counters")
	return cmd
}
