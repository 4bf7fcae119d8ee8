// File: internal/cli/root.go
// Author: momentics <momentics@gmail.com>
//
// vringcheck command tree.

package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/momentics/vring/control"
	"github.com/momentics/vring/internal/logging"
)

// app carries state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *control.Config
	log     *zap.Logger
	out     io.Writer
}

// flagKeys binds command flags to configuration keys.
var flagKeys = map[string]string{
	"capacity":  "ring.capacity",
	"backend":   "ring.backend",
	"name":      "ring.name",
	"log-level": "logging.level",
}

// NewRootCmd builds the vringcheck command writing to out and logging to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: control.NewViper(), out: out}

	root := &cobra.Command{
		Use:   "vringcheck",
		Short: "Verify mirrored ring buffer support on this host",
		Long: `vringcheck exercises the vring ring buffer against the host's virtual
memory facilities and reports the layout it would choose.

Configuration is layered: built-in defaults, an optional config file,
VRING_* environment variables (e.g. VRING_RING_CAPACITY), then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bindFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := control.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			log, err := logging.New(errOut, cfg.Logging.Level)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newSmokeCmd(a), newInfoCmd(a))
	return root
}

func (a *app) bindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := a.v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}
