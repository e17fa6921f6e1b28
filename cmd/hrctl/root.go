package main

import (
	"fmt"
	"io"

	"hr-assistant/config"
	"hr-assistant/pkg/log"

	"github.com/spf13/cobra"
)

// env is shared by every subcommand once the root pre-run has loaded it.
type env struct {
	configPath string
	cfg        *config.Config
	l          log.Logger
	out        io.Writer
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "hrctl",
		Short:         "Operate the HR assistant from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(e.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			e.l = log.Init(log.ZapConfig{
				Level:        cfg.Logger.Level,
				Mode:         cfg.Logger.Mode,
				Encoding:     cfg.Logger.Encoding,
				ColorEnabled: cfg.Logger.ColorEnabled,
			})
			e.out = cmd.OutOrStdout()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default: search ./config, ., /etc/hr-assistant)")

	root.AddCommand(
		newIngestCmd(e),
		newSeedCmd(e),
		newRouteCmd(e),
		newCompareCmd(e),
		newStrategyCmd(e),
	)
	return root
}
