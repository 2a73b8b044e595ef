package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/cn/internal/config"
)

// app is shared by all subcommands once the root command has run its setup.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	debug  bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "cn",
		Short:        "Merge Tailwind class lists and list record keys",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogFormat, a.debug)
			slog.SetDefault(a.logger)
			a.logger.Debug("config loaded", "prefix", cfg.Prefix, "extension_file", cfg.ExtensionFile)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(mergeCmd(a))
	cmd.AddCommand(keysCmd(a))
	return cmd
}
