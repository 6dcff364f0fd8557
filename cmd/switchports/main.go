package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"switchports/internal/config"
	"switchports/internal/logging"
	"switchports/internal/pipeline"
)

const usageLine = "Usage: switchports <path_to_file>"

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		logger  = zap.NewNop()
	)

	cmd := &cobra.Command{
		Use:           "switchports <path_to_file>",
		Short:         "Print the switch and port each device in a network export is connected to",
		Long:          "Reads a device export (.csv, or a workbook for any other extension) and prints\nwhich switch and port every connected device is plugged into.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg, verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = logger.Sync() }()
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return nil
			}
			if len(args) > 1 {
				logger.Debug("ignoring extra arguments", zap.Strings("args", args[1:]))
			}
			return pipeline.Run(cmd.OutOrStdout(), args[0], logger)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var rerr *pipeline.ReportError
		if !errors.As(err, &rerr) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
