// Package commands wires the furrystore command line.
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/odvcencio/furry-store/internal/config"
)

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds a command tree that owns its own config, loaded
// before any subcommand runs.
func newRootCmd() *cobra.Command {
	cfg := &config.Config{}
	run := runCmd(cfg)
	root := &cobra.Command{
		Use:           "furrystore",
		Short:         "A counter and color code store in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			*cfg = loaded
			return nil
		},
		RunE: run.RunE,
	}
	root.AddCommand(run, inspectCmd(cfg))
	return root
}
