package main

import (
	"context"
	stdlog "log"

	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
	"github.com/vvakame/gqldirectives/internal/config"
	"github.com/vvakame/gqldirectives/internal/log"
)

type globalOptions struct {
	configPath string
	verbose    int
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:          "gqldirectives",
		Short:        "Emit and check the built-in @include and @skip directive declarations",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := stdr.New(stdlog.New(cmd.ErrOrStderr(), "", stdlog.LstdFlags))
			stdr.SetVerbosity(opts.verbose)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(log.WithLogger(ctx, logger.WithName("gqldirectives")))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultFileName+" when present)")
	cmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity")

	cmd.AddCommand(
		printCmd(opts),
		checkCmd(),
	)

	return cmd
}
