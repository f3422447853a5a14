package app

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the netsimplex CLI. The binary exists only to give
// core/simplex a runnable, demonstrable surface, so it carries exactly
// one subcommand, "solve", rather than growing into a multi-command
// tool.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "netsimplex",
		Short: "Network-simplex minimum-cost flow solver",
	}
	root.AddCommand(newSolveCmd())
	return root
}

// newSolveCmd builds the "solve" subcommand: load a TOML problem file,
// drive a Controller to completion (or one logged pivot at a time with
// --step), and print the final objective value.
func newSolveCmd() *cobra.Command {
	var (
		problemPath string
		stepByStep  bool
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a min-cost flow problem described by a TOML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New()
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				logger.Warnf("invalid log level %q, using info", logLevel)
				level = log.InfoLevel
			}
			logger.SetLevel(level)
			logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

			return Run(context.Background(), problemPath, stepByStep, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&problemPath, "file", "f", "", "path to a TOML problem file (required)")
	flags.BoolVar(&stepByStep, "step", false, "log every pivot individually instead of solving in one shot")
	flags.StringVar(&logLevel, "log-level", "info", "logrus level: debug, info, warn, error")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}
