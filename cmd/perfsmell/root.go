package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"perfsmell/internal/config"
	"perfsmell/internal/log"
)

var version = "dev"

// NewRootCmd creates the root command. Configuration and logging are set up
// before any subcommand runs.
func NewRootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "perfsmell",
		Short:         "Heuristic web page performance smell analyzer",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadEnv(envFile)
			if err != nil {
				return err
			}
			log.InitLogger(cfg.IsDev)
			if !cfg.EnvFileLoaded {
				log.Logger.Debug("env file not found, using environment only", zap.String("path", envFile))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewMCPCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Sync()
		os.Exit(1)
	}
}
