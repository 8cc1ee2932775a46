package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ncobase/habits/config"
	"github.com/ncobase/habits/internal/server"
	"github.com/ncobase/habits/logging/logger"
	"github.com/ncobase/habits/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("conf")
			loader := config.NewLoader(path)
			cfg, err := loader.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logger.StdLogger()
			log.SetVersion(version.GetVersionInfo().Version)
			cleanup, err := log.Init(cfg.Logger)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if watch {
				loader.Watch(func(c *config.Config) {
					log.SetLevel(logrus.Level(c.Logger.Level))
					log.Infof(context.Background(), "config reloaded, log level %d", c.Logger.Level)
				}, func(err error) {
					log.Warn(context.Background(), err)
				})
			}

			return server.New(cfg, log).Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "reload the log level when the config file changes")
	return cmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetVersionInfo()
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return nil
			}
			out, err := info.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
