package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"capilia/internal/client"
	"capilia/internal/config"
	"capilia/internal/logger"
)

// cli carries state shared by every subcommand.
type cli struct {
	out      io.Writer
	logLevel string
	timeout  time.Duration
	baseURL  string
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	root := &cobra.Command{
		Use:           "capiliactl",
		Short:         "Operate the Capilia analytics backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Operation timeout")
	root.PersistentFlags().StringVar(&c.baseURL, "api", "", "API base URL (default: $CAPILIA_API_BASE_URL)")

	root.AddCommand(c.migrateCmd())
	root.AddCommand(c.geocodeMissingCmd())
	root.AddCommand(c.healthCmd())
	root.AddCommand(c.statsCmd())
	root.AddCommand(c.dashboardCmd())
	return root
}

// logger writes JSON lines to stderr so stdout stays machine readable.
func (c *cli) logger(cmd *cobra.Command) *logrus.Logger {
	return logger.NewWithWriter(cmd.ErrOrStderr(), c.logLevel, time.UTC)
}

func (c *cli) client() (*client.Client, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	return client.NewFromConfig(cfg)
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
