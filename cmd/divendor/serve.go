package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-divendor/framework/app"
	"github.com/km-arc/go-divendor/internal/demo"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the inspector over the demo registrations",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides INSPECTOR_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, _ := loadConfig()

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("creating application: %w", err)
	}
	if err := demo.Populate(application.Registry); err != nil {
		return fmt.Errorf("populating registry: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return application.Run(ctx)
}
