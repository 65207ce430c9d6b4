package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-divendor/framework/container"
	"github.com/km-arc/go-divendor/internal/demo"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [contract]",
	Short: "Print the demo registrations as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, log := loadConfig()

	r := container.New(container.WithLogger(log))
	if err := demo.Populate(r); err != nil {
		return fmt.Errorf("populating registry: %w", err)
	}

	var payload any = r.Registrations()
	if len(args) == 1 {
		info, ok := r.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", container.ErrUnregisteredContract, args[0])
		}
		payload = info
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
