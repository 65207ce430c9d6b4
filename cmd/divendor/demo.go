package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/km-arc/go-divendor/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the walkthrough scenarios",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	_, log := loadConfig()
	out := cmd.OutOrStdout()

	for _, scenario := range demo.Scenarios() {
		rep, err := scenario(log)
		if err != nil {
			return fmt.Errorf("running scenario: %w", err)
		}
		log.WithFields(logrus.Fields{"scenario": rep.Name, "lines": len(rep.Lines)}).Debug("scenario finished")
		fmt.Fprintf(out, "== %s\n", rep.Name)
		for _, line := range rep.Lines {
			fmt.Fprintf(out, "   %s\n", line)
		}
	}
	return nil
}
