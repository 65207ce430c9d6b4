package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/km-arc/go-divendor/framework/config"
)

var (
	version = "dev"
	envFile string
	v       *viper.Viper
)

var rootCmd = &cobra.Command{
	Use:           "divendor",
	Short:         "A dependency-injection registry with blueprints",
	Long:          `divendor registers constructors against contracts, wires their dependencies and serves a read-only inspector over the result.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "",
		"dotenv file to load (default: .env)")
	rootCmd.PersistentFlags().String("log-level", "",
		"logrus level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "",
		"text or json (overrides LOG_FORMAT)")

	rootCmd.AddCommand(demoCmd, inspectCmd, serveCmd)
}

func initConfig() {
	if envFile != "" {
		v = config.NewViper(envFile)
	} else {
		v = config.NewViper()
	}

	// Bind flags to viper
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("inspector_addr", serveCmd.Flags().Lookup("addr"))
}

// loadConfig returns the effective configuration and a logger built from it.
func loadConfig() (*config.Config, *logrus.Logger) {
	cfg := config.FromViper(v)
	return cfg, cfg.Logger()
}
