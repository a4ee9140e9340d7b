package main

import (
	"fmt"
	"os"

	"pushpay/config"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pushpay",
		Short:         "pushpay - push-only payment ledgers with fee splitting",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml or ./config/config.yaml)")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	root.AddCommand(serveCmd(load))
	root.AddCommand(migrateCmd(load))
	root.AddCommand(tokenCmd(load))
	root.AddCommand(splitCmd())

	return root
}
