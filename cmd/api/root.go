package main

import (
	"solar_portal/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "solar-portal",
		Short:        "Solar marketplace API",
		Long:         `Solar Portal connects homeowners with installers: project moderation, quotes, signed deals and commission collection.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a config YAML (defaults to configs/config.yaml)")

	load := func() (*config.Config, error) {
		if configPath != "" {
			return config.LoadFromFile(configPath)
		}
		return config.Load()
	}

	root.AddCommand(newServeCmd(load))
	root.AddCommand(newMigrateCmd(load))
	return root
}
