package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seedcatalog/backend/config"
	"github.com/seedcatalog/backend/internal/infrastructure/registry"
	"github.com/seedcatalog/backend/internal/usecase"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Manage the known common-name registry",
}

var registrySeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default common-name list to the configured CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		source := registry.NewCSVSource(cfg.Registry.CommonNamesPath, cfg.Registry.CultivarsPath)
		if err := source.SaveCommonNames(registry.DefaultCommonNames); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Wrote %d common names to %s\n",
			len(registry.DefaultCommonNames), cfg.Registry.CommonNamesPath)
		return nil
	},
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the registry contents in matching order (longest first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		source := registry.NewCSVSource(cfg.Registry.CommonNamesPath, cfg.Registry.CultivarsPath)
		names, err := source.LoadCommonNames()
		if err != nil {
			return err
		}
		for _, name := range usecase.NewNameRegistry(names).Names() {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registryCmd)
	registryCmd.AddCommand(registrySeedCmd)
	registryCmd.AddCommand(registryListCmd)
}
