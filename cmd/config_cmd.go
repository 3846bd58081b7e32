package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/snapcalc/internal/config"
	"github.com/theirongolddev/snapcalc/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.ParamsFile != "" {
		fmt.Printf("    Params file:   %s\n", cfg.General.ParamsFile)
	} else {
		fmt.Println("    Params file:   not set (registry + built-in tables)")
	}
	fmt.Printf("    Utility tier:  %s\n", cfg.General.UtilityTier)

	dbPath := config.RegistryPath(cfg)
	fmt.Printf("    Registry:      %s", dbPath)
	if _, err := os.Stat(dbPath); err == nil {
		if reg, err := store.Open(dbPath); err == nil {
			if n, err := reg.VersionCount(); err == nil {
				fmt.Printf(" (%d imported)", n)
			}
			_ = reg.Close()
		}
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address: %s\n", cfg.Server.Addr)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `snapcalc setup` to reconfigure.")
	return nil
}
