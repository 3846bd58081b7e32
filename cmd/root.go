// Package cmd implements the snapcalc CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/snapcalc/internal/config"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
	"github.com/theirongolddev/snapcalc/internal/store"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var (
	flagParamsFile string
	flagAsOf       string
	flagUtility    string
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "snapcalc",
	Short: "3SquaresVT (SNAP) eligibility and benefit calculator",
	Long: "Estimate whether a household qualifies for 3SquaresVT food assistance and\n" +
		"how large its monthly benefit would be, step by step.",
	RunE:         runWizard,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagParamsFile, "params", "", "Parameter table TOML file (overrides registry and built-in tables)")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Use the parameter table in effect on this date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().StringVarP(&flagUtility, "utility", "u", "", "Utility allowance: with_heat, without_heat or phone_only")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig returns the saved config, or defaults when the file is unreadable.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

func asOfDate() (time.Time, error) {
	if flagAsOf == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(dateLayout, flagAsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("--as-of: want YYYY-MM-DD, got %q", flagAsOf)
	}
	return t, nil
}

func utilityTier(cfg config.Config) (model.UtilityTier, error) {
	raw := cfg.General.UtilityTier
	if flagUtility != "" {
		raw = flagUtility
	}
	return model.ParseUtilityTier(raw)
}

// paramsHistory resolves which parameter tables this run may use. A table
// file named by --params or the config stands alone; otherwise the built-in
// history is merged with whatever the registry holds.
func paramsHistory(cfg config.Config) (params.History, error) {
	file := flagParamsFile
	if file == "" {
		file = cfg.General.ParamsFile
	}
	if file != "" {
		p, err := params.Load(file)
		if err != nil {
			return nil, err
		}
		return params.History{p}, nil
	}

	history := params.Builtin()

	dbPath := config.RegistryPath(cfg)
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		return history, nil
	}
	reg, err := store.Open(dbPath)
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Parameter registry unavailable, using built-in tables\n")
		}
		return history, nil
	}
	defer func() { _ = reg.Close() }()

	stored, err := reg.History()
	if err != nil {
		return nil, fmt.Errorf("reading parameter registry: %w", err)
	}
	return mergeHistory(history, stored), nil
}

// mergeHistory combines two histories; a stored version replaces a built-in
// one with the same label.
func mergeHistory(builtin, stored params.History) params.History {
	byVersion := make(map[string]int, len(builtin)+len(stored))
	merged := make(params.History, 0, len(builtin)+len(stored))
	for _, h := range []params.History{builtin, stored} {
		for _, p := range h {
			if i, ok := byVersion[p.Version]; ok {
				merged[i] = p
				continue
			}
			byVersion[p.Version] = len(merged)
			merged = append(merged, p)
		}
	}
	merged.Sort()
	return merged
}

// loadParams picks the table in effect on the --as-of date.
func loadParams(cfg config.Config) (params.ProgramParameters, error) {
	history, err := paramsHistory(cfg)
	if err != nil {
		return params.ProgramParameters{}, err
	}
	at, err := asOfDate()
	if err != nil {
		return params.ProgramParameters{}, err
	}
	p, ok := history.At(at)
	if !ok {
		return params.ProgramParameters{}, errors.New("no parameter table available")
	}
	return p, nil
}
