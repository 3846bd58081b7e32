package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/snapcalc/internal/cli"
	"github.com/theirongolddev/snapcalc/internal/config"
	"github.com/theirongolddev/snapcalc/internal/params"
	"github.com/theirongolddev/snapcalc/internal/store"

	"github.com/spf13/cobra"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Inspect and manage program parameter tables",
}

var paramsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the parameter table in effect",
	RunE:  runParamsShow,
}

var paramsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and imported parameter tables",
	RunE:  runParamsList,
}

var paramsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Validate a TOML parameter table and store it in the registry",
	Args:  cobra.ExactArgs(1),
	RunE:  runParamsImport,
}

var paramsExportCmd = &cobra.Command{
	Use:   "export [VERSION]",
	Short: "Print a parameter table as TOML (default: the table in effect)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParamsExport,
}

var paramsRemoveCmd = &cobra.Command{
	Use:   "remove VERSION",
	Short: "Remove an imported table from the registry",
	Args:  cobra.ExactArgs(1),
	RunE:  runParamsRemove,
}

func init() {
	paramsCmd.AddCommand(paramsShowCmd, paramsListCmd, paramsImportCmd, paramsExportCmd, paramsRemoveCmd)
	rootCmd.AddCommand(paramsCmd)
}

func openRegistry(cfg config.Config) (*store.Registry, error) {
	reg, err := store.Open(config.RegistryPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening parameter registry: %w", err)
	}
	return reg, nil
}

func runParamsShow(_ *cobra.Command, _ []string) error {
	p, err := loadParams(loadConfig())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.ParamsTable(p)))
	fmt.Print(cli.ParamsFootnote(p))
	fmt.Println()
	return nil
}

func runParamsList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	rows := make([][]string, 0, 4)
	for _, p := range params.Builtin() {
		rows = append(rows, []string{p.Version, p.EffectiveFrom.Format(dateLayout), "built-in", ""})
	}

	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = reg.Close() }()

	stored, err := reg.List()
	if err != nil {
		return fmt.Errorf("listing parameter registry: %w", err)
	}
	for _, vi := range stored {
		rows = append(rows, []string{
			vi.Version,
			vi.EffectiveFrom.Format(dateLayout),
			vi.SourcePath,
			vi.ImportedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Parameter tables",
		Headers: []string{"Version", "Effective", "Source", "Imported"},
		Rows:    rows,
	}))
	fmt.Printf("  Registry: %s\n\n", config.RegistryPath(cfg))
	return nil
}

func runParamsImport(_ *cobra.Command, args []string) error {
	p, err := params.Load(args[0])
	if err != nil {
		return err
	}

	reg, err := openRegistry(loadConfig())
	if err != nil {
		return err
	}
	defer func() { _ = reg.Close() }()

	if err := reg.Save(p, args[0]); err != nil {
		return fmt.Errorf("saving version %s: %w", p.Version, err)
	}
	fmt.Printf("  Imported %s (effective %s)\n", p.Version, p.EffectiveFrom.Format(dateLayout))
	return nil
}

func runParamsExport(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	var p params.ProgramParameters
	var err error
	if len(args) == 0 {
		p, err = loadParams(cfg)
	} else {
		p, err = findVersion(cfg, args[0])
	}
	if err != nil {
		return err
	}

	data, err := params.Encode(p)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// findVersion looks a version up in the registry, then in the built-in tables.
func findVersion(cfg config.Config, version string) (params.ProgramParameters, error) {
	reg, err := openRegistry(cfg)
	if err != nil {
		return params.ProgramParameters{}, err
	}
	defer func() { _ = reg.Close() }()

	p, ok, err := reg.Get(version)
	if err != nil {
		return params.ProgramParameters{}, err
	}
	if ok {
		return p, nil
	}
	for _, b := range params.Builtin() {
		if b.Version == version {
			return b, nil
		}
	}
	return params.ProgramParameters{}, fmt.Errorf("no parameter table %q", version)
}

func runParamsRemove(_ *cobra.Command, args []string) error {
	reg, err := openRegistry(loadConfig())
	if err != nil {
		return err
	}
	defer func() { _ = reg.Close() }()

	if err := reg.Delete(args[0]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("version %s is not in the registry", args[0])
		}
		return err
	}
	fmt.Printf("  Removed %s\n", args[0])
	return nil
}
