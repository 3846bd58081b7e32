package cmd

import (
	"fmt"

	"github.com/theirongolddev/snapcalc/internal/cli"
	"github.com/theirongolddev/snapcalc/internal/session"
	"github.com/theirongolddev/snapcalc/internal/tui"
	"github.com/theirongolddev/snapcalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Walk through the eligibility steps interactively (default)",
	RunE:  runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	p, err := loadParams(cfg)
	if err != nil {
		return err
	}
	tier, err := utilityTier(cfg)
	if err != nil {
		return err
	}

	// Force TrueColor profile so card borders and step colors render
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(p, tier)
	prog := tea.NewProgram(app, tea.WithAltScreen())

	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Leave the outcome on screen once the alternate screen is gone.
	if a, ok := final.(tui.App); ok && a.Session().Step() == session.StepResult {
		sess := a.Session()
		fmt.Println()
		fmt.Println(cli.RenderTable(cli.ResultTable(sess.Input(), sess.Result())))
		fmt.Println(cli.RenderVerdict(sess.Result()))
		fmt.Println()
	}
	return nil
}
