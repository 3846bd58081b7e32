package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/snapcalc/internal/config"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/params"
	"github.com/theirongolddev/snapcalc/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	ParamsFile  string
	UtilityTier model.UtilityTier
	Theme       string
	ServerAddr  string
}

// SetupValuesFrom seeds the form with the current configuration.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	v := &SetupValues{
		ParamsFile:  cfg.General.ParamsFile,
		UtilityTier: model.UtilityTier(cfg.General.UtilityTier),
		Theme:       cfg.Appearance.Theme,
		ServerAddr:  cfg.Server.Addr,
	}
	if _, err := model.ParseUtilityTier(string(v.UtilityTier)); err != nil || v.UtilityTier == "" {
		v.UtilityTier = model.UtilityWithHeat
	}
	if v.Theme == "" {
		v.Theme = theme.FlexokiDark.Name
	}
	return v
}

// Apply writes the answers back into cfg.
func (v *SetupValues) Apply(cfg *config.Config) {
	cfg.General.ParamsFile = strings.TrimSpace(v.ParamsFile)
	cfg.General.UtilityTier = string(v.UtilityTier)
	cfg.Appearance.Theme = v.Theme
	if addr := strings.TrimSpace(v.ServerAddr); addr != "" {
		cfg.Server.Addr = addr
	}
}

// NewSetupForm builds the configuration form bound to v.
func NewSetupForm(v *SetupValues) *huh.Form {
	tiers := make([]huh.Option[model.UtilityTier], 0, len(model.UtilityTiers))
	for _, tier := range model.UtilityTiers {
		tiers = append(tiers, huh.NewOption(tier.Label(), tier))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("snapcalc setup").
				Description(fmt.Sprintf("Settings are saved to %s", config.ConfigPath())),
			huh.NewInput().
				Title("Parameter table file").
				Description("A TOML table used instead of the built-in figures. Leave blank for the built-in table.").
				Placeholder("/path/to/params.toml").
				Value(&v.ParamsFile).
				Validate(validateParamsFile),
			huh.NewSelect[model.UtilityTier]().
				Title("Default utility allowance").
				Options(tiers...).
				Value(&v.UtilityTier),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.Theme),
			huh.NewInput().
				Title("HTTP listen address").
				Description("Used by `snapcalc serve`.").
				Value(&v.ServerAddr),
		),
	).WithTheme(theme.Form())
}

func validateParamsFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	_, err := params.Load(path)
	return err
}
