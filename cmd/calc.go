package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/snapcalc/internal/cli"
	"github.com/theirongolddev/snapcalc/internal/engine"
	"github.com/theirongolddev/snapcalc/internal/input"
	"github.com/theirongolddev/snapcalc/internal/model"
	"github.com/theirongolddev/snapcalc/internal/server"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	flagCalcSize       string
	flagCalcSenior     bool
	flagCalcDisabled   bool
	flagCalcAssistance bool
	flagCalcEarned     []string
	flagCalcUnearned   []string
	flagCalcDeductions []string
	flagCalcMedical    string
	flagCalcShelter    []string
	flagCalcJSON       bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate eligibility and benefit from flags",
	Example: "  snapcalc calc --size 3 --earned 1200 --shelter 700\n" +
		"  snapcalc calc --size 1 --senior --unearned 900 --medical 210 --shelter 450 --json",
	RunE: runCalc,
}

func init() {
	f := calcCmd.Flags()
	f.StringVar(&flagCalcSize, "size", "1", "Household size")
	f.BoolVar(&flagCalcSenior, "senior", false, "Someone in the household is 60+ or disabled")
	f.BoolVar(&flagCalcDisabled, "disabled", false, "Someone receives disability benefits")
	f.BoolVar(&flagCalcAssistance, "assistance", false, "Someone participates in a designated assistance program")
	f.StringArrayVar(&flagCalcEarned, "earned", nil, "Monthly earned income line (repeatable)")
	f.StringArrayVar(&flagCalcUnearned, "unearned", nil, "Monthly unearned income line (repeatable)")
	f.StringArrayVar(&flagCalcDeductions, "deduction", nil, "Monthly deduction line (repeatable)")
	f.StringVar(&flagCalcMedical, "medical", "", "Monthly medical expenses (senior or disabled households)")
	f.StringArrayVar(&flagCalcShelter, "shelter", nil, "Monthly shelter cost line (repeatable)")
	f.BoolVar(&flagCalcJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	p, err := loadParams(cfg)
	if err != nil {
		return err
	}
	tier, err := utilityTier(cfg)
	if err != nil {
		return err
	}

	form := model.HouseholdForm{
		HouseholdSize:                   flagCalcSize,
		HasSeniorOrDisabledMember:       flagCalcSenior,
		ReceivesDisabilityBenefits:      flagCalcDisabled,
		ParticipatesInAssistanceProgram: flagCalcAssistance,
		EarnedIncome:                    flagCalcEarned,
		UnearnedIncome:                  flagCalcUnearned,
		Deductions:                      flagCalcDeductions,
		MedicalExpenses:                 flagCalcMedical,
		ShelterCosts:                    flagCalcShelter,
		UtilityTier:                     tier,
	}

	in, err := input.ParseHousehold(form)
	if err != nil {
		return calcError(err)
	}
	res, err := engine.Calculate(in, p)
	if err != nil {
		return calcError(err)
	}

	if flagCalcJSON {
		out := struct {
			ParamsVersion string               `json:"params_version"`
			Result        server.ResultPayload `json:"result"`
		}{p.Version, server.NewResultPayload(res)}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("3SquaresVT estimate (params %s)", p.Version)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.ResultTable(in, res)))
	fmt.Println(cli.RenderVerdict(res))
	fmt.Println()
	return nil
}

// calcError names the flag behind a field error.
func calcError(err error) error {
	fe, ok := input.AsFieldError(err)
	if !ok {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Invalid input for %s\n", flagFor(fe.Field))
	}
	return err
}

func flagFor(ref model.FieldRef) string {
	names := map[model.Field]string{
		model.FieldHouseholdSize:   "--size",
		model.FieldEarnedIncome:    "--earned",
		model.FieldUnearnedIncome:  "--unearned",
		model.FieldDeduction:       "--deduction",
		model.FieldMedicalExpenses: "--medical",
		model.FieldShelterCost:     "--shelter",
	}
	name, ok := names[ref.Field]
	if !ok {
		return ref.String()
	}
	if ref.Index >= 0 {
		return fmt.Sprintf("%s #%d", name, ref.Index+1)
	}
	return name
}
