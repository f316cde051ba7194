package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/investcalc/internal/calculator"
	"github.com/mmynk/investcalc/internal/models"
	"github.com/mmynk/investcalc/internal/render"
)

// ProjectOptions holds flags for the project command.
type ProjectOptions struct {
	*RootOptions
	Entered  calculator.EnteredData
	PlanPath string
}

// ProjectResult is the JSON payload of the project command.
type ProjectResult struct {
	Input   models.InvestmentInput `json:"input"`
	Summary render.SummaryRow      `json:"summary"`
	Years   []render.Row           `json:"years"`
}

// NewProjectCommand creates the project command.
func NewProjectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProjectOptions{RootOptions: rootOpts}
	defaults := calculator.DefaultEnteredData()

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project investment growth year by year",
		Long: `Project how an investment grows under a fixed yearly return.

Values that are not numbers are treated as 0. Flags override values read
from --plan.`,
		Example: `  investcalc project --initial 10000 --annual 1200 --return 6.5 --duration 20
  investcalc project --plan plan.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Entered.InitialInvestment, "initial", defaults.InitialInvestment, "initial investment")
	cmd.Flags().StringVar(&opts.Entered.AnnualInvestment, "annual", defaults.AnnualInvestment, "investment added every year")
	cmd.Flags().StringVar(&opts.Entered.ExpectedReturn, "return", defaults.ExpectedReturn, "expected yearly return in percent")
	cmd.Flags().StringVar(&opts.Entered.Duration, "duration", defaults.Duration, "duration in years")
	cmd.Flags().StringVarP(&opts.PlanPath, "plan", "p", "", "YAML file with the plan")

	return cmd
}

func runProject(cmd *cobra.Command, opts *ProjectOptions) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	entered, err := opts.entered(cmd)
	if err != nil {
		exitErr := WrapExitError(ExitCommandError, "cannot load plan", err)
		out.JSONError(exitErr)
		return exitErr
	}

	input := calculator.ParseInput(entered)
	out.VerboseLog("Projecting initial=%v annual=%v return=%v%% duration=%d",
		input.InitialInvestment, input.AnnualInvestment, input.ExpectedReturn, input.Duration)

	records := calculator.Project(input)

	if opts.Format == "json" {
		return out.JSON(ProjectResult{
			Input:   input,
			Summary: render.Summarize(records),
			Years:   render.Rows(records),
		})
	}

	format, err := opts.moneyFormat()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid money format", err)
	}
	if err := render.Table(out.Writer, records, format); err != nil {
		return WrapExitError(ExitFailure, "cannot write table", err)
	}
	return nil
}

// entered merges the plan file (if any) with explicitly set flags.
func (o *ProjectOptions) entered(cmd *cobra.Command) (calculator.EnteredData, error) {
	if o.PlanPath == "" {
		return o.Entered, nil
	}

	entered, err := loadPlan(o.PlanPath)
	if err != nil {
		return calculator.EnteredData{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("initial") {
		entered.InitialInvestment = o.Entered.InitialInvestment
	}
	if flags.Changed("annual") {
		entered.AnnualInvestment = o.Entered.AnnualInvestment
	}
	if flags.Changed("return") {
		entered.ExpectedReturn = o.Entered.ExpectedReturn
	}
	if flags.Changed("duration") {
		entered.Duration = o.Entered.Duration
	}
	return entered, nil
}
