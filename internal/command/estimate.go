package command

import (
	"fmt"
	"strings"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/format"
	"github.com/bornholm/effortcalc/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// selectionFlags binds the factor selections of an estimation input to command flags
type selectionFlags struct {
	role      string
	factors   map[model.Category]*string
	risk      string
	base      float64
	focus     float64
	startDate string
}

var factorFlagNames = map[model.Category]string{
	model.CategoryTaskType:       "task-type",
	model.CategoryComplexity:     "complexity",
	model.CategoryCodeImpact:     "code-impact",
	model.CategoryDependencies:   "dependencies",
	model.CategoryTechNovelty:    "tech-novelty",
	model.CategoryMeetingsLoad:   "meetings",
	model.CategoryDeveloperLevel: "developer-level",
	model.CategoryLOCBucket:      "loc",
	model.CategoryAvailability:   "availability",
}

func newSelectionFlags(flags *pflag.FlagSet) *selectionFlags {
	s := &selectionFlags{
		factors: map[model.Category]*string{},
	}

	flags.StringVarP(&s.role, "role", "r", "", "estimator persona (BA/PMO, Developer), defaults to the configured persona")
	for _, c := range model.Categories {
		value := ""
		s.factors[c] = &value
		flags.StringVar(s.factors[c], factorFlagNames[c], "", fmt.Sprintf("%s (%s)", c.Label(), strings.Join(model.OptionLabels(c), ", ")))
	}
	flags.StringVar(&s.risk, "risk", "", "risk level (Low, Medium, High)")
	flags.Float64Var(&s.base, "base", 0, "base effort in hours, defaults to the configured value")
	flags.Float64Var(&s.focus, "focus", 0, "focus hours per day, defaults to the configured value")
	flags.StringVar(&s.startDate, "start", "", "start date (YYYY-MM-DD) used to project the end date")

	return s
}

// overrides returns the selections set on the command line
func (s *selectionFlags) overrides(flags *pflag.FlagSet) model.InputOverrides {
	o := model.InputOverrides{
		Role:           s.role,
		TaskType:       *s.factors[model.CategoryTaskType],
		Complexity:     *s.factors[model.CategoryComplexity],
		CodeImpact:     *s.factors[model.CategoryCodeImpact],
		Dependencies:   *s.factors[model.CategoryDependencies],
		TechNovelty:    *s.factors[model.CategoryTechNovelty],
		MeetingsLoad:   *s.factors[model.CategoryMeetingsLoad],
		DeveloperLevel: *s.factors[model.CategoryDeveloperLevel],
		LOCBucket:      *s.factors[model.CategoryLOCBucket],
		Availability:   *s.factors[model.CategoryAvailability],
		Risk:           s.risk,
		StartDate:      s.startDate,
	}

	if flags.Changed("base") {
		o.BaseEffortHours = &s.base
	}
	if flags.Changed("focus") {
		o.FocusHoursPerDay = &s.focus
	}

	return o
}

// input builds the estimation input from the configuration defaults and the flags
func (s *selectionFlags) input(config *model.Config, flags *pflag.FlagSet) (model.EstimationInput, error) {
	in := config.NewInput("")
	if err := s.overrides(flags).Apply(&in); err != nil {
		return model.EstimationInput{}, fmt.Errorf("invalid selection: %w", err)
	}
	return in, nil
}

var estimateSelection *selectionFlags

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Compute an effort estimate",
	Long: `Compute the effort in hours, the working days needed and the projected end date
from factor selections. Selections not given on the command line use the configured defaults.`,
	Example: `  effortcalc estimate --complexity high --risk low --base 12 --start 2024-01-01
  effortcalc estimate --role developer --developer-level junior --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		in, err := estimateSelection.input(config, cmd.Flags())
		if err != nil {
			return err
		}

		engine := estimator.NewEngine(estimator.WithPolicy(config.GetPolicy()))

		formatType, _ := cmd.Flags().GetString("format")
		formatter, err := format.New(formatType, engine)
		if err != nil {
			return err
		}

		label, _ := cmd.Flags().GetString("label")

		zap.L().Debug("computing estimate", zap.String("role", string(in.Role)), zap.String("format", formatType))

		result, err := formatter.Format(&model.Estimate{Label: label, Input: in})
		if err != nil {
			return fmt.Errorf("failed to compute estimate: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), result)
		return nil
	},
}

// factorsCmd represents the factors command
var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "List factor options and risk buffers",
	Long:  `List every factor category with its options and multipliers, and the risk buffer of each risk level.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), format.FactorCatalogue())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(factorsCmd)

	estimateSelection = newSelectionFlags(estimateCmd.Flags())
	estimateCmd.Flags().StringP("format", "f", "text", "Output format (text, markdown, json, yaml)")
	estimateCmd.Flags().StringP("label", "l", "", "Label displayed with the estimate")
}
