package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/model"
)

// Field is a labelled, display-ready value of an estimation result
type Field struct {
	Label     string `json:"label" yaml:"label"`
	Value     string `json:"value" yaml:"value"`
	Emphasize bool   `json:"emphasize,omitempty" yaml:"emphasize,omitempty"`
}

// ResultFields returns the result values in display order
func ResultFields(in model.EstimationInput, res model.EstimationResult) []Field {
	availability := string(in.Availability)
	if opt, err := model.LookupOption(model.CategoryAvailability, availability); err == nil {
		availability = fmt.Sprintf("%s (×%.2f)", opt.Label, opt.Value())
	}

	return []Field{
		{Label: "Role", Value: string(res.Role)},
		{Label: "Multiplier Product", Value: fmt.Sprintf("%.3f", res.MultiplierProduct)},
		{Label: "Effort (Base) – hrs", Value: fmt.Sprintf("%.2f", res.EffortBaseHours)},
		{Label: "Risk Buffer", Value: fmt.Sprintf("%d%%", int(math.Round(res.RiskBuffer*100)))},
		{Label: "Effort (With Risk) – hrs", Value: fmt.Sprintf("%.2f", res.EffortWithRiskHours), Emphasize: true},
		{Label: "Availability (capacity)", Value: availability},
		{Label: "Focus Hours/Day", Value: fmt.Sprintf("%.2f", in.FocusHoursPerDay)},
		{Label: "Working Days Needed", Value: FormatDays(res.WorkingDaysNeeded), Emphasize: true},
		{Label: "Projected End Date", Value: FormatDate(res.EndDate), Emphasize: true},
	}
}

// FormatDays formats a working days count with no trailing zeros
func FormatDays(days float64) string {
	return strconv.FormatFloat(days, 'f', -1, 64)
}

// FormatDate formats an optional date as YYYY-MM-DD, or an empty string
func FormatDate(d *model.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// FormatContribution formats the option and multiplier of a factor
func FormatContribution(c model.FactorContribution) string {
	if !c.Applied {
		return fmt.Sprintf("n/a (×%.2f)", c.Multiplier)
	}
	return fmt.Sprintf("%s (×%.2f)", c.Option, c.Multiplier)
}

type computed struct {
	result    model.EstimationResult
	breakdown []model.FactorContribution
}

func compute(engine *estimator.Engine, in model.EstimationInput) (*computed, error) {
	res, err := engine.Compute(in)
	if err != nil {
		return nil, err
	}

	breakdown, err := engine.Breakdown(in)
	if err != nil {
		return nil, err
	}

	return &computed{result: res, breakdown: breakdown}, nil
}
