package format

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/model"
)

// TextFormatter formats estimates as aligned plain text
type TextFormatter struct {
	engine *estimator.Engine
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(engine *estimator.Engine) *TextFormatter {
	return &TextFormatter{engine: engine}
}

// Format formats an estimate as plain text
func (f *TextFormatter) Format(estimate *model.Estimate) (string, error) {
	c, err := compute(f.engine, estimate.Input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	if estimate.Label != "" {
		sb.WriteString(fmt.Sprintf("Estimate: %s\n\n", estimate.Label))
	}

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "Factors:")
	for _, contrib := range c.breakdown {
		fmt.Fprintf(w, "  %s:\t%s\n", contrib.Category.Label(), FormatContribution(contrib))
	}
	fmt.Fprintf(w, "  Risk Level:\t%s\n", estimate.Input.Risk)
	fmt.Fprintf(w, "  Base Effort (hrs):\t%.2f\n", estimate.Input.BaseEffortHours)
	if estimate.Input.StartDate != nil {
		fmt.Fprintf(w, "  Start Date:\t%s\n", estimate.Input.StartDate)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Results:")
	for _, field := range ResultFields(estimate.Input, c.result) {
		value := field.Value
		if value == "" {
			value = "—"
		}
		fmt.Fprintf(w, "  %s:\t%s\n", field.Label, value)
	}

	if err := w.Flush(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
