package format

import (
	"fmt"
	"strings"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/model"
)

// MarkdownFormatter formats estimates as a markdown report
type MarkdownFormatter struct {
	engine *estimator.Engine
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(engine *estimator.Engine) *MarkdownFormatter {
	return &MarkdownFormatter{engine: engine}
}

// Format formats an estimate as markdown
func (f *MarkdownFormatter) Format(estimate *model.Estimate) (string, error) {
	c, err := compute(f.engine, estimate.Input)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	title := estimate.Label
	if title == "" {
		title = "Effort Estimate"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	if estimate.Description != "" {
		sb.WriteString(estimate.Description + "\n\n")
	}

	sb.WriteString("## Factors\n\n")
	sb.WriteString("| Factor | Selection | Multiplier |\n")
	sb.WriteString("|---|---|---:|\n")
	for _, contrib := range c.breakdown {
		option := contrib.Option
		if !contrib.Applied {
			option = "n/a"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | ×%.2f |\n", contrib.Category.Label(), escapeCell(option), contrib.Multiplier))
	}
	sb.WriteString(fmt.Sprintf("| Risk Level | %s | +%d%% |\n\n", estimate.Input.Risk, int(c.result.RiskBuffer*100+0.5)))

	sb.WriteString("## Results\n\n")
	sb.WriteString("| | |\n")
	sb.WriteString("|---|---:|\n")
	for _, field := range ResultFields(estimate.Input, c.result) {
		value := field.Value
		if value == "" {
			value = "—"
		}
		if field.Emphasize {
			value = "**" + value + "**"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", field.Label, escapeCell(value)))
	}

	sb.WriteString("\n_End date excludes weekends. Public holidays are not accounted for._\n")

	return sb.String(), nil
}

// escapeCell escapes characters with a meaning inside markdown table cells
func escapeCell(s string) string {
	return strings.NewReplacer("|", "\\|", "<", "&lt;", ">", "&gt;").Replace(s)
}
