package format

import (
	"fmt"
	"strings"

	"github.com/bornholm/effortcalc/internal/model"
)

// FactorCatalogue describes the factor and risk tables as plain text
func FactorCatalogue() string {
	var sb strings.Builder

	sb.WriteString("Factors:\n")
	for _, c := range model.Categories {
		sb.WriteString(fmt.Sprintf("  %s:", c))
		for _, o := range model.Options(c) {
			sb.WriteString(fmt.Sprintf(" %s=×%s", o.Label, o.Multiplier.StringFixed(2)))
		}
		if c == model.CategoryDeveloperLevel {
			sb.WriteString(" (Developer role only)")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Risk buffers:\n")
	for _, r := range model.RiskLevels {
		b, _ := r.Buffer()
		sb.WriteString(fmt.Sprintf("  %s: +%s%%\n", r, b.Shift(2).String()))
	}

	return sb.String()
}
