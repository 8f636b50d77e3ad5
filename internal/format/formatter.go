package format

import (
	"fmt"
	"strings"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/model"
)

// Formatter renders an estimate with its calculated values
type Formatter interface {
	Format(estimate *model.Estimate) (string, error)
}

// Names lists the supported output formats
var Names = []string{"text", "markdown", "json", "yaml"}

// New returns the formatter registered under name
func New(name string, engine *estimator.Engine) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text", "txt":
		return NewTextFormatter(engine), nil
	case "markdown", "md":
		return NewMarkdownFormatter(engine), nil
	case "json":
		return NewJSONFormatter(engine), nil
	case "yaml", "yml":
		return NewYAMLFormatter(engine), nil
	default:
		return nil, fmt.Errorf("unknown format '%s' (valid: %s)", name, strings.Join(Names, ", "))
	}
}
