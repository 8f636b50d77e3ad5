package format

import (
	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/model"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats estimates as YAML with calculated values
type YAMLFormatter struct {
	engine *estimator.Engine
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(engine *estimator.Engine) *YAMLFormatter {
	return &YAMLFormatter{engine: engine}
}

// Format formats an estimate as YAML
func (f *YAMLFormatter) Format(estimate *model.Estimate) (string, error) {
	// Use the same output structure as JSON formatter
	output, err := NewJSONFormatter(f.engine).BuildOutput(estimate)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(output)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
