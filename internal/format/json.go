package format

import (
	"encoding/json"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/model"
)

// JSONFormatter formats estimates as JSON with calculated values
type JSONFormatter struct {
	engine *estimator.Engine
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(engine *estimator.Engine) *JSONFormatter {
	return &JSONFormatter{engine: engine}
}

// Output represents a complete estimate with its calculated values
type Output struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Input   model.EstimationInput      `json:"input" yaml:"input"`
	Factors []model.FactorContribution `json:"factors" yaml:"factors"`
	Result  model.EstimationResult     `json:"result" yaml:"result"`
}

// Format formats an estimate as JSON
func (f *JSONFormatter) Format(estimate *model.Estimate) (string, error) {
	output, err := f.BuildOutput(estimate)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// BuildOutput builds the output structure
func (f *JSONFormatter) BuildOutput(estimate *model.Estimate) (*Output, error) {
	c, err := compute(f.engine, estimate.Input)
	if err != nil {
		return nil, err
	}

	return &Output{
		ID:          string(estimate.ID),
		Label:       estimate.Label,
		Description: estimate.Description,
		Input:       estimate.Input,
		Factors:     c.breakdown,
		Result:      c.result,
	}, nil
}
