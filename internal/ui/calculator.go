package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/format"
	"github.com/bornholm/effortcalc/internal/model"
	"github.com/rivo/tview"
)

const (
	fieldBaseEffort = "Base Effort"
	fieldFocusHours = "Focus Hours/Day"
	fieldStartDate  = "Start Date"
)

// Calculator holds the selections edited in the interactive form and
// recomputes the estimate after every change.
type Calculator struct {
	config *model.Config
	engine *estimator.Engine
	input  model.EstimationInput

	// Text fields that could not be parsed, keyed by field label.
	fieldErrs map[string]error
}

// NewCalculator creates a calculator starting from the given input
func NewCalculator(config *model.Config, input model.EstimationInput) *Calculator {
	return &Calculator{
		config:    config,
		engine:    estimator.NewEngine(estimator.WithPolicy(config.GetPolicy())),
		input:     input,
		fieldErrs: map[string]error{},
	}
}

// Input returns the current selections
func (c *Calculator) Input() model.EstimationInput {
	return c.input
}

// Reset restores the configured defaults and persona
func (c *Calculator) Reset() {
	c.input = c.config.NewInput("")
	c.fieldErrs = map[string]error{}
}

// SetRole selects the estimator persona
func (c *Calculator) SetRole(label string) error {
	role, err := model.ParseRole(label)
	if err != nil {
		return err
	}
	c.input.Role = role
	return nil
}

// SetFactor selects the option of a factor category
func (c *Calculator) SetFactor(category model.Category, label string) error {
	return c.input.SetFactor(category, label)
}

// SetRisk selects the risk level
func (c *Calculator) SetRisk(label string) error {
	risk, err := model.ParseRiskLevel(label)
	if err != nil {
		return err
	}
	c.input.Risk = risk
	return nil
}

// SetBaseEffort parses the base effort hours field
func (c *Calculator) SetBaseEffort(text string) {
	c.setHours(fieldBaseEffort, text, &c.input.BaseEffortHours)
}

// SetFocusHours parses the focus hours per day field
func (c *Calculator) SetFocusHours(text string) {
	c.setHours(fieldFocusHours, text, &c.input.FocusHoursPerDay)
}

func (c *Calculator) setHours(field string, text string, target *float64) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		c.fieldErrs[field] = fmt.Errorf("%s: '%s' is not a number", field, text)
		return
	}
	delete(c.fieldErrs, field)
	*target = v
}

// SetStartDate parses the start date field, an empty text clearing it
func (c *Calculator) SetStartDate(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		delete(c.fieldErrs, fieldStartDate)
		c.input.StartDate = nil
		return
	}

	d, err := model.ParseDate(text)
	if err != nil {
		c.fieldErrs[fieldStartDate] = fmt.Errorf("%s: %w", fieldStartDate, err)
		return
	}
	delete(c.fieldErrs, fieldStartDate)
	c.input.StartDate = &d
}

// Err returns the parse errors of the text fields, if any
func (c *Calculator) Err() error {
	errs := make([]error, 0, len(c.fieldErrs))
	for _, field := range []string{fieldBaseEffort, fieldFocusHours, fieldStartDate} {
		if err, ok := c.fieldErrs[field]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Compute returns the result and the factor breakdown of the current selections
func (c *Calculator) Compute() (model.EstimationResult, []model.FactorContribution, error) {
	if err := c.Err(); err != nil {
		return model.EstimationResult{}, nil, err
	}

	res, err := c.engine.Compute(c.input)
	if err != nil {
		return model.EstimationResult{}, nil, err
	}

	breakdown, err := c.engine.Breakdown(c.input)
	if err != nil {
		return model.EstimationResult{}, nil, err
	}

	return res, breakdown, nil
}

// Preview renders the result fields as tview colored text
func (c *Calculator) Preview() string {
	res, _, err := c.Compute()
	if err != nil {
		return fmt.Sprintf("[red]%s[white]", tview.Escape(err.Error()))
	}

	var sb strings.Builder
	for _, f := range format.ResultFields(c.input, res) {
		value := f.Value
		if value == "" {
			value = "—"
		}
		if f.Emphasize {
			sb.WriteString(fmt.Sprintf("[yellow]%s:[white] [::b]%s[::-]\n", f.Label, tview.Escape(value)))
			continue
		}
		sb.WriteString(fmt.Sprintf("[yellow]%s:[white] %s\n", f.Label, tview.Escape(value)))
	}
	return sb.String()
}
