package estimator

import (
	"errors"
	"fmt"
	"math"

	"github.com/bornholm/effortcalc/internal/model"
	"github.com/shopspring/decimal"
)

// daysPrecision is the number of decimals kept, rounding up, on working days.
const daysPrecision = 2

// MaxWorkingDays bounds the working days an estimate may need: a hundred
// years of 261 workdays. Anything above cannot be projected to an end date.
const MaxWorkingDays = 100 * 261

// maxEffortHours bounds the effort with risk, a workday never holding more
// than 24 focus hours.
var maxEffortHours = decimal.NewFromInt(MaxWorkingDays * 24)

// Engine computes effort estimations from factor selections.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	policy model.NonPositivePolicy
}

// Option configures an Engine
type Option func(*Engine)

// WithPolicy sets how non-positive base effort and focus hours are handled
func WithPolicy(policy model.NonPositivePolicy) Option {
	return func(e *Engine) {
		if policy != "" {
			e.policy = policy
		}
	}
}

// NewEngine creates an engine rejecting non-positive hours unless configured otherwise
func NewEngine(opts ...Option) *Engine {
	e := &Engine{policy: model.PolicyReject}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// Compute runs the default engine, which rejects non-positive hours
func Compute(in model.EstimationInput) (model.EstimationResult, error) {
	return defaultEngine.Compute(in)
}

type contribution struct {
	model.FactorContribution
	multiplier decimal.Decimal
}

// Compute derives the effort metrics and the projected end date of the input.
// It either returns a complete result or an error wrapping ErrInvalidInput.
func (e *Engine) Compute(in model.EstimationInput) (model.EstimationResult, error) {
	contributions, err := e.contributions(in)
	if err != nil {
		return model.EstimationResult{}, err
	}

	riskBuffer, err := in.Risk.Buffer()
	if err != nil {
		return model.EstimationResult{}, invalid("risk", "must be one of Low, Medium, High", err)
	}

	if err := e.checkHours(in); err != nil {
		return model.EstimationResult{}, err
	}

	product := decimal.NewFromInt(1)
	for _, c := range contributions {
		product = product.Mul(c.multiplier)
	}

	baseHours := decimal.Zero
	if in.BaseEffortHours > 0 {
		baseHours = decimal.NewFromFloat(in.BaseEffortHours)
	}

	effortBase := baseHours.Mul(product)
	effortWithRisk := effortBase.Mul(decimal.NewFromInt(1).Add(riskBuffer))

	if effortWithRisk.GreaterThan(maxEffortHours) {
		return model.EstimationResult{}, invalid("baseEffortHours", fmt.Sprintf("exceeds %d working days of effort", MaxWorkingDays), nil)
	}

	workingDays := decimal.Zero
	if in.FocusHoursPerDay > 0 {
		workingDays = CeilPrecision(effortWithRisk.Div(decimal.NewFromFloat(in.FocusHoursPerDay)), daysPrecision)
	}

	if workingDays.GreaterThan(decimal.NewFromInt(MaxWorkingDays)) {
		return model.EstimationResult{}, invalid("focusHoursPerDay", fmt.Sprintf("is too low, the estimate exceeds %d working days", MaxWorkingDays), nil)
	}

	result := model.EstimationResult{
		Role:                in.Role,
		MultiplierProduct:   product.InexactFloat64(),
		EffortBaseHours:     effortBase.InexactFloat64(),
		RiskBuffer:          riskBuffer.InexactFloat64(),
		EffortWithRiskHours: effortWithRisk.InexactFloat64(),
		WorkingDaysNeeded:   workingDays.InexactFloat64(),
	}

	if workingDays.IsPositive() {
		result.WholeWorkdays = int(workingDays.Ceil().IntPart())
		if in.StartDate != nil && !in.StartDate.IsZero() {
			end := AddWorkdays(*in.StartDate, result.WholeWorkdays)
			result.EndDate = &end
		}
	}

	return result, nil
}

// Breakdown returns the multiplier applied for each factor category of the input
func (e *Engine) Breakdown(in model.EstimationInput) ([]model.FactorContribution, error) {
	contributions, err := e.contributions(in)
	if err != nil {
		return nil, err
	}

	breakdown := make([]model.FactorContribution, 0, len(contributions))
	for _, c := range contributions {
		breakdown = append(breakdown, c.FactorContribution)
	}

	return breakdown, nil
}

func (e *Engine) contributions(in model.EstimationInput) ([]contribution, error) {
	if !in.Role.IsValid() {
		return nil, invalid("role", "must be one of BA/PMO, Developer", model.ErrUnknownOption)
	}

	selections := in.Selections()
	contributions := make([]contribution, 0, len(selections))

	for _, s := range selections {
		// Seniority only scales the effort of developers.
		if s.Category == model.CategoryDeveloperLevel && in.Role != model.RoleDeveloper {
			if s.Option != "" && !in.DeveloperLevel.IsValid() {
				return nil, invalid(string(s.Category), "must name a valid option", model.ErrUnknownOption)
			}
			contributions = append(contributions, contribution{
				FactorContribution: model.FactorContribution{
					Category:   s.Category,
					Option:     s.Option,
					Multiplier: 1,
					Applied:    false,
				},
				multiplier: decimal.NewFromInt(1),
			})
			continue
		}

		opt, err := model.LookupOption(s.Category, s.Option)
		if err != nil {
			return nil, invalid(string(s.Category), "must name a valid option", err)
		}

		contributions = append(contributions, contribution{
			FactorContribution: model.FactorContribution{
				Category:   s.Category,
				Option:     opt.Label,
				Multiplier: opt.Value(),
				Applied:    true,
			},
			multiplier: opt.Multiplier,
		})
	}

	return contributions, nil
}

func (e *Engine) checkHours(in model.EstimationInput) error {
	hours := []struct {
		field string
		value float64
	}{
		{"baseEffortHours", in.BaseEffortHours},
		{"focusHoursPerDay", in.FocusHoursPerDay},
	}

	for _, h := range hours {
		if math.IsNaN(h.value) || math.IsInf(h.value, 0) {
			return invalid(h.field, "must be a finite number", nil)
		}
		if h.value <= 0 && e.policy != model.PolicyDegrade {
			return invalid(h.field, "must be > 0", nil)
		}
	}

	return nil
}

// IsInvalidInput reports whether err was caused by a rejected input
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
