package estimator

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/bornholm/effortcalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monday() model.Date {
	return model.NewDate(2024, time.January, 1)
}

func TestCompute_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		input          func() model.EstimationInput
		multiplier     float64
		effortBase     float64
		effortWithRisk float64
		workingDays    float64
	}{
		{
			name:           "default factors for BA/PMO",
			input:          func() model.EstimationInput { return model.DefaultInput(model.RoleBAPMO) },
			multiplier:     1.1,
			effortBase:     8.8,
			effortWithRisk: 10.12,
			workingDays:    2.03,
		},
		{
			name: "familiar tech with few meetings",
			input: func() model.EstimationInput {
				in := model.DefaultInput(model.RoleBAPMO)
				in.TechNovelty = model.TechNoveltyFamiliar
				in.MeetingsLoad = model.MeetingsLoadLow
				in.Risk = model.RiskLow
				return in
			},
			multiplier:     0.81,
			effortBase:     6.48,
			effortWithRisk: 6.804,
			workingDays:    1.37,
		},
		{
			name: "junior developer",
			input: func() model.EstimationInput {
				in := model.DefaultInput(model.RoleDeveloper)
				in.DeveloperLevel = model.DeveloperLevelJunior
				return in
			},
			multiplier:     1.32,
			effortBase:     10.56,
			effortWithRisk: 12.144,
			workingDays:    2.43,
		},
		{
			name: "very high complexity with external dependencies and high risk",
			input: func() model.EstimationInput {
				in := model.DefaultInput(model.RoleBAPMO)
				in.Complexity = model.ComplexityVeryHigh
				in.Dependencies = model.DependenciesExternal
				in.Risk = model.RiskHigh
				return in
			},
			multiplier:     3.08,
			effortBase:     24.64,
			effortWithRisk: 32.032,
			workingDays:    6.41,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := Compute(tt.input())
			require.NoError(t, err)

			assert.Equal(t, tt.multiplier, res.MultiplierProduct)
			assert.Equal(t, tt.effortBase, res.EffortBaseHours)
			assert.Equal(t, tt.effortWithRisk, res.EffortWithRiskHours)
			assert.Equal(t, tt.workingDays, res.WorkingDaysNeeded)
			assert.Nil(t, res.EndDate, "no start date means no end date")
		})
	}
}

func TestCompute_EndDateFromMonday(t *testing.T) {
	t.Parallel()

	in := model.DefaultInput(model.RoleBAPMO)
	start := monday()
	in.StartDate = &start

	res, err := Compute(in)
	require.NoError(t, err)

	require.NotNil(t, res.EndDate)
	assert.Equal(t, 2.03, res.WorkingDaysNeeded)
	assert.Equal(t, 3, res.WholeWorkdays)
	assert.Equal(t, "2024-01-04", res.EndDate.String())
	assert.Equal(t, time.Thursday, res.EndDate.Weekday())
}

func TestCompute_EndDateRoundsPartialDaysUp(t *testing.T) {
	t.Parallel()

	in := model.DefaultInput(model.RoleBAPMO)
	in.BaseEffortHours = 7
	start := monday()
	in.StartDate = &start

	res, err := Compute(in)
	require.NoError(t, err)

	// 7 x 1.1 x 1.15 / 5 = 1.771
	assert.Equal(t, 1.78, res.WorkingDaysNeeded)
	require.NotNil(t, res.EndDate)
	assert.Equal(t, "2024-01-03", res.EndDate.String())
	assert.Equal(t, time.Wednesday, res.EndDate.Weekday())
}

func TestCompute_DeveloperLevelIgnoredForBAPMO(t *testing.T) {
	t.Parallel()

	for _, level := range []model.DeveloperLevel{model.DeveloperLevelSenior, model.DeveloperLevelMid, model.DeveloperLevelJunior, ""} {
		in := model.DefaultInput(model.RoleBAPMO)
		in.DeveloperLevel = level

		res, err := Compute(in)
		require.NoError(t, err)
		assert.Equal(t, 1.1, res.MultiplierProduct, "level %q must not apply", level)
	}
}

func TestCompute_RiskBufferIsAppliedOnTop(t *testing.T) {
	t.Parallel()

	expected := map[model.RiskLevel]float64{
		model.RiskLow:    0.05,
		model.RiskMedium: 0.15,
		model.RiskHigh:   0.30,
	}

	for level, buffer := range expected {
		in := model.DefaultInput(model.RoleDeveloper)
		in.Complexity = model.ComplexityHigh
		in.Risk = level

		res, err := Compute(in)
		require.NoError(t, err)

		assert.Equal(t, buffer, res.RiskBuffer)
		assert.InDelta(t, res.EffortBaseHours*(1+buffer), res.EffortWithRiskHours, 1e-9)
	}
}

func TestCompute_MultiplierIsProductOfSelectedFactors(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	engine := NewEngine()

	for i := 0; i < 500; i++ {
		in := model.DefaultInput(model.Roles[rng.Intn(len(model.Roles))])
		expected := 1.0

		for _, c := range model.Categories {
			opts := model.Options(c)
			opt := opts[rng.Intn(len(opts))]
			require.NoError(t, in.SetFactor(c, opt.Label))

			if c == model.CategoryDeveloperLevel && in.Role != model.RoleDeveloper {
				continue
			}
			expected *= opt.Value()
		}

		res, err := engine.Compute(in)
		require.NoError(t, err)
		assert.InDelta(t, expected, res.MultiplierProduct, 1e-9)

		breakdown, err := engine.Breakdown(in)
		require.NoError(t, err)
		require.Len(t, breakdown, len(model.Categories))

		product := 1.0
		for _, c := range breakdown {
			product *= c.Multiplier
		}
		assert.InDelta(t, res.MultiplierProduct, product, 1e-9)
	}
}

func TestCompute_WorkingDaysNeverUnderstate(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		in := model.DefaultInput(model.RoleBAPMO)
		in.BaseEffortHours = 0.5 + rng.Float64()*200
		in.FocusHoursPerDay = 0.5 + rng.Float64()*9.5
		in.Risk = model.RiskLevels[rng.Intn(len(model.RiskLevels))]

		res, err := Compute(in)
		require.NoError(t, err)

		quotient := res.EffortWithRiskHours / in.FocusHoursPerDay
		assert.GreaterOrEqual(t, res.WorkingDaysNeeded+1e-9, quotient)
		assert.Less(t, res.WorkingDaysNeeded-quotient, 0.01+1e-9)
		assert.False(t, math.IsNaN(res.WorkingDaysNeeded) || math.IsInf(res.WorkingDaysNeeded, 0))
	}
}

func TestCompute_EndDateSkipsWeekends(t *testing.T) {
	t.Parallel()

	for offset := 0; offset < 14; offset++ {
		start := monday().AddDays(offset)

		for hours := 1.0; hours <= 60; hours += 3.5 {
			in := model.DefaultInput(model.RoleDeveloper)
			in.BaseEffortHours = hours
			in.StartDate = &start

			res, err := Compute(in)
			require.NoError(t, err)
			require.NotNil(t, res.EndDate)

			end := *res.EndDate
			assert.False(t, end.IsWeekend(), "end date %s falls on a weekend", end)
			assert.Equal(t, int(math.Ceil(res.WorkingDaysNeeded)), res.WholeWorkdays)

			weekdays := 0
			for d := start.AddDays(1); !end.Before(d); d = d.AddDays(1) {
				if !d.IsWeekend() {
					weekdays++
				}
			}
			assert.Equal(t, res.WholeWorkdays, weekdays)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	in := model.DefaultInput(model.RoleDeveloper)
	in.Complexity = model.ComplexityHigh
	in.LOCBucket = model.LOCBucketOver700
	in.Availability = model.Availability25
	start := monday()
	in.StartDate = &start

	first, err := Compute(in)
	require.NoError(t, err)
	second, err := Compute(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(in *model.EstimationInput)
		field  string
	}{
		{"unknown complexity", func(in *model.EstimationInput) { in.Complexity = "Extreme" }, "Complexity"},
		{"empty task type", func(in *model.EstimationInput) { in.TaskType = "" }, "TaskType"},
		{"unknown LOC bucket", func(in *model.EstimationInput) { in.LOCBucket = "100-300" }, "LOCBucket"},
		{"unknown role", func(in *model.EstimationInput) { in.Role = "Admin" }, "role"},
		{"unknown risk", func(in *model.EstimationInput) { in.Risk = "Extreme" }, "risk"},
		{"developer without level", func(in *model.EstimationInput) {
			in.Role = model.RoleDeveloper
			in.DeveloperLevel = ""
		}, "DeveloperLevel"},
		{"invalid level for BA/PMO", func(in *model.EstimationInput) { in.DeveloperLevel = "Principal" }, "DeveloperLevel"},
		{"zero base effort", func(in *model.EstimationInput) { in.BaseEffortHours = 0 }, "baseEffortHours"},
		{"negative base effort", func(in *model.EstimationInput) { in.BaseEffortHours = -4 }, "baseEffortHours"},
		{"zero focus hours", func(in *model.EstimationInput) { in.FocusHoursPerDay = 0 }, "focusHoursPerDay"},
		{"NaN focus hours", func(in *model.EstimationInput) { in.FocusHoursPerDay = math.NaN() }, "focusHoursPerDay"},
		{"vanishing focus hours", func(in *model.EstimationInput) {
			start := monday()
			in.StartDate = &start
			in.FocusHoursPerDay = 1e-300
		}, "focusHoursPerDay"},
		{"huge base effort", func(in *model.EstimationInput) { in.BaseEffortHours = 1e308 }, "baseEffortHours"},
		{"huge base effort at very high complexity", func(in *model.EstimationInput) {
			in.BaseEffortHours = math.MaxFloat64
			in.Complexity = model.ComplexityVeryHigh
		}, "baseEffortHours"},
		{"base effort beyond a century", func(in *model.EstimationInput) { in.BaseEffortHours = 5e7 }, "baseEffortHours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := model.DefaultInput(model.RoleBAPMO)
			tt.mutate(&in)

			res, err := Compute(in)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
			assert.Equal(t, model.EstimationResult{}, res)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestCompute_DegradePolicy(t *testing.T) {
	t.Parallel()

	engine := NewEngine(WithPolicy(model.PolicyDegrade))
	start := monday()

	t.Run("zero focus hours", func(t *testing.T) {
		in := model.DefaultInput(model.RoleBAPMO)
		in.FocusHoursPerDay = 0
		in.StartDate = &start

		res, err := engine.Compute(in)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.WorkingDaysNeeded)
		assert.Equal(t, 10.12, res.EffortWithRiskHours)
		assert.Nil(t, res.EndDate)
	})

	t.Run("negative base effort", func(t *testing.T) {
		in := model.DefaultInput(model.RoleBAPMO)
		in.BaseEffortHours = -3
		in.StartDate = &start

		res, err := engine.Compute(in)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.EffortBaseHours)
		assert.Equal(t, 0.0, res.WorkingDaysNeeded)
		assert.Equal(t, 0, res.WholeWorkdays)
		assert.Nil(t, res.EndDate)
	})

	t.Run("factors are still validated", func(t *testing.T) {
		in := model.DefaultInput(model.RoleBAPMO)
		in.MeetingsLoad = "Constant"

		_, err := engine.Compute(in)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, model.ErrUnknownOption)
	})
}

func TestNewEngine_DefaultsToReject(t *testing.T) {
	t.Parallel()

	in := model.DefaultInput(model.RoleBAPMO)
	in.FocusHoursPerDay = 0

	for _, engine := range []*Engine{NewEngine(), NewEngine(WithPolicy(""))} {
		_, err := engine.Compute(in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	_, err := NewEngine(WithPolicy(model.PolicyDegrade)).Compute(in)
	assert.NoError(t, err)
}

func TestCompute_LargestEstimate(t *testing.T) {
	t.Parallel()

	start := monday()
	in := model.DefaultInput(model.RoleBAPMO)
	in.StartDate = &start
	in.FocusHoursPerDay = 1
	in.BaseEffortHours = 20000

	res, err := Compute(in)
	require.NoError(t, err)

	assert.InDelta(t, 25300, res.EffortWithRiskHours, 1e-6)
	assert.Equal(t, 25300, res.WholeWorkdays)
	assert.LessOrEqual(t, res.WholeWorkdays, MaxWorkingDays)
	require.NotNil(t, res.EndDate)

	weekdays := 0
	for d := start.AddDays(1); !res.EndDate.Before(d); d = d.AddDays(1) {
		if !d.IsWeekend() {
			weekdays++
		}
	}
	assert.Equal(t, res.WholeWorkdays, weekdays)
}
