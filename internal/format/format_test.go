package format

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newEstimate() *model.Estimate {
	in := model.DefaultInput(model.RoleDeveloper)
	in.DeveloperLevel = model.DeveloperLevelJunior
	start := model.NewDate(2024, time.January, 1)
	in.StartDate = &start
	return model.NewEstimate("Login page", in)
}

func TestResultFields(t *testing.T) {
	estimate := newEstimate()

	res, err := estimator.Compute(estimate.Input)
	require.NoError(t, err)

	fields := ResultFields(estimate.Input, res)
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Label] = f.Value
	}

	assert.Equal(t, "Developer", values["Role"])
	assert.Equal(t, "1.320", values["Multiplier Product"])
	assert.Equal(t, "10.56", values["Effort (Base) – hrs"])
	assert.Equal(t, "15%", values["Risk Buffer"])
	assert.Equal(t, "12.14", values["Effort (With Risk) – hrs"])
	assert.Equal(t, "100% (×1.00)", values["Availability (capacity)"])
	assert.Equal(t, "5.00", values["Focus Hours/Day"])
	assert.Equal(t, "2.43", values["Working Days Needed"])
	assert.Equal(t, "2024-01-04", values["Projected End Date"])
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "2", FormatDays(2))
	assert.Equal(t, "1.84", FormatDays(1.84))
	assert.Equal(t, "0", FormatDays(0))
	assert.Equal(t, "", FormatDate(nil))
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter(estimator.NewEngine()).Format(newEstimate())
	require.NoError(t, err)

	assert.Contains(t, out, "Estimate: Login page")
	assert.Contains(t, out, "Developer Level:")
	assert.Contains(t, out, "Junior (×1.20)")
	assert.Contains(t, out, "Projected End Date:")
	assert.Contains(t, out, "2024-01-04")
}

func TestTextFormatter_BAPMOShowsDeveloperLevelAsNotApplicable(t *testing.T) {
	estimate := model.NewEstimate("", model.DefaultInput(model.RoleBAPMO))

	out, err := NewTextFormatter(estimator.NewEngine()).Format(estimate)
	require.NoError(t, err)

	assert.Contains(t, out, "n/a (×1.00)")
	assert.Contains(t, out, "—")
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdownFormatter(estimator.NewEngine()).Format(newEstimate())
	require.NoError(t, err)

	assert.Contains(t, out, "# Login page")
	assert.Contains(t, out, "| LOC Bucket | 100–300 | ×1.00 |")
	assert.Contains(t, out, "| Risk Level | Medium | +15% |")
	assert.Contains(t, out, "| Working Days Needed | **2.43** |")
}

func TestJSONFormatter(t *testing.T) {
	estimate := newEstimate()

	out, err := NewJSONFormatter(estimator.NewEngine()).Format(estimate)
	require.NoError(t, err)

	var decoded Output
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, string(estimate.ID), decoded.ID)
	assert.Equal(t, 2.43, decoded.Result.WorkingDaysNeeded)
	require.NotNil(t, decoded.Result.EndDate)
	assert.Equal(t, "2024-01-04", decoded.Result.EndDate.String())
	assert.Len(t, decoded.Factors, len(model.Categories))
}

func TestYAMLFormatter(t *testing.T) {
	out, err := NewYAMLFormatter(estimator.NewEngine()).Format(newEstimate())
	require.NoError(t, err)

	var decoded Output
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Login page", decoded.Label)
	assert.Equal(t, 1.32, decoded.Result.MultiplierProduct)
}

func TestFormatters_PropagateInvalidInput(t *testing.T) {
	estimate := newEstimate()
	estimate.Input.BaseEffortHours = 0

	for _, name := range Names {
		f, err := New(name, estimator.NewEngine())
		require.NoError(t, err)

		_, err = f.Format(estimate)
		assert.ErrorIs(t, err, estimator.ErrInvalidInput, "format %s", name)
	}

	_, err := New("html", estimator.NewEngine())
	assert.Error(t, err)
}

func TestFactorCatalogue(t *testing.T) {
	out := FactorCatalogue()

	assert.Contains(t, out, "Complexity: Simple=×0.75 Medium=×1.00 High=×1.50 Very High=×2.00")
	assert.Contains(t, out, "DeveloperLevel: Senior=×0.80 Mid=×1.00 Junior=×1.20 (Developer role only)")
	assert.Contains(t, out, "Low: +5%")
	assert.Contains(t, out, "Medium: +15%")
	assert.Contains(t, out, "High: +30%")
}
