package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputOverrides_Apply(t *testing.T) {
	in := DefaultInput(RoleBAPMO)
	base := 12.5

	err := InputOverrides{
		Role:            "developer",
		Complexity:      "very high",
		LOCBucket:       "300-700",
		DeveloperLevel:  "senior",
		Availability:    "50",
		Risk:            "low",
		BaseEffortHours: &base,
		StartDate:       "2024-02-05",
	}.Apply(&in)
	require.NoError(t, err)

	assert.Equal(t, RoleDeveloper, in.Role)
	assert.Equal(t, ComplexityVeryHigh, in.Complexity)
	assert.Equal(t, LOCBucket300To700, in.LOCBucket)
	assert.Equal(t, DeveloperLevelSenior, in.DeveloperLevel)
	assert.Equal(t, Availability50, in.Availability)
	assert.Equal(t, RiskLow, in.Risk)
	assert.Equal(t, 12.5, in.BaseEffortHours)
	assert.Equal(t, 5.0, in.FocusHoursPerDay)
	require.NotNil(t, in.StartDate)
	assert.Equal(t, "2024-02-05", in.StartDate.String())
	assert.Equal(t, TaskTypeFeature, in.TaskType)
}

func TestInputOverrides_ApplyIsAtomic(t *testing.T) {
	in := DefaultInput(RoleBAPMO)
	before := in

	err := InputOverrides{Complexity: "High", TechNovelty: "alien"}.Apply(&in)
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Equal(t, before, in)

	err = InputOverrides{StartDate: "tomorrow"}.Apply(&in)
	assert.ErrorContains(t, err, "start date")
	assert.Equal(t, before, in)
}
