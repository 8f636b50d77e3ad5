package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "2024-01-01", d.String())
	assert.False(t, d.IsWeekend())
	assert.True(t, d.AddDays(5).IsWeekend())

	_, err = ParseDate("01/01/2024")
	assert.Error(t, err)
}

func TestDate_Codecs(t *testing.T) {
	start := NewDate(2024, time.March, 15)
	in := DefaultInput(RoleBAPMO)
	in.StartDate = &start

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"startDate":"2024-03-15"`)

	var decoded EstimationInput
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.StartDate)
	assert.Equal(t, start, *decoded.StartDate)

	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2024-03-15")

	var fromYAML EstimationInput
	require.NoError(t, yaml.Unmarshal([]byte("role: Developer\nstartDate: 2024-03-15\n"), &fromYAML))
	require.NotNil(t, fromYAML.StartDate)
	assert.Equal(t, "2024-03-15", fromYAML.StartDate.String())
	assert.Equal(t, RoleDeveloper, fromYAML.Role)
}
