package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorTable_Multipliers(t *testing.T) {
	expected := map[Category]map[string]float64{
		CategoryTaskType:       {"Feature": 1.0, "Bug": 1.1, "Refactor": 0.9, "Spike": 1.1},
		CategoryComplexity:     {"Simple": 0.75, "Medium": 1.0, "High": 1.5, "Very High": 2.0},
		CategoryCodeImpact:     {"Modify": 1.0, "New": 1.3, "BugFix": 1.1, "Refactor": 0.9, "Spike": 1.2},
		CategoryDependencies:   {"None": 0.9, "Few": 1.0, "Many": 1.2, "External": 1.4},
		CategoryTechNovelty:    {"Familiar": 0.9, "Mixed": 1.1, "New": 1.3},
		CategoryMeetingsLoad:   {"Low": 0.9, "Medium": 1.0, "High": 1.2},
		CategoryDeveloperLevel: {"Senior": 0.8, "Mid": 1.0, "Junior": 1.2},
		CategoryLOCBucket:      {"<100": 0.8, "100–300": 1.0, "300–700": 1.3, ">700": 1.6},
		CategoryAvailability:   {"100%": 1.0, "50%": 1.5, "25%": 1.75},
	}

	require.Len(t, Categories, len(expected))

	for _, c := range Categories {
		opts := Options(c)
		require.Len(t, opts, len(expected[c]), "category %s", c)
		for _, o := range opts {
			want, ok := expected[c][o.Label]
			require.True(t, ok, "unexpected option %s/%s", c, o.Label)
			assert.Equal(t, want, o.Value(), "%s/%s", c, o.Label)
			assert.True(t, o.Multiplier.IsPositive())
		}
	}
}

func TestOptions_ReturnsCopy(t *testing.T) {
	opts := Options(CategoryComplexity)
	opts[0].Label = "changed"

	assert.Equal(t, "Simple", Options(CategoryComplexity)[0].Label)
}

func TestLookupOption(t *testing.T) {
	opt, err := LookupOption(CategoryComplexity, "Very High")
	require.NoError(t, err)
	assert.Equal(t, 2.0, opt.Value())

	_, err = LookupOption(CategoryComplexity, "very high")
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = LookupOption("Mood", "Happy")
	assert.Error(t, err)
}

func TestParseFactor_Normalization(t *testing.T) {
	tests := []struct {
		category Category
		input    string
		want     string
	}{
		{CategoryComplexity, "very-high", "Very High"},
		{CategoryComplexity, "VERY_HIGH", "Very High"},
		{CategoryLOCBucket, "100-300", "100–300"},
		{CategoryLOCBucket, "300–700", "300–700"},
		{CategoryLOCBucket, "<100", "<100"},
		{CategoryAvailability, "50", "50%"},
		{CategoryCodeImpact, "bug-fix", "BugFix"},
		{CategoryTaskType, " spike ", "Spike"},
	}

	for _, tt := range tests {
		got, err := ParseFactor(tt.category, tt.input)
		require.NoError(t, err, "%s %q", tt.category, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFactor(CategoryComplexity, "extreme")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Contains(t, err.Error(), "Simple, Medium, High, Very High")
}

func TestTypedOptions_IsValid(t *testing.T) {
	assert.True(t, ComplexityVeryHigh.IsValid())
	assert.True(t, LOCBucket100To300.IsValid())
	assert.False(t, LOCBucket("100-300").IsValid())
	assert.False(t, TaskType("").IsValid())
	assert.True(t, Availability25.IsValid())
	assert.False(t, DeveloperLevel("Principal").IsValid())
}

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{"BA/PMO": RoleBAPMO, "pmo": RoleBAPMO, "Developer": RoleDeveloper, "dev": RoleDeveloper} {
		got, err := ParseRole(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("admin")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestRiskLevel_Buffer(t *testing.T) {
	for level, want := range map[RiskLevel]float64{RiskLow: 0.05, RiskMedium: 0.15, RiskHigh: 0.30} {
		b, err := level.Buffer()
		require.NoError(t, err)
		assert.Equal(t, want, b.InexactFloat64())
	}

	_, err := RiskLevel("Extreme").Buffer()
	assert.ErrorIs(t, err, ErrUnknownOption)

	r, err := ParseRiskLevel("high")
	require.NoError(t, err)
	assert.Equal(t, RiskHigh, r)
}

func TestEstimationInput_SetFactor(t *testing.T) {
	in := DefaultInput(RoleDeveloper)

	require.NoError(t, in.SetFactor(CategoryLOCBucket, ">700"))
	require.NoError(t, in.SetFactor(CategoryDeveloperLevel, "junior"))
	assert.Equal(t, LOCBucketOver700, in.LOCBucket)
	assert.Equal(t, DeveloperLevelJunior, in.DeveloperLevel)
	assert.Equal(t, "Junior", in.Factor(CategoryDeveloperLevel))

	err := in.SetFactor(CategoryAvailability, "75%")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Equal(t, Availability100, in.Availability)
}
