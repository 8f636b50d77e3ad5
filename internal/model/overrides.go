package model

import "fmt"

// InputOverrides holds user supplied labels to apply on top of an input.
// Empty fields and nil hours leave the input unchanged.
type InputOverrides struct {
	Role             string   `json:"role,omitempty"`
	TaskType         string   `json:"taskType,omitempty"`
	Complexity       string   `json:"complexity,omitempty"`
	CodeImpact       string   `json:"codeImpact,omitempty"`
	Dependencies     string   `json:"dependencies,omitempty"`
	TechNovelty      string   `json:"techNovelty,omitempty"`
	MeetingsLoad     string   `json:"meetingsLoad,omitempty"`
	DeveloperLevel   string   `json:"developerLevel,omitempty"`
	LOCBucket        string   `json:"locBucket,omitempty"`
	Availability     string   `json:"availability,omitempty"`
	Risk             string   `json:"risk,omitempty"`
	BaseEffortHours  *float64 `json:"baseEffortHours,omitempty"`
	FocusHoursPerDay *float64 `json:"focusHoursPerDay,omitempty"`
	StartDate        string   `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Apply parses the overrides and stores them in the input.
// The input is left untouched when an override is invalid.
func (o InputOverrides) Apply(in *EstimationInput) error {
	next := *in

	if o.Role != "" {
		role, err := ParseRole(o.Role)
		if err != nil {
			return err
		}
		next.Role = role
	}

	factors := []struct {
		category Category
		value    string
	}{
		{CategoryTaskType, o.TaskType},
		{CategoryComplexity, o.Complexity},
		{CategoryCodeImpact, o.CodeImpact},
		{CategoryDependencies, o.Dependencies},
		{CategoryTechNovelty, o.TechNovelty},
		{CategoryMeetingsLoad, o.MeetingsLoad},
		{CategoryDeveloperLevel, o.DeveloperLevel},
		{CategoryLOCBucket, o.LOCBucket},
		{CategoryAvailability, o.Availability},
	}
	for _, f := range factors {
		if f.value == "" {
			continue
		}
		if err := next.SetFactor(f.category, f.value); err != nil {
			return err
		}
	}

	if o.Risk != "" {
		risk, err := ParseRiskLevel(o.Risk)
		if err != nil {
			return err
		}
		next.Risk = risk
	}

	if o.BaseEffortHours != nil {
		next.BaseEffortHours = *o.BaseEffortHours
	}
	if o.FocusHoursPerDay != nil {
		next.FocusHoursPerDay = *o.FocusHoursPerDay
	}

	if o.StartDate != "" {
		start, err := ParseDate(o.StartDate)
		if err != nil {
			return fmt.Errorf("start date: %w", err)
		}
		next.StartDate = &start
	}

	*in = next
	return nil
}
