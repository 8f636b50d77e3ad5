package model

// EstimationInput holds the selections of a single estimation request
type EstimationInput struct {
	Role             Role           `yaml:"role" json:"role"`
	TaskType         TaskType       `yaml:"taskType" json:"taskType"`
	Complexity       Complexity     `yaml:"complexity" json:"complexity"`
	CodeImpact       CodeImpact     `yaml:"codeImpact" json:"codeImpact"`
	Dependencies     Dependencies   `yaml:"dependencies" json:"dependencies"`
	TechNovelty      TechNovelty    `yaml:"techNovelty" json:"techNovelty"`
	MeetingsLoad     MeetingsLoad   `yaml:"meetingsLoad" json:"meetingsLoad"`
	DeveloperLevel   DeveloperLevel `yaml:"developerLevel,omitempty" json:"developerLevel,omitempty"`
	LOCBucket        LOCBucket      `yaml:"locBucket" json:"locBucket"`
	Availability     Availability   `yaml:"availability" json:"availability"`
	Risk             RiskLevel      `yaml:"risk" json:"risk"`
	BaseEffortHours  float64        `yaml:"baseEffortHours" json:"baseEffortHours"`
	FocusHoursPerDay float64        `yaml:"focusHoursPerDay" json:"focusHoursPerDay"`
	StartDate        *Date          `yaml:"startDate,omitempty" json:"startDate,omitempty"`
}

// Selection is the option chosen for one factor category
type Selection struct {
	Category Category
	Option   string
}

// DefaultInput returns the neutral selection set for the given role:
// 8 hours of base effort, 5 focus hours per day and no start date.
func DefaultInput(role Role) EstimationInput {
	return EstimationInput{
		Role:             role,
		TaskType:         TaskTypeFeature,
		Complexity:       ComplexityMedium,
		CodeImpact:       CodeImpactModify,
		Dependencies:     DependenciesFew,
		TechNovelty:      TechNoveltyMixed,
		MeetingsLoad:     MeetingsLoadMedium,
		DeveloperLevel:   DeveloperLevelMid,
		LOCBucket:        LOCBucket100To300,
		Availability:     Availability100,
		Risk:             RiskMedium,
		BaseEffortHours:  8,
		FocusHoursPerDay: 5,
	}
}

// Selections returns the selected option of every factor category, in table order
func (in EstimationInput) Selections() []Selection {
	return []Selection{
		{Category: CategoryTaskType, Option: string(in.TaskType)},
		{Category: CategoryComplexity, Option: string(in.Complexity)},
		{Category: CategoryCodeImpact, Option: string(in.CodeImpact)},
		{Category: CategoryDependencies, Option: string(in.Dependencies)},
		{Category: CategoryTechNovelty, Option: string(in.TechNovelty)},
		{Category: CategoryMeetingsLoad, Option: string(in.MeetingsLoad)},
		{Category: CategoryDeveloperLevel, Option: string(in.DeveloperLevel)},
		{Category: CategoryLOCBucket, Option: string(in.LOCBucket)},
		{Category: CategoryAvailability, Option: string(in.Availability)},
	}
}

// SetFactor parses a label for the given category and stores it in the input
func (in *EstimationInput) SetFactor(c Category, s string) error {
	label, err := ParseFactor(c, s)
	if err != nil {
		return err
	}

	switch c {
	case CategoryTaskType:
		in.TaskType = TaskType(label)
	case CategoryComplexity:
		in.Complexity = Complexity(label)
	case CategoryCodeImpact:
		in.CodeImpact = CodeImpact(label)
	case CategoryDependencies:
		in.Dependencies = Dependencies(label)
	case CategoryTechNovelty:
		in.TechNovelty = TechNovelty(label)
	case CategoryMeetingsLoad:
		in.MeetingsLoad = MeetingsLoad(label)
	case CategoryDeveloperLevel:
		in.DeveloperLevel = DeveloperLevel(label)
	case CategoryLOCBucket:
		in.LOCBucket = LOCBucket(label)
	case CategoryAvailability:
		in.Availability = Availability(label)
	}

	return nil
}

// Factor returns the selected option label of the given category
func (in EstimationInput) Factor(c Category) string {
	for _, s := range in.Selections() {
		if s.Category == c {
			return s.Option
		}
	}
	return ""
}
