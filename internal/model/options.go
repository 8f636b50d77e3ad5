package model

// TaskType is the kind of work item
type TaskType string

const (
	TaskTypeFeature  TaskType = "Feature"
	TaskTypeBug      TaskType = "Bug"
	TaskTypeRefactor TaskType = "Refactor"
	TaskTypeSpike    TaskType = "Spike"
)

// IsValid returns true if the task type names an option of the factor table
func (v TaskType) IsValid() bool { return isOption(CategoryTaskType, string(v)) }

// Complexity is the intrinsic difficulty of the work item
type Complexity string

const (
	ComplexitySimple   Complexity = "Simple"
	ComplexityMedium   Complexity = "Medium"
	ComplexityHigh     Complexity = "High"
	ComplexityVeryHigh Complexity = "Very High"
)

// IsValid returns true if the complexity names an option of the factor table
func (v Complexity) IsValid() bool { return isOption(CategoryComplexity, string(v)) }

// CodeImpact describes how the work item touches the code base
type CodeImpact string

const (
	CodeImpactModify   CodeImpact = "Modify"
	CodeImpactNew      CodeImpact = "New"
	CodeImpactBugFix   CodeImpact = "BugFix"
	CodeImpactRefactor CodeImpact = "Refactor"
	CodeImpactSpike    CodeImpact = "Spike"
)

// IsValid returns true if the code impact names an option of the factor table
func (v CodeImpact) IsValid() bool { return isOption(CategoryCodeImpact, string(v)) }

// Dependencies describes the external coupling of the work item
type Dependencies string

const (
	DependenciesNone     Dependencies = "None"
	DependenciesFew      Dependencies = "Few"
	DependenciesMany     Dependencies = "Many"
	DependenciesExternal Dependencies = "External"
)

// IsValid returns true if the dependencies value names an option of the factor table
func (v Dependencies) IsValid() bool { return isOption(CategoryDependencies, string(v)) }

// TechNovelty describes how familiar the team is with the technology involved
type TechNovelty string

const (
	TechNoveltyFamiliar TechNovelty = "Familiar"
	TechNoveltyMixed    TechNovelty = "Mixed"
	TechNoveltyNew      TechNovelty = "New"
)

// IsValid returns true if the tech novelty names an option of the factor table
func (v TechNovelty) IsValid() bool { return isOption(CategoryTechNovelty, string(v)) }

// MeetingsLoad is the share of the day lost to meetings
type MeetingsLoad string

const (
	MeetingsLoadLow    MeetingsLoad = "Low"
	MeetingsLoadMedium MeetingsLoad = "Medium"
	MeetingsLoadHigh   MeetingsLoad = "High"
)

// IsValid returns true if the meetings load names an option of the factor table
func (v MeetingsLoad) IsValid() bool { return isOption(CategoryMeetingsLoad, string(v)) }

// DeveloperLevel is the seniority of the developer doing the work
type DeveloperLevel string

const (
	DeveloperLevelSenior DeveloperLevel = "Senior"
	DeveloperLevelMid    DeveloperLevel = "Mid"
	DeveloperLevelJunior DeveloperLevel = "Junior"
)

// IsValid returns true if the developer level names an option of the factor table
func (v DeveloperLevel) IsValid() bool { return isOption(CategoryDeveloperLevel, string(v)) }

// LOCBucket is the expected size of the change in lines of code
type LOCBucket string

const (
	LOCBucketUnder100 LOCBucket = "<100"
	LOCBucket100To300 LOCBucket = "100–300"
	LOCBucket300To700 LOCBucket = "300–700"
	LOCBucketOver700  LOCBucket = ">700"
)

// IsValid returns true if the LOC bucket names an option of the factor table
func (v LOCBucket) IsValid() bool { return isOption(CategoryLOCBucket, string(v)) }

// Availability is the share of capacity the assignee can give to the work item
type Availability string

const (
	Availability100 Availability = "100%"
	Availability50  Availability = "50%"
	Availability25  Availability = "25%"
)

// IsValid returns true if the availability names an option of the factor table
func (v Availability) IsValid() bool { return isOption(CategoryAvailability, string(v)) }

func isOption(c Category, label string) bool {
	_, err := LookupOption(c, label)
	return err == nil
}

// ParseFactor parses a label for any category and returns its canonical form
func ParseFactor(c Category, s string) (string, error) {
	return parseOption(c, s)
}
