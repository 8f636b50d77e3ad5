package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownOption is returned when a label does not name an option of its category
var ErrUnknownOption = errors.New("unknown option")

// Category is the name of a factor category
type Category string

const (
	CategoryTaskType       Category = "TaskType"
	CategoryComplexity     Category = "Complexity"
	CategoryCodeImpact     Category = "CodeImpact"
	CategoryDependencies   Category = "Dependencies"
	CategoryTechNovelty    Category = "TechNovelty"
	CategoryMeetingsLoad   Category = "MeetingsLoad"
	CategoryDeveloperLevel Category = "DeveloperLevel"
	CategoryLOCBucket      Category = "LOCBucket"
	CategoryAvailability   Category = "AvailabilityFactor"
)

// Categories lists every factor category in display order
var Categories = []Category{
	CategoryTaskType,
	CategoryComplexity,
	CategoryCodeImpact,
	CategoryDependencies,
	CategoryTechNovelty,
	CategoryMeetingsLoad,
	CategoryDeveloperLevel,
	CategoryLOCBucket,
	CategoryAvailability,
}

// Label returns a human readable name for the category
func (c Category) Label() string {
	switch c {
	case CategoryTaskType:
		return "Task Type"
	case CategoryCodeImpact:
		return "Code Impact"
	case CategoryTechNovelty:
		return "Tech Novelty"
	case CategoryMeetingsLoad:
		return "Meetings Load"
	case CategoryDeveloperLevel:
		return "Developer Level"
	case CategoryLOCBucket:
		return "LOC Bucket"
	case CategoryAvailability:
		return "Availability % (capacity)"
	default:
		return string(c)
	}
}

// Option is a selectable value of a factor category with its effort multiplier
type Option struct {
	Label      string
	Multiplier decimal.Decimal
}

// Value returns the multiplier as a float
func (o Option) Value() float64 {
	return o.Multiplier.InexactFloat64()
}

func option(label, multiplier string) Option {
	return Option{Label: label, Multiplier: decimal.RequireFromString(multiplier)}
}

// factorTable is read-only after package initialization.
var factorTable = map[Category][]Option{
	CategoryTaskType: {
		option(string(TaskTypeFeature), "1.0"),
		option(string(TaskTypeBug), "1.1"),
		option(string(TaskTypeRefactor), "0.9"),
		option(string(TaskTypeSpike), "1.1"),
	},
	CategoryComplexity: {
		option(string(ComplexitySimple), "0.75"),
		option(string(ComplexityMedium), "1.0"),
		option(string(ComplexityHigh), "1.5"),
		option(string(ComplexityVeryHigh), "2.0"),
	},
	CategoryCodeImpact: {
		option(string(CodeImpactModify), "1.0"),
		option(string(CodeImpactNew), "1.3"),
		option(string(CodeImpactBugFix), "1.1"),
		option(string(CodeImpactRefactor), "0.9"),
		option(string(CodeImpactSpike), "1.2"),
	},
	CategoryDependencies: {
		option(string(DependenciesNone), "0.9"),
		option(string(DependenciesFew), "1.0"),
		option(string(DependenciesMany), "1.2"),
		option(string(DependenciesExternal), "1.4"),
	},
	CategoryTechNovelty: {
		option(string(TechNoveltyFamiliar), "0.9"),
		option(string(TechNoveltyMixed), "1.1"),
		option(string(TechNoveltyNew), "1.3"),
	},
	CategoryMeetingsLoad: {
		option(string(MeetingsLoadLow), "0.9"),
		option(string(MeetingsLoadMedium), "1.0"),
		option(string(MeetingsLoadHigh), "1.2"),
	},
	CategoryDeveloperLevel: {
		option(string(DeveloperLevelSenior), "0.8"),
		option(string(DeveloperLevelMid), "1.0"),
		option(string(DeveloperLevelJunior), "1.2"),
	},
	CategoryLOCBucket: {
		option(string(LOCBucketUnder100), "0.8"),
		option(string(LOCBucket100To300), "1.0"),
		option(string(LOCBucket300To700), "1.3"),
		option(string(LOCBucketOver700), "1.6"),
	},
	CategoryAvailability: {
		option(string(Availability100), "1.0"),
		option(string(Availability50), "1.5"),
		option(string(Availability25), "1.75"),
	},
}

// Options returns the options of a category in display order
func Options(c Category) []Option {
	opts := factorTable[c]
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}

// OptionLabels returns the option labels of a category in display order
func OptionLabels(c Category) []string {
	opts := factorTable[c]
	labels := make([]string, 0, len(opts))
	for _, o := range opts {
		labels = append(labels, o.Label)
	}
	return labels
}

// LookupOption returns the option of a category with the exact given label
func LookupOption(c Category, label string) (Option, error) {
	opts, ok := factorTable[c]
	if !ok {
		return Option{}, fmt.Errorf("unknown factor category '%s'", c)
	}
	for _, o := range opts {
		if o.Label == label {
			return o, nil
		}
	}
	return Option{}, fmt.Errorf("%w '%s' for %s", ErrUnknownOption, label, c)
}

// parseOption resolves a user supplied label to its canonical form.
// Matching ignores case, spaces, hyphens, underscores and percent signs,
// so "very-high", "100-300" and "50" resolve to "Very High", "100–300" and "50%".
func parseOption(c Category, s string) (string, error) {
	needle := normalizeLabel(s)
	for _, o := range factorTable[c] {
		if normalizeLabel(o.Label) == needle {
			return o.Label, nil
		}
	}
	return "", fmt.Errorf("%w '%s' for %s (valid: %s)", ErrUnknownOption, s, c, strings.Join(OptionLabels(c), ", "))
}

var labelReplacer = strings.NewReplacer(" ", "", "-", "", "–", "", "_", "", "%", "")

func normalizeLabel(s string) string {
	return labelReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
