package model

// EstimationResult holds the metrics derived from an EstimationInput
type EstimationResult struct {
	Role                Role    `yaml:"role" json:"role"`
	MultiplierProduct   float64 `yaml:"multiplierProduct" json:"multiplierProduct"`
	EffortBaseHours     float64 `yaml:"effortBaseHours" json:"effortBaseHours"`
	RiskBuffer          float64 `yaml:"riskBuffer" json:"riskBuffer"`
	EffortWithRiskHours float64 `yaml:"effortWithRiskHours" json:"effortWithRiskHours"`
	// WorkingDaysNeeded is ceiled at two decimals.
	WorkingDaysNeeded float64 `yaml:"workingDaysNeeded" json:"workingDaysNeeded"`
	// WholeWorkdays is the whole number of workdays used for the end date projection.
	WholeWorkdays int   `yaml:"wholeWorkdays" json:"wholeWorkdays"`
	EndDate       *Date `yaml:"endDate,omitempty" json:"endDate,omitempty"`
}

// FactorContribution is the multiplier contributed by one factor category
type FactorContribution struct {
	Category   Category `yaml:"category" json:"category"`
	Option     string   `yaml:"option" json:"option"`
	Multiplier float64  `yaml:"multiplier" json:"multiplier"`
	// Applied is false when the factor is replaced by a neutral multiplier.
	Applied bool `yaml:"applied" json:"applied"`
}
