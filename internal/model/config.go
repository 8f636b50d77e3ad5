package model

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config represents the application configuration stored in .effortcalc.yml
type Config struct {
	Persona           Role              `yaml:"persona" json:"persona" validate:"required,oneof=BA/PMO Developer"`
	NonPositivePolicy NonPositivePolicy `yaml:"nonPositivePolicy" json:"nonPositivePolicy" validate:"required,oneof=reject degrade"`
	Defaults          InputDefaults     `yaml:"defaults" json:"defaults"`
}

// InputDefaults are the values pre-filled in new estimation inputs
type InputDefaults struct {
	BaseEffortHours  float64        `yaml:"baseEffortHours" json:"baseEffortHours" validate:"gt=0"`
	FocusHoursPerDay float64        `yaml:"focusHoursPerDay" json:"focusHoursPerDay" validate:"gt=0,lte=24"`
	DeveloperLevel   DeveloperLevel `yaml:"developerLevel" json:"developerLevel" validate:"required,oneof=Senior Mid Junior"`
	Availability     Availability   `yaml:"availability" json:"availability" validate:"required,oneof=100% 50% 25%"`
	Risk             RiskLevel      `yaml:"risk" json:"risk" validate:"required,oneof=Low Medium High"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	in := DefaultInput(RoleBAPMO)
	return &Config{
		Persona:           RoleBAPMO,
		NonPositivePolicy: PolicyReject,
		Defaults: InputDefaults{
			BaseEffortHours:  in.BaseEffortHours,
			FocusHoursPerDay: in.FocusHoursPerDay,
			DeveloperLevel:   in.DeveloperLevel,
			Availability:     in.Availability,
			Risk:             in.Risk,
		},
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// GetPolicy returns the configured policy or the default one
func (c *Config) GetPolicy() NonPositivePolicy {
	if c.NonPositivePolicy == "" {
		return PolicyReject
	}
	return c.NonPositivePolicy
}

// GetPersona returns the configured persona or BA/PMO
func (c *Config) GetPersona() Role {
	if !c.Persona.IsValid() {
		return RoleBAPMO
	}
	return c.Persona
}

// NewInput returns an estimation input pre-filled for the given role.
// An empty role falls back to the configured persona.
func (c *Config) NewInput(role Role) EstimationInput {
	if role == "" {
		role = c.GetPersona()
	}

	in := DefaultInput(role)
	if c.Defaults.BaseEffortHours > 0 {
		in.BaseEffortHours = c.Defaults.BaseEffortHours
	}
	if c.Defaults.FocusHoursPerDay > 0 {
		in.FocusHoursPerDay = c.Defaults.FocusHoursPerDay
	}
	if c.Defaults.DeveloperLevel.IsValid() {
		in.DeveloperLevel = c.Defaults.DeveloperLevel
	}
	if c.Defaults.Availability.IsValid() {
		in.Availability = c.Defaults.Availability
	}
	if c.Defaults.Risk.IsValid() {
		in.Risk = c.Defaults.Risk
	}

	return in
}
