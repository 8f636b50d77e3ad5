package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Role is the estimator persona
type Role string

const (
	RoleBAPMO     Role = "BA/PMO"
	RoleDeveloper Role = "Developer"
)

// Roles lists the known personas
var Roles = []Role{RoleBAPMO, RoleDeveloper}

// ParseRole parses a persona label. "ba", "pmo" and "dev" are accepted as shorthands.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ba/pmo", "ba", "pmo", "ba-pmo":
		return RoleBAPMO, nil
	case "developer", "dev":
		return RoleDeveloper, nil
	}
	return "", fmt.Errorf("%w '%s' for role (valid: %s, %s)", ErrUnknownOption, s, RoleBAPMO, RoleDeveloper)
}

// IsValid returns true if the role is a known persona
func (r Role) IsValid() bool {
	return r == RoleBAPMO || r == RoleDeveloper
}

// RiskLevel is the estimation uncertainty of the work item
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskLevels lists the risk levels in display order
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

var riskTable = map[RiskLevel]decimal.Decimal{
	RiskLow:    decimal.RequireFromString("0.05"),
	RiskMedium: decimal.RequireFromString("0.15"),
	RiskHigh:   decimal.RequireFromString("0.30"),
}

// ParseRiskLevel parses a risk level label
func ParseRiskLevel(s string) (RiskLevel, error) {
	for _, r := range RiskLevels {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w '%s' for risk level (valid: Low, Medium, High)", ErrUnknownOption, s)
}

// IsValid returns true if the risk level is present in the risk table
func (r RiskLevel) IsValid() bool {
	_, ok := riskTable[r]
	return ok
}

// Buffer returns the fractional buffer added on top of the effort for the risk level
func (r RiskLevel) Buffer() (decimal.Decimal, error) {
	b, ok := riskTable[r]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w '%s' for risk level", ErrUnknownOption, r)
	}
	return b, nil
}

// NonPositivePolicy selects how non-positive base effort or focus hours are handled
type NonPositivePolicy string

const (
	// PolicyReject fails the computation with an invalid input error
	PolicyReject NonPositivePolicy = "reject"
	// PolicyDegrade returns a zero working days result without an end date
	PolicyDegrade NonPositivePolicy = "degrade"
)

// ParseNonPositivePolicy parses a policy name
func ParseNonPositivePolicy(s string) (NonPositivePolicy, error) {
	switch p := NonPositivePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyReject, PolicyDegrade:
		return p, nil
	}
	return "", fmt.Errorf("%w '%s' for policy (valid: reject, degrade)", ErrUnknownOption, s)
}
