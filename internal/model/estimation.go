package model

import (
	"time"

	"github.com/google/uuid"
)

// EstimateID is a unique identifier for a saved estimate
type EstimateID string

// Estimate is a named estimation input saved to a .estimate.yml file
type Estimate struct {
	ID          EstimateID      `yaml:"id"`
	Label       string          `yaml:"label"`
	Description string          `yaml:"description"`
	CreatedAt   time.Time       `yaml:"createdAt"`
	UpdatedAt   time.Time       `yaml:"updatedAt"`
	Input       EstimationInput `yaml:"input"`
}

// NewEstimate creates a new estimate with the given label and input
func NewEstimate(label string, input EstimationInput) *Estimate {
	now := time.Now()
	return &Estimate{
		ID:          EstimateID(generateID()),
		Label:       label,
		Description: "",
		CreatedAt:   now,
		UpdatedAt:   now,
		Input:       input,
	}
}

// SetInput replaces the estimate input
func (e *Estimate) SetInput(input EstimationInput) {
	e.Input = input
	e.UpdatedAt = time.Now()
}

func generateID() string {
	return uuid.New().String()[:8]
}
