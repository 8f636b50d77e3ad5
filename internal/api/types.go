package api

import (
	"net/http"

	"github.com/bornholm/effortcalc/internal/format"
	"github.com/bornholm/effortcalc/internal/model"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// EstimateRequest holds the selections overriding the configured defaults
type EstimateRequest struct {
	model.InputOverrides
}

func (e *EstimateRequest) Bind(r *http.Request) error {
	return validate.Struct(e)
}

type HealthReply struct {
	Status string `json:"status"`
}

func (h HealthReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type ConfigReply struct {
	*model.Config
}

func (c ConfigReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type OptionReply struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

type CategoryReply struct {
	Name    model.Category `json:"name"`
	Label   string         `json:"label"`
	Options []OptionReply  `json:"options"`
	// Roles lists the roles the category applies to, empty meaning all.
	Roles []model.Role `json:"roles,omitempty"`
}

type RiskReply struct {
	Level  model.RiskLevel `json:"level"`
	Buffer float64         `json:"buffer"`
}

type FactorsReply struct {
	Categories []CategoryReply `json:"categories"`
	Risks      []RiskReply     `json:"risks"`
}

// NewFactorsReply describes the factor and risk tables
func NewFactorsReply() FactorsReply {
	reply := FactorsReply{}

	for _, c := range model.Categories {
		cat := CategoryReply{Name: c, Label: c.Label()}
		for _, o := range model.Options(c) {
			cat.Options = append(cat.Options, OptionReply{Label: o.Label, Multiplier: o.Value()})
		}
		if c == model.CategoryDeveloperLevel {
			cat.Roles = []model.Role{model.RoleDeveloper}
		}
		reply.Categories = append(reply.Categories, cat)
	}

	for _, r := range model.RiskLevels {
		b, _ := r.Buffer()
		reply.Risks = append(reply.Risks, RiskReply{Level: r, Buffer: b.InexactFloat64()})
	}

	return reply
}

func (f FactorsReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type EstimateReply struct {
	Input   model.EstimationInput      `json:"input"`
	Factors []model.FactorContribution `json:"factors"`
	Result  model.EstimationResult     `json:"result"`
	Fields  []format.Field             `json:"fields"`
}

func (e EstimateReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// ErrResponse is the error payload of every failed request
type ErrResponse struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status"`
	ErrorText      string `json:"error,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrBadRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrInvalidInput(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Invalid input.",
		ErrorText:      err.Error(),
	}
}

func ErrInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal error.",
		ErrorText:      err.Error(),
	}
}
