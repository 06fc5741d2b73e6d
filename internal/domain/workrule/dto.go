package workrule

import (
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/validator"
)

type ResolveRuleRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (r *ResolveRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TemplateResponse struct {
	StandardStart string  `json:"standard_start"`
	StandardEnd   string  `json:"standard_end"`
	BreakStart    *string `json:"break_start,omitempty"`
	BreakEnd      *string `json:"break_end,omitempty"`
	SpansMidnight bool    `json:"spans_midnight"`
}

type WorkplaceResponse struct {
	Name         string  `json:"name,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
}

type ResolveRuleResponse struct {
	Date      string             `json:"date"`
	Template  TemplateResponse   `json:"template"`
	Workplace *WorkplaceResponse `json:"workplace,omitempty"`
}

func ToTemplateResponse(t Template) TemplateResponse {
	resp := TemplateResponse{
		StandardStart: t.StandardStart.Format("15:04"),
		StandardEnd:   t.StandardEnd.Format("15:04"),
		SpansMidnight: t.SpansMidnight(),
	}
	if t.BreakStart != nil && t.BreakEnd != nil {
		bs := t.BreakStart.Format("15:04")
		be := t.BreakEnd.Format("15:04")
		resp.BreakStart = &bs
		resp.BreakEnd = &be
	}
	return resp
}

func ToWorkplaceResponse(w *Workplace) *WorkplaceResponse {
	if w == nil {
		return nil
	}
	return &WorkplaceResponse{
		Name:         w.Name,
		Latitude:     w.Latitude,
		Longitude:    w.Longitude,
		RadiusMeters: w.RadiusMeters,
	}
}
