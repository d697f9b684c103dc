package handler

import (
	"time"

	"ssinval/internal/ssin/service"
)

// ValidateResponse describes one validated SSIN.
type ValidateResponse struct {
	Input     string `json:"input"`
	Valid     bool   `json:"valid"`
	Malformed bool   `json:"malformed,omitempty"`
	Canonical string `json:"canonical,omitempty"`
	Formatted string `json:"formatted,omitempty"`
	Kind      string `json:"kind"`
	BISOffset int    `json:"bis_offset,omitempty"`
}

// BatchValidateResponse is the HTTP response for POST /ssin/validate/batch.
type BatchValidateResponse struct {
	Results    []*ValidateResponse `json:"results"`
	ValidCount int                 `json:"valid_count"`
	CheckedAt  time.Time           `json:"checked_at"`
}

// FromOutcome converts a service outcome to an HTTP response.
func FromOutcome(o *service.Outcome) *ValidateResponse {
	return &ValidateResponse{
		Input:     o.Input,
		Valid:     o.Valid,
		Malformed: o.Malformed,
		Canonical: o.Canonical,
		Formatted: o.Formatted,
		Kind:      string(o.Kind),
		BISOffset: o.BISOffset,
	}
}

// FromOutcomes converts a batch of outcomes.
func FromOutcomes(outcomes []*service.Outcome, checkedAt time.Time) *BatchValidateResponse {
	resp := &BatchValidateResponse{
		Results:   make([]*ValidateResponse, 0, len(outcomes)),
		CheckedAt: checkedAt,
	}
	for _, o := range outcomes {
		if o.Valid {
			resp.ValidCount++
		}
		resp.Results = append(resp.Results, FromOutcome(o))
	}
	return resp
}
