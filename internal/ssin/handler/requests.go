package handler

import (
	"strings"

	dErrors "ssinval/pkg/domain-errors"
)

// maxInputLength bounds a single raw SSIN; the display layout is 15 bytes.
const maxInputLength = 32

// ValidateRequest is the HTTP request body for POST /ssin/validate.
type ValidateRequest struct {
	SSIN string `json:"ssin"`
}

// Validate implements httputil.Validatable.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.SSIN) > maxInputLength {
		return dErrors.New(dErrors.CodeValidation, "ssin must be at most 32 characters")
	}
	if strings.TrimSpace(r.SSIN) == "" {
		return dErrors.New(dErrors.CodeValidation, "ssin is required")
	}
	return nil
}

// BatchValidateRequest is the HTTP request body for POST /ssin/validate/batch.
type BatchValidateRequest struct {
	SSINs []string `json:"ssins"`
}

// Validate implements httputil.Validatable. The batch size limit is enforced
// by the service, which owns the configured maximum.
func (r *BatchValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.SSINs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "ssins must contain at least one entry")
	}
	for _, s := range r.SSINs {
		if len(s) > maxInputLength {
			return dErrors.New(dErrors.CodeValidation, "each ssin must be at most 32 characters")
		}
	}
	return nil
}
