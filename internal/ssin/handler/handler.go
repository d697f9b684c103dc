package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ssinval/internal/ssin/service"
	dErrors "ssinval/pkg/domain-errors"
	"ssinval/pkg/platform/httputil"
	"ssinval/pkg/requestcontext"
)

// Service defines the interface for SSIN validation operations.
type Service interface {
	Validate(ctx context.Context, raw string) (*service.Outcome, error)
	ValidateBatch(ctx context.Context, raws []string) ([]*service.Outcome, error)
}

// Handler wires SSIN endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an SSIN handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts SSIN endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/ssin/validate", h.HandleValidate)
	r.Post("/ssin/validate/batch", h.HandleValidateBatch)
	r.Get("/ssin/{ssin}/validity", h.HandleValidity)
}

// HandleValidate handles POST /ssin/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	h.validateOne(w, r, req.SSIN)
}

// HandleValidity handles GET /ssin/{ssin}/validity requests.
func (h *Handler) HandleValidity(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "ssin")
	if len(raw) > maxInputLength {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "ssin must be at most 32 characters"))
		return
	}
	h.validateOne(w, r, raw)
}

func (h *Handler) validateOne(w http.ResponseWriter, r *http.Request, raw string) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	outcome, err := h.service.Validate(ctx, raw)
	if err != nil {
		h.logger.ErrorContext(ctx, "ssin validation failed",
			"request_id", requestID,
			"client_ip", requestcontext.ClientIP(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "ssin validated",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"user_agent", requestcontext.UserAgent(ctx),
		"valid", outcome.Valid,
		"kind", outcome.Kind,
	)

	httputil.WriteJSON(w, http.StatusOK, FromOutcome(outcome))
}

// HandleValidateBatch handles POST /ssin/validate/batch requests.
func (h *Handler) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcomes, err := h.service.ValidateBatch(ctx, req.SSINs)
	if err != nil {
		h.logger.ErrorContext(ctx, "ssin batch validation failed",
			"request_id", requestID,
			"client_ip", requestcontext.ClientIP(ctx),
			"batch_size", len(req.SSINs),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := FromOutcomes(outcomes, requestcontext.Now(ctx))
	h.logger.InfoContext(ctx, "ssin batch validated",
		"request_id", requestID,
		"client_ip", requestcontext.ClientIP(ctx),
		"user_agent", requestcontext.UserAgent(ctx),
		"batch_size", len(outcomes),
		"valid_count", resp.ValidCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, resp)
}
