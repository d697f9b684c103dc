package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"ssinval/internal/ssin/metrics"
	dErrors "ssinval/pkg/domain-errors"
	"ssinval/pkg/domain/ssin"
)

const (
	// DefaultMaxBatchSize is used when no WithMaxBatchSize option is given.
	DefaultMaxBatchSize = 100

	batchConcurrency = 8

	tracerName = "ssinval/internal/ssin/service"
)

// Outcome is the result of validating one raw SSIN.
type Outcome struct {
	Input     string
	Canonical string
	Formatted string
	Valid     bool
	Malformed bool
	Kind      ssin.Kind
	BISOffset int
}

// Service validates SSINs on behalf of transports.
type Service struct {
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
	maxBatchSize int
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{
		logger:       slog.New(slog.DiscardHandler),
		tracer:       otel.Tracer(tracerName),
		maxBatchSize: DefaultMaxBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxBatchSize returns the largest batch ValidateBatch accepts.
func (s *Service) MaxBatchSize() int {
	return s.maxBatchSize
}

// Validate parses and validates one raw SSIN. Malformed input is reported as
// an invalid outcome, not an error; the error is non-nil only when ctx is done.
func (s *Service) Validate(ctx context.Context, raw string) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "validation interrupted")
	}

	ctx, span := s.tracer.Start(ctx, "ssin.Validate")
	defer span.End()

	outcome := s.evaluate(ctx, raw)
	span.SetAttributes(
		attribute.Bool("ssin.valid", outcome.Valid),
		attribute.String("ssin.kind", string(outcome.Kind)),
	)
	return outcome, nil
}

// ValidateBatch validates raws concurrently. Outcomes keep the input order.
func (s *Service) ValidateBatch(ctx context.Context, raws []string) ([]*Outcome, error) {
	if len(raws) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one SSIN is required")
	}
	if len(raws) > s.maxBatchSize {
		return nil, dErrors.New(dErrors.CodeValidation, "too many SSINs in batch")
	}

	ctx, span := s.tracer.Start(ctx, "ssin.ValidateBatch",
		trace.WithAttributes(attribute.Int("ssin.batch_size", len(raws))))
	defer span.End()

	start := time.Now()
	outcomes := make([]*Outcome, len(raws))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, raw := range raws {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.evaluate(ctx, raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch validation interrupted")
	}

	s.metrics.ObserveBatch(len(raws), time.Since(start))
	return outcomes, nil
}

func (s *Service) evaluate(ctx context.Context, raw string) *Outcome {
	parsed, err := ssin.Parse(raw)
	if err != nil {
		s.metrics.IncrementOutcome("malformed", string(ssin.KindUnknown))
		s.logger.DebugContext(ctx, "ssin malformed", "length", len(raw))
		return &Outcome{Input: raw, Malformed: true, Kind: ssin.KindUnknown}
	}

	result := parsed.Check()
	outcome := &Outcome{
		Input:     raw,
		Canonical: parsed.String(),
		Formatted: parsed.Format(),
		Valid:     result.Valid(),
		Kind:      parsed.Kind(),
		BISOffset: parsed.BISOffset(),
	}

	if outcome.Valid {
		s.metrics.IncrementOutcome("valid", string(outcome.Kind))
	} else {
		s.metrics.IncrementOutcome("invalid", string(outcome.Kind))
		s.recordCheckFailures(result)
	}

	s.logger.DebugContext(ctx, "ssin validated",
		"ssin", parsed.Masked(),
		"valid", outcome.Valid,
		"kind", outcome.Kind,
	)
	return outcome
}

func (s *Service) recordCheckFailures(r ssin.Result) {
	if !r.DateValid {
		s.metrics.IncrementCheckFailure("date")
	}
	if !r.IndexValid {
		s.metrics.IncrementCheckFailure("index")
	}
	if !r.ControlValid {
		s.metrics.IncrementCheckFailure("control")
	}
}
