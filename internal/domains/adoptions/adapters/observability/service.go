package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	adoptiontypes "github.com/Apurer/petadopt-api/internal/domains/adoptions/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
)

const tracerName = "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/observability/service"

// Service decorates the adoptions port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) Apply(ctx context.Context, input adoptiontypes.ApplyInput) (*domain.Application, error) {
	ctx, span := s.startSpan(ctx, "Service.Apply",
		attribute.Int64("pet.id", input.PetID),
		attribute.Int64("applicant.id", input.ApplicantID),
	)
	defer span.End()

	result, err := s.inner.Apply(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to submit application",
			slog.Int64("pet.id", input.PetID),
			slog.Int64("applicant.id", input.ApplicantID),
		)
	}
	span.SetAttributes(attribute.Int64("application.id", result.ID))
	addCounter(ctx, s.metrics.submitted, 1)
	s.logInfo(ctx, "application submitted", slog.Int64("application.id", result.ID), slog.Int64("pet.id", result.PetID))
	return result, nil
}

func (s *Service) ListReceived(ctx context.Context, ownerID int64) ([]*domain.Application, error) {
	ctx, span := s.startSpan(ctx, "Service.ListReceived", attribute.Int64("owner.id", ownerID))
	defer span.End()

	result, err := s.inner.ListReceived(ctx, ownerID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list received applications", slog.Int64("owner.id", ownerID))
	}
	span.SetAttributes(attribute.Int("application.result.count", len(result)))
	return result, nil
}

func (s *Service) ListSent(ctx context.Context, applicantID int64) ([]*domain.Application, error) {
	ctx, span := s.startSpan(ctx, "Service.ListSent", attribute.Int64("applicant.id", applicantID))
	defer span.End()

	result, err := s.inner.ListSent(ctx, applicantID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list sent applications", slog.Int64("applicant.id", applicantID))
	}
	span.SetAttributes(attribute.Int("application.result.count", len(result)))
	return result, nil
}

func (s *Service) View(ctx context.Context, input adoptiontypes.ViewInput) (*domain.Application, error) {
	ctx, span := s.startSpan(ctx, "Service.View", attribute.Int64("application.id", input.ApplicationID))
	defer span.End()

	result, err := s.inner.View(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to view application", slog.Int64("application.id", input.ApplicationID))
	}
	return result, nil
}

func (s *Service) Respond(ctx context.Context, input adoptiontypes.RespondInput) (*domain.Application, error) {
	ctx, span := s.startSpan(ctx, "Service.Respond",
		attribute.Int64("application.id", input.ApplicationID),
		attribute.Bool("application.approve", input.Approve),
	)
	defer span.End()

	result, err := s.inner.Respond(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to answer application", slog.Int64("application.id", input.ApplicationID))
	}
	addCounter(ctx, s.metrics.answered, 1, attribute.Bool("application.approved", input.Approve))
	s.logInfo(ctx, "application answered", slog.Int64("application.id", result.ID), slog.Bool("approved", input.Approve))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	submitted metric.Int64Counter
	answered  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	submitted, _ := m.Int64Counter("adoptions.service.submitted", metric.WithDescription("Number of adoption applications submitted"))
	answered, _ := m.Int64Counter("adoptions.service.answered", metric.WithDescription("Number of adoption applications answered"))
	return serviceMetrics{submitted: submitted, answered: answered}
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
