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

	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
)

const tracerName = "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/observability/service"

// Service decorates a listings application port with tracing, logging, and metrics.
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

// Submit publishes a new listing with instrumentation.
func (s *Service) Submit(ctx context.Context, input listingtypes.SubmitInput) (*listingtypes.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.Submit",
		attribute.Int64("owner.id", input.OwnerID),
		attribute.Bool("idempotency.key_present", input.IdempotencyKey != ""),
	)
	defer span.End()

	s.logInfo(ctx, "submitting listing", slog.Int64("owner.id", input.OwnerID))
	result, err := s.inner.Submit(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to submit listing", slog.Int64("owner.id", input.OwnerID))
	}
	listing := result.Entity
	span.SetAttributes(attribute.Int64("listing.id", listing.ID))
	s.metrics.recordSubmitted(ctx, listing.Moderation)
	s.logInfo(ctx, "listing submitted", slog.Int64("listing.id", listing.ID), slog.String("moderation", string(listing.Moderation)))
	return result, nil
}

// Update replaces listing details.
func (s *Service) Update(ctx context.Context, input listingtypes.UpdateInput) (*listingtypes.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.Update", attribute.Int64("listing.id", input.ListingID))
	defer span.End()

	result, err := s.inner.Update(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update listing", slog.Int64("listing.id", input.ListingID))
	}
	s.logInfo(ctx, "listing updated", slog.Int64("listing.id", input.ListingID), slog.String("moderation", string(result.Entity.Moderation)))
	return result, nil
}

// ChangeAdoptionStatus moves a listing through the adoption lifecycle.
func (s *Service) ChangeAdoptionStatus(ctx context.Context, input listingtypes.ChangeAdoptionStatusInput) (*listingtypes.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.ChangeAdoptionStatus",
		attribute.Int64("listing.id", input.ListingID),
		attribute.String("listing.adoption_status", input.Status),
	)
	defer span.End()

	result, err := s.inner.ChangeAdoptionStatus(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to change adoption status", slog.Int64("listing.id", input.ListingID))
	}
	s.metrics.recordAdoptionStatus(ctx, result.Entity.Adoption)
	s.logInfo(ctx, "adoption status changed", slog.Int64("listing.id", input.ListingID), slog.String("status", string(result.Entity.Adoption)))
	return result, nil
}

// Moderate records a staff decision.
func (s *Service) Moderate(ctx context.Context, input listingtypes.ModerateInput) (*listingtypes.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.Moderate",
		attribute.Int64("listing.id", input.ListingID),
		attribute.Int64("staff.id", input.StaffID),
		attribute.Bool("moderation.approve", input.Approve),
	)
	defer span.End()

	result, err := s.inner.Moderate(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to moderate listing", slog.Int64("listing.id", input.ListingID))
	}
	s.metrics.recordModerated(ctx, result.Entity.Moderation)
	s.logInfo(ctx, "listing moderated",
		slog.Int64("listing.id", input.ListingID),
		slog.Int64("staff.id", input.StaffID),
		slog.String("moderation", string(result.Entity.Moderation)),
	)
	return result, nil
}

// Search pages through the public catalog.
func (s *Service) Search(ctx context.Context, input listingtypes.SearchInput) (*listingtypes.SearchResult, error) {
	ctx, span := s.startSpan(ctx, "Service.Search",
		attribute.String("search.species", input.Species),
		attribute.String("search.age_bracket", input.AgeBracket),
		attribute.Int("search.page", input.Page),
	)
	defer span.End()

	result, err := s.inner.Search(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search listings")
	}
	span.SetAttributes(attribute.Int64("listing.result.total", result.Total))
	return result, nil
}

// GetByID loads a single listing.
func (s *Service) GetByID(ctx context.Context, id int64) (*listingtypes.ListingProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.Int64("listing.id", id))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load listing", slog.Int64("listing.id", id))
	}
	return result, nil
}

// ListByOwner returns the owner's dashboard.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) (*listingtypes.OwnerListings, error) {
	ctx, span := s.startSpan(ctx, "Service.ListByOwner", attribute.Int64("owner.id", ownerID))
	defer span.End()

	result, err := s.inner.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list owner listings", slog.Int64("owner.id", ownerID))
	}
	span.SetAttributes(attribute.Int("listing.result.count", len(result.Items)))
	return result, nil
}

// Featured feeds the home page.
func (s *Service) Featured(ctx context.Context) (*listingtypes.Featured, error) {
	ctx, span := s.startSpan(ctx, "Service.Featured")
	defer span.End()

	result, err := s.inner.Featured(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load featured listings")
	}
	span.SetAttributes(attribute.Int("listing.result.count", len(result.Items)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	submitted       metric.Int64Counter
	moderated       metric.Int64Counter
	adoptionChanges metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	submitted, _ := m.Int64Counter("listings.service.submitted", metric.WithDescription("Number of listings submitted"))
	moderated, _ := m.Int64Counter("listings.service.moderated", metric.WithDescription("Number of moderation decisions"))
	adoptionChanges, _ := m.Int64Counter("listings.service.adoption_status_changed", metric.WithDescription("Number of adoption status changes"))
	return serviceMetrics{
		submitted:       submitted,
		moderated:       moderated,
		adoptionChanges: adoptionChanges,
	}
}

func (m serviceMetrics) recordSubmitted(ctx context.Context, status domain.ModerationStatus) {
	addCounter(ctx, m.submitted, 1, attribute.String("listing.moderation", string(status)))
}

func (m serviceMetrics) recordModerated(ctx context.Context, status domain.ModerationStatus) {
	addCounter(ctx, m.moderated, 1, attribute.String("listing.moderation", string(status)))
}

func (m serviceMetrics) recordAdoptionStatus(ctx context.Context, status domain.AdoptionStatus) {
	addCounter(ctx, m.adoptionChanges, 1, attribute.String("listing.adoption_status", string(status)))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
