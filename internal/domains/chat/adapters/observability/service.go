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

	chattypes "github.com/Apurer/petadopt-api/internal/domains/chat/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	"github.com/Apurer/petadopt-api/internal/domains/chat/ports"
)

const tracerName = "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/observability/service"

// Service decorates the chat port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

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

func (s *Service) HandleMessage(ctx context.Context, input chattypes.MessageInput) (*chattypes.MessageResult, error) {
	ctx, span := s.startSpan(ctx, "Service.HandleMessage",
		attribute.Int64("account.id", input.AccountID),
		attribute.String("chat.topic_hint", input.TopicHint),
		attribute.Int("chat.message.length", len(input.Message)),
	)
	defer span.End()

	result, err := s.inner.HandleMessage(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to handle chat message", slog.Int64("account.id", input.AccountID))
	}
	span.SetAttributes(
		attribute.String("chat.topic", string(result.Topic)),
		attribute.Int64("chat.interaction.id", result.InteractionID),
		attribute.Int64("chat.latency_ms", result.LatencyMs),
	)
	addCounter(ctx, s.metrics.handled, 1, attribute.String("chat.topic", string(result.Topic)))
	if s.metrics.latency != nil {
		s.metrics.latency.Record(ctx, result.LatencyMs, metric.WithAttributes(attribute.String("chat.topic", string(result.Topic))))
	}
	s.logInfo(ctx, "chat message handled",
		slog.Int64("interaction.id", result.InteractionID),
		slog.String("topic", string(result.Topic)),
		slog.Int64("latency_ms", result.LatencyMs),
	)
	return result, nil
}

func (s *Service) SubmitFeedback(ctx context.Context, input chattypes.FeedbackInput) error {
	ctx, span := s.startSpan(ctx, "Service.SubmitFeedback",
		attribute.Int64("chat.interaction.id", input.InteractionID),
		attribute.Bool("chat.feedback", input.Feedback),
	)
	defer span.End()

	if err := s.inner.SubmitFeedback(ctx, input); err != nil {
		return s.handleError(ctx, span, err, "failed to record chat feedback", slog.Int64("interaction.id", input.InteractionID))
	}
	addCounter(ctx, s.metrics.feedback, 1, attribute.Bool("chat.feedback", input.Feedback))
	return nil
}

func (s *Service) History(ctx context.Context, accountID int64) ([]*domain.Interaction, error) {
	ctx, span := s.startSpan(ctx, "Service.History", attribute.Int64("account.id", accountID))
	defer span.End()

	result, err := s.inner.History(ctx, accountID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load chat history", slog.Int64("account.id", accountID))
	}
	span.SetAttributes(attribute.Int("chat.result.count", len(result)))
	return result, nil
}

func (s *Service) Suggestions(ctx context.Context, accountID int64) ([]domain.PetRecord, error) {
	ctx, span := s.startSpan(ctx, "Service.Suggestions", attribute.Int64("account.id", accountID))
	defer span.End()

	result, err := s.inner.Suggestions(ctx, accountID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load pet suggestions", slog.Int64("account.id", accountID))
	}
	span.SetAttributes(attribute.Int("chat.result.count", len(result)))
	return result, nil
}

func (s *Service) Stats(ctx context.Context, staffID int64) (domain.Stats, error) {
	ctx, span := s.startSpan(ctx, "Service.Stats", attribute.Int64("account.id", staffID))
	defer span.End()

	result, err := s.inner.Stats(ctx, staffID)
	if err != nil {
		return domain.Stats{}, s.handleError(ctx, span, err, "failed to load chat stats", slog.Int64("account.id", staffID))
	}
	span.SetAttributes(attribute.Int64("chat.interactions.total", result.Total))
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
	handled  metric.Int64Counter
	feedback metric.Int64Counter
	latency  metric.Int64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	handled, _ := m.Int64Counter("chat.messages.handled", metric.WithDescription("Number of chat messages answered"))
	feedback, _ := m.Int64Counter("chat.feedback.submitted", metric.WithDescription("Number of chat replies rated"))
	latency, _ := m.Int64Histogram("chat.messages.latency", metric.WithDescription("Time spent producing a chat reply"), metric.WithUnit("ms"))
	return serviceMetrics{handled: handled, feedback: feedback, latency: latency}
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
