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

	accounttypes "github.com/Apurer/petadopt-api/internal/domains/accounts/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
)

const tracerName = "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/observability/service"

// Service decorates the accounts port with tracing, logging, and metrics.
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

// Register creates an account. The email is never logged.
func (s *Service) Register(ctx context.Context, input accounttypes.RegisterInput) (*domain.Account, error) {
	ctx, span := s.startSpan(ctx, "Service.Register", attribute.String("account.type", input.AccountType))
	defer span.End()

	result, err := s.inner.Register(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to register account")
	}
	s.metrics.recordRegistered(ctx, result.Type)
	s.logInfo(ctx, "account registered", slog.Int64("account.id", result.ID), slog.String("account.type", string(result.Type)))
	return result, nil
}

// Login exchanges credentials for a token.
func (s *Service) Login(ctx context.Context, input accounttypes.LoginInput) (*accounttypes.LoginResult, error) {
	ctx, span := s.startSpan(ctx, "Service.Login")
	defer span.End()

	result, err := s.inner.Login(ctx, input)
	if err != nil {
		s.metrics.recordLogin(ctx, false)
		return nil, s.handleError(ctx, span, err, "login failed")
	}
	s.metrics.recordLogin(ctx, true)
	if result.Account != nil {
		span.SetAttributes(attribute.Int64("account.id", result.Account.ID))
		s.logInfo(ctx, "account logged in", slog.Int64("account.id", result.Account.ID))
	}
	return result, nil
}

// Logout revokes a session.
func (s *Service) Logout(ctx context.Context, token string) error {
	ctx, span := s.startSpan(ctx, "Service.Logout")
	defer span.End()

	if err := s.inner.Logout(ctx, token); err != nil {
		return s.handleError(ctx, span, err, "logout failed")
	}
	s.logInfo(ctx, "session revoked")
	return nil
}

// Authenticate resolves a bearer token. Only failures are logged.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	ctx, span := s.startSpan(ctx, "Service.Authenticate")
	defer span.End()

	account, err := s.inner.Authenticate(ctx, token)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "authentication failed")
	}
	span.SetAttributes(attribute.Int64("account.id", account.ID))
	return account, nil
}

// GetByID loads a single account.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.Int64("account.id", id))
	defer span.End()

	account, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load account", slog.Int64("account.id", id))
	}
	return account, nil
}

// UpdateProfile replaces the editable profile fields.
func (s *Service) UpdateProfile(ctx context.Context, input accounttypes.UpdateProfileInput) (*domain.Account, error) {
	ctx, span := s.startSpan(ctx, "Service.UpdateProfile", attribute.Int64("account.id", input.AccountID))
	defer span.End()

	s.logInfo(ctx, "updating profile", slog.Int64("account.id", input.AccountID))
	account, err := s.inner.UpdateProfile(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update profile", slog.Int64("account.id", input.AccountID))
	}
	return account, nil
}

// SetVerified records a staff verification decision.
func (s *Service) SetVerified(ctx context.Context, input accounttypes.SetVerifiedInput) (*domain.Account, error) {
	ctx, span := s.startSpan(ctx, "Service.SetVerified",
		attribute.Int64("account.id", input.AccountID),
		attribute.Int64("staff.id", input.StaffID),
		attribute.Bool("account.verified", input.Verified),
	)
	defer span.End()

	account, err := s.inner.SetVerified(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to change verification", slog.Int64("account.id", input.AccountID))
	}
	s.logInfo(ctx, "verification changed",
		slog.Int64("account.id", input.AccountID),
		slog.Int64("staff.id", input.StaffID),
		slog.Bool("verified", account.Verified),
	)
	return account, nil
}

// CountAccounts reports the number of accounts.
func (s *Service) CountAccounts(ctx context.Context) (int64, error) {
	ctx, span := s.startSpan(ctx, "Service.CountAccounts")
	defer span.End()

	count, err := s.inner.CountAccounts(ctx)
	if err != nil {
		return 0, s.handleError(ctx, span, err, "failed to count accounts")
	}
	span.SetAttributes(attribute.Int64("account.count", count))
	return count, nil
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
	registered metric.Int64Counter
	logins     metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	registered, _ := m.Int64Counter("accounts.service.registered", metric.WithDescription("Number of accounts registered"))
	logins, _ := m.Int64Counter("accounts.service.logins", metric.WithDescription("Number of login attempts"))
	return serviceMetrics{registered: registered, logins: logins}
}

func (m serviceMetrics) recordRegistered(ctx context.Context, accountType domain.AccountType) {
	addCounter(ctx, m.registered, 1, attribute.String("account.type", string(accountType)))
}

func (m serviceMetrics) recordLogin(ctx context.Context, success bool) {
	addCounter(ctx, m.logins, 1, attribute.Bool("login.success", success))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
