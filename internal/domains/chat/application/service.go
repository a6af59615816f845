package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	chattypes "github.com/Apurer/petadopt-api/internal/domains/chat/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	"github.com/Apurer/petadopt-api/internal/domains/chat/ports"
)

// HistoryLimit is the number of past interactions returned to a user.
const HistoryLimit = 50

// Service runs the assistant pipeline: classify, extract, match, respond, log.
type Service struct {
	interactions ports.InteractionRepository
	users        ports.UserDirectory
	matcher      *Matcher
	logger       *InteractionLogger
	responder    *domain.Responder
	now          func() time.Time
	newSessionID func() string
}

// Option customizes the service.
type Option func(*Service)

// WithResponder replaces the default randomized responder.
func WithResponder(responder *domain.Responder) Option {
	return func(s *Service) {
		if responder != nil {
			s.responder = responder
		}
	}
}

// WithClock overrides the time source used to measure latency.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSessionIDs overrides the generator used when a turn carries no session id.
func WithSessionIDs(next func() string) Option {
	return func(s *Service) {
		if next != nil {
			s.newSessionID = next
		}
	}
}

// NewService wires the assistant with its stores.
func NewService(interactions ports.InteractionRepository, catalog ports.PetCatalog, users ports.UserDirectory, opts ...Option) *Service {
	s := &Service{
		interactions: interactions,
		users:        users,
		matcher:      NewMatcher(catalog),
		logger:       NewInteractionLogger(interactions),
		responder:    domain.NewResponder(nil),
		now:          time.Now,
		newSessionID: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// HandleMessage answers one turn and logs the exchange.
func (s *Service) HandleMessage(ctx context.Context, input chattypes.MessageInput) (*chattypes.MessageResult, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, mapError(domain.ErrEmptyMessage)
	}
	sessionID := strings.TrimSpace(input.SessionID)
	if len(sessionID) > domain.MaxSessionIDLength {
		return nil, mapError(domain.ErrSessionIDTooLong)
	}
	if sessionID == "" {
		sessionID = s.newSessionID()
	}
	user, err := s.users.User(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	started := s.now()
	topic := domain.Classify(message)
	var matches []domain.PetRecord
	if topic == domain.TopicFindPet {
		matches, err = s.matcher.FindMatches(ctx, domain.ExtractPreferences(message), user)
		if err != nil {
			return nil, err
		}
	}
	response := s.responder.Respond(topic, matches, message)
	latency := s.now().Sub(started).Milliseconds()

	interaction, err := s.logger.Record(ctx, chattypes.RecordInput{
		AccountID:     user.ID,
		Message:       message,
		Response:      response,
		TopicHint:     domain.NormalizeTopic(input.TopicHint),
		DetectedTopic: topic,
		LatencyMs:     latency,
		SessionID:     sessionID,
	})
	if err != nil {
		return nil, err
	}
	return &chattypes.MessageResult{
		Response:      response,
		LatencyMs:     latency,
		InteractionID: interaction.ID,
		SessionID:     sessionID,
		Topic:         topic,
	}, nil
}

// SubmitFeedback rates one of the caller's interactions.
func (s *Service) SubmitFeedback(ctx context.Context, input chattypes.FeedbackInput) error {
	return s.logger.SetFeedback(ctx, input.InteractionID, input.AccountID, input.Feedback)
}

// History returns the caller's latest interactions, newest first.
func (s *Service) History(ctx context.Context, accountID int64) ([]*domain.Interaction, error) {
	return s.interactions.ListByAccount(ctx, accountID, HistoryLimit)
}

// Suggestions lists pets near the caller without preference filters.
func (s *Service) Suggestions(ctx context.Context, accountID int64) ([]domain.PetRecord, error) {
	user, err := s.users.User(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.matcher.Suggest(ctx, user)
}

// Stats summarizes usage per topic for staff.
func (s *Service) Stats(ctx context.Context, staffID int64) (domain.Stats, error) {
	user, err := s.users.User(ctx, staffID)
	if err != nil {
		return domain.Stats{}, err
	}
	if !user.Staff {
		return domain.Stats{}, ErrForbidden
	}
	return s.interactions.Stats(ctx)
}

var _ ports.Service = (*Service)(nil)
