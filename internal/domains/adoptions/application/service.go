package application

import (
	"context"
	"time"

	adoptiontypes "github.com/Apurer/petadopt-api/internal/domains/adoptions/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
)

// Service orchestrates the adoption application use cases.
type Service struct {
	repo      ports.Repository
	pets      ports.PetCatalog
	publisher ports.EventPublisher
	now       func() time.Time
}

// Option customizes the service.
type Option func(*Service)

// WithEventPublisher forwards domain events after each successful write.
func WithEventPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the adoptions service with its dependencies.
func NewService(repo ports.Repository, pets ports.PetCatalog, opts ...Option) *Service {
	s := &Service{repo: repo, pets: pets, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Apply files an application for a listed pet. A second application by the
// same applicant for the same pet is rejected by the store.
func (s *Service) Apply(ctx context.Context, input adoptiontypes.ApplyInput) (*domain.Application, error) {
	pet, err := s.pets.Pet(ctx, input.PetID)
	if err != nil {
		return nil, err
	}
	if !pet.Listed {
		return nil, ports.ErrPetUnavailable
	}
	application, err := domain.NewApplication(pet, input.ApplicantID, toAnswers(input.Answers), s.now().UTC())
	if err != nil {
		return nil, mapError(err)
	}
	events := application.Events()
	created, err := s.repo.Create(ctx, application)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.StampApplicationID(events, created.ID))
	return created, nil
}

// ListReceived returns applications for the owner's pets, newest first.
func (s *Service) ListReceived(ctx context.Context, ownerID int64) ([]*domain.Application, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// ListSent returns the applicant's own applications, newest first.
func (s *Service) ListSent(ctx context.Context, applicantID int64) ([]*domain.Application, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

// View opens a received application and marks it viewed on first access.
func (s *Service) View(ctx context.Context, input adoptiontypes.ViewInput) (*domain.Application, error) {
	application, err := s.received(ctx, input.OwnerID, input.ApplicationID)
	if err != nil {
		return nil, err
	}
	if !application.MarkViewed(s.now().UTC()) {
		return application, nil
	}
	return s.repo.Update(ctx, application)
}

// Respond records the owner's notes and decision.
func (s *Service) Respond(ctx context.Context, input adoptiontypes.RespondInput) (*domain.Application, error) {
	application, err := s.received(ctx, input.OwnerID, input.ApplicationID)
	if err != nil {
		return nil, err
	}
	application.Respond(input.Notes, input.Approve, s.now().UTC())
	events := application.Events()
	updated, err := s.repo.Update(ctx, application)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events)
	return updated, nil
}

// received hides applications for other owners' pets behind ErrNotFound.
func (s *Service) received(ctx context.Context, ownerID, id int64) (*domain.Application, error) {
	application, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application.OwnerID != ownerID {
		return nil, ports.ErrNotFound
	}
	return application, nil
}

func (s *Service) publish(ctx context.Context, events []domain.Event) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
}

func toAnswers(input adoptiontypes.AnswersInput) domain.Answers {
	return domain.Answers{
		Experience:    input.Experience,
		Housing:       input.Housing,
		OtherPets:     input.OtherPets,
		AvailableTime: input.AvailableTime,
		Motivation:    input.Motivation,
		Referral:      input.Referral,
		ContactPhone:  input.ContactPhone,
		Notes:         input.Notes,
	}
}

var _ ports.Service = (*Service)(nil)
