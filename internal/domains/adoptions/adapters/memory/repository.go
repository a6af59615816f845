package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
)

var _ ports.Repository = (*Repository)(nil)

type petApplicant struct {
	petID       int64
	applicantID int64
}

// Repository is an in-memory application store enforcing one application
// per (pet, applicant).
type Repository struct {
	mu           sync.RWMutex
	applications map[int64]*domain.Application
	unique       map[petApplicant]int64
	nextID       int64
}

func NewRepository() *Repository {
	return &Repository{
		applications: map[int64]*domain.Application{},
		unique:       map[petApplicant]int64{},
	}
}

func (r *Repository) Create(_ context.Context, application *domain.Application) (*domain.Application, error) {
	if application == nil {
		return nil, errors.New("application is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := petApplicant{petID: application.PetID, applicantID: application.ApplicantID}
	if _, exists := r.unique[key]; exists {
		return nil, ports.ErrAlreadyApplied
	}
	r.nextID++
	stored := clone(application)
	stored.ID = r.nextID
	r.applications[stored.ID] = stored
	r.unique[key] = stored.ID
	return clone(stored), nil
}

func (r *Repository) Update(_ context.Context, application *domain.Application) (*domain.Application, error) {
	if application == nil {
		return nil, errors.New("application is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.applications[application.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	stored := clone(application)
	r.applications[stored.ID] = stored
	return clone(stored), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.applications[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return clone(stored), nil
}

func (r *Repository) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Application, error) {
	return r.list(func(a *domain.Application) bool { return a.OwnerID == ownerID }), nil
}

func (r *Repository) ListByApplicant(_ context.Context, applicantID int64) ([]*domain.Application, error) {
	return r.list(func(a *domain.Application) bool { return a.ApplicantID == applicantID }), nil
}

func (r *Repository) list(keep func(*domain.Application) bool) []*domain.Application {
	r.mu.RLock()
	result := make([]*domain.Application, 0)
	for _, stored := range r.applications {
		if keep(stored) {
			result = append(result, clone(stored))
		}
	}
	r.mu.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		if result[i].SentAt.Equal(result[j].SentAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].SentAt.After(result[j].SentAt)
	})
	return result
}

func clone(a *domain.Application) *domain.Application {
	c := *a
	c.ClearEvents()
	if a.ViewedAt != nil {
		v := *a.ViewedAt
		c.ViewedAt = &v
	}
	if a.AnsweredAt != nil {
		v := *a.AnsweredAt
		c.AnsweredAt = &v
	}
	if a.Approved != nil {
		v := *a.Approved
		c.Approved = &v
	}
	return &c
}
