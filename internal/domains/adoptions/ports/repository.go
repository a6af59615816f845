package ports

import (
	"context"
	"errors"

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
)

var (
	ErrNotFound = errors.New("application not found")
	// ErrAlreadyApplied is raised by the store when (pet, applicant) already exists.
	ErrAlreadyApplied = errors.New("applicant already applied for this pet")
)

// Repository persists adoption applications. Lists are ordered newest first.
type Repository interface {
	Create(ctx context.Context, application *domain.Application) (*domain.Application, error)
	Update(ctx context.Context, application *domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]*domain.Application, error)
}
