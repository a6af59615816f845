package ports

import (
	"context"
	"errors"

	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	"github.com/Apurer/petadopt-api/internal/shared/projection"
)

var ErrNotFound = errors.New("listing not found")

// Criteria filters listing searches. Zero values mean no constraint.
type Criteria struct {
	OwnerID            int64
	Moderation         []domain.ModerationStatus
	Adoption           []domain.AdoptionStatus
	Species            domain.Species
	Size               domain.Size
	Sex                domain.Sex
	MinAgeMonths       *int
	MaxAgeMonths       *int
	CityContains       string
	Region             string
	VerifiedOwnersOnly bool
	Limit              int
	Offset             int
}

// Repository persists listings. Search results are ordered newest first and
// carry the owner summary.
type Repository interface {
	Save(ctx context.Context, listing *domain.Listing) (*projection.Projection[*domain.Listing], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Listing], error)
	// Search returns the requested page and the total number of matches.
	Search(ctx context.Context, criteria Criteria) ([]*projection.Projection[*domain.Listing], int64, error)
	// Summarize counts listings; ownerID 0 summarizes the whole catalog.
	Summarize(ctx context.Context, ownerID int64) (domain.Summary, error)
}
