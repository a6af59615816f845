package application

import (
	"context"

	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	"github.com/Apurer/petadopt-api/internal/domains/chat/ports"
)

// MaxMatches bounds matcher and suggestion results.
const MaxMatches = 6

// Matcher turns preferences and the user's location into catalog queries.
type Matcher struct {
	catalog ports.PetCatalog
}

func NewMatcher(catalog ports.PetCatalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// FindMatches returns up to MaxMatches pets satisfying every preference. A user
// with both city and region on file only sees pets from that area; there is
// no fallback to a wider search.
func (m *Matcher) FindMatches(ctx context.Context, prefs domain.Preferences, user domain.User) ([]domain.PetRecord, error) {
	query := ports.PetQuery{
		Species:      prefs.Species,
		Size:         prefs.Size,
		Sex:          prefs.Sex,
		MinAgeMonths: prefs.MinAgeMonths,
		MaxAgeMonths: prefs.MaxAgeMonths,
	}
	return m.find(ctx, query, user)
}

// Suggest returns up to MaxMatches pets near the user without preference filters.
func (m *Matcher) Suggest(ctx context.Context, user domain.User) ([]domain.PetRecord, error) {
	return m.find(ctx, ports.PetQuery{}, user)
}

func (m *Matcher) find(ctx context.Context, query ports.PetQuery, user domain.User) ([]domain.PetRecord, error) {
	if user.HasLocation() {
		query.CityContains = user.City
		query.Region = user.Region
	}
	query.Limit = MaxMatches
	pets, err := m.catalog.FindAvailable(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(pets) > MaxMatches {
		pets = pets[:MaxMatches]
	}
	if pets == nil {
		pets = []domain.PetRecord{}
	}
	return pets, nil
}
