package application

import (
	"errors"
	"strings"

	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
)

const (
	// SearchPageSize is the number of listings per catalog page.
	SearchPageSize = 12
	// FeaturedLimit is the number of listings on the home page.
	FeaturedLimit = 6
)

// ErrInvalidAgeBracket is returned for an unknown age filter.
var ErrInvalidAgeBracket = errors.New("age bracket must be one of 0-6, 6-12, 12-24, 24-60, 60+")

type ageRange struct {
	min, max *int
}

func intPtr(v int) *int { return &v }

var ageBrackets = map[string]ageRange{
	"0-6":   {max: intPtr(6)},
	"6-12":  {min: intPtr(6), max: intPtr(12)},
	"12-24": {min: intPtr(12), max: intPtr(24)},
	"24-60": {min: intPtr(24), max: intPtr(60)},
	"60+":   {min: intPtr(60)},
}

// catalogCriteria translates a public search into repository criteria:
// only approved and available listings are ever visible.
func catalogCriteria(input listingtypes.SearchInput) (ports.Criteria, error) {
	criteria := ports.Criteria{
		Moderation:         []domain.ModerationStatus{domain.ModerationApproved},
		Adoption:           []domain.AdoptionStatus{domain.AdoptionAvailable},
		CityContains:       strings.TrimSpace(input.City),
		VerifiedOwnersOnly: input.VerifiedOnly,
	}
	if raw := strings.TrimSpace(input.Species); raw != "" {
		species, err := domain.ParseSpecies(raw)
		if err != nil {
			return ports.Criteria{}, err
		}
		criteria.Species = species
	}
	if raw := strings.TrimSpace(input.Size); raw != "" {
		size, err := domain.ParseSize(raw)
		if err != nil {
			return ports.Criteria{}, err
		}
		criteria.Size = size
	}
	if raw := strings.TrimSpace(input.Sex); raw != "" {
		sex, err := domain.ParseSex(raw)
		if err != nil {
			return ports.Criteria{}, err
		}
		criteria.Sex = sex
	}
	if raw := strings.TrimSpace(input.Region); raw != "" {
		criteria.Region = strings.ToUpper(raw)
	}
	if raw := strings.TrimSpace(input.AgeBracket); raw != "" {
		bracket, ok := ageBrackets[raw]
		if !ok {
			return ports.Criteria{}, ErrInvalidAgeBracket
		}
		criteria.MinAgeMonths = bracket.min
		criteria.MaxAgeMonths = bracket.max
	}
	page := input.Page
	if page < 1 {
		page = 1
	}
	criteria.Limit = SearchPageSize
	criteria.Offset = (page - 1) * SearchPageSize
	return criteria, nil
}

func pageCount(total int64, size int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
