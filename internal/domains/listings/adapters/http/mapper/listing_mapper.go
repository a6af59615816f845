package mapper

import (
	"time"

	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
)

// ListingDetails captures inbound payloads for submit and update flows.
type ListingDetails struct {
	Name        string   `json:"name" binding:"required"`
	Species     string   `json:"species" binding:"required"`
	Size        string   `json:"size" binding:"required"`
	Sex         string   `json:"sex" binding:"required"`
	AgeMonths   int      `json:"ageMonths"`
	Description string   `json:"description" binding:"required"`
	History     string   `json:"history,omitempty"`
	HealthInfo  string   `json:"healthInfo,omitempty"`
	City        string   `json:"city" binding:"required"`
	Region      string   `json:"region" binding:"required"`
	PhotoURLs   []string `json:"photoUrls,omitempty"`
}

// AdoptionStatusChange is the owner payload for the adoption lifecycle.
type AdoptionStatusChange struct {
	Status string `json:"status" binding:"required"`
}

// ModerationDecision is the staff payload for approving or rejecting a listing.
type ModerationDecision struct {
	Approve *bool  `json:"approve" binding:"required"`
	Reason  string `json:"reason,omitempty"`
}

// Owner is the public summary of the publishing account.
type Owner struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	NGO      bool   `json:"ngo"`
	Verified bool   `json:"verified"`
}

// Listing is the HTTP representation of a listing.
type Listing struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Species          string    `json:"species"`
	SpeciesLabel     string    `json:"speciesLabel"`
	Size             string    `json:"size"`
	SizeLabel        string    `json:"sizeLabel"`
	Sex              string    `json:"sex"`
	SexLabel         string    `json:"sexLabel"`
	AgeMonths        int       `json:"ageMonths"`
	Age              string    `json:"age"`
	Description      string    `json:"description"`
	History          string    `json:"history,omitempty"`
	HealthInfo       string    `json:"healthInfo,omitempty"`
	City             string    `json:"city"`
	Region           string    `json:"region"`
	PhotoURLs        []string  `json:"photoUrls"`
	ModerationStatus string    `json:"moderationStatus"`
	AdoptionStatus   string    `json:"adoptionStatus"`
	AdoptionLabel    string    `json:"adoptionStatusLabel"`
	RejectionReason  string    `json:"rejectionReason,omitempty"`
	Owner            Owner     `json:"owner"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Summary mirrors the listing counters.
type Summary struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Available int64 `json:"available"`
	InProcess int64 `json:"inProcess"`
	Adopted   int64 `json:"adopted"`
	Listed    int64 `json:"listed"`
}

// SearchPage is one page of the public catalog.
type SearchPage struct {
	Items    []Listing `json:"items"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Pages    int       `json:"pages"`
}

// OwnerDashboard lists an owner's listings with counters.
type OwnerDashboard struct {
	Items []Listing `json:"items"`
	Stats Summary   `json:"stats"`
}

// Home feeds the landing page.
type Home struct {
	Featured       []Listing `json:"featured"`
	TotalApproved  int64     `json:"totalApproved"`
	TotalAvailable int64     `json:"totalAvailable"`
	TotalAccounts  int64     `json:"totalAccounts"`
}

// ToDetailsInput converts the transport payload into the application input.
func ToDetailsInput(model ListingDetails) listingtypes.DetailsInput {
	return listingtypes.DetailsInput{
		Name:        model.Name,
		Species:     model.Species,
		Size:        model.Size,
		Sex:         model.Sex,
		AgeMonths:   model.AgeMonths,
		Description: model.Description,
		History:     model.History,
		HealthInfo:  model.HealthInfo,
		City:        model.City,
		Region:      model.Region,
		PhotoURLs:   append([]string{}, model.PhotoURLs...),
	}
}

// FromProjection maps a persisted listing into its transport representation.
func FromProjection(p *listingtypes.ListingProjection) Listing {
	if p == nil || p.Entity == nil {
		return Listing{}
	}
	l := p.Entity
	photos := append([]string{}, l.PhotoURLs...)
	return Listing{
		ID:               l.ID,
		Name:             l.Name,
		Species:          string(l.Species),
		SpeciesLabel:     l.Species.Label(),
		Size:             string(l.Size),
		SizeLabel:        l.Size.Label(),
		Sex:              string(l.Sex),
		SexLabel:         l.Sex.Label(),
		AgeMonths:        l.AgeMonths,
		Age:              l.FormattedAge(),
		Description:      l.Description,
		History:          l.History,
		HealthInfo:       l.HealthInfo,
		City:             l.City,
		Region:           l.Region,
		PhotoURLs:        photos,
		ModerationStatus: string(l.Moderation),
		AdoptionStatus:   string(l.Adoption),
		AdoptionLabel:    l.Adoption.Label(),
		RejectionReason:  l.RejectionReason,
		Owner: Owner{
			ID:       l.Owner.ID,
			Name:     l.Owner.Name,
			NGO:      l.Owner.NGO,
			Verified: l.Owner.Verified,
		},
		CreatedAt: p.Metadata.CreatedAt,
		UpdatedAt: p.Metadata.UpdatedAt,
	}
}

// FromProjections maps a list of persisted listings.
func FromProjections(items []*listingtypes.ListingProjection) []Listing {
	result := make([]Listing, 0, len(items))
	for _, item := range items {
		result = append(result, FromProjection(item))
	}
	return result
}

// FromSummary maps the listing counters.
func FromSummary(s domain.Summary) Summary {
	return Summary(s)
}

// FromSearchResult maps a catalog page.
func FromSearchResult(result *listingtypes.SearchResult) SearchPage {
	if result == nil {
		return SearchPage{Items: []Listing{}}
	}
	return SearchPage{
		Items:    FromProjections(result.Items),
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
		Pages:    result.Pages,
	}
}
