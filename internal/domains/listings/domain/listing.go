package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/Apurer/petadopt-api/internal/shared/locale"
)

// Species of an animal offered for adoption.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Label returns the pt-BR display name.
func (s Species) Label() string {
	switch s {
	case SpeciesDog:
		return "Cão"
	case SpeciesCat:
		return "Gato"
	default:
		return "Outro"
	}
}

// Size is the adult size bucket of the animal.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Label returns the pt-BR display name.
func (s Size) Label() string {
	switch s {
	case SizeSmall:
		return "Pequeno"
	case SizeMedium:
		return "Médio"
	default:
		return "Grande"
	}
}

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Label returns the pt-BR display name.
func (s Sex) Label() string {
	if s == SexFemale {
		return "Fêmea"
	}
	return "Macho"
}

// ModerationStatus tracks staff review of a listing.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// Label returns the pt-BR display name.
func (s ModerationStatus) Label() string {
	switch s {
	case ModerationApproved:
		return "Aprovado"
	case ModerationRejected:
		return "Rejeitado"
	default:
		return "Pendente"
	}
}

// AdoptionStatus tracks where the animal is in the adoption lifecycle.
type AdoptionStatus string

const (
	AdoptionAvailable AdoptionStatus = "available"
	AdoptionInProcess AdoptionStatus = "in_process"
	AdoptionAdopted   AdoptionStatus = "adopted"
)

// Label returns the pt-BR display name.
func (s AdoptionStatus) Label() string {
	switch s {
	case AdoptionInProcess:
		return "Em Processo"
	case AdoptionAdopted:
		return "Adotado"
	default:
		return "Disponível"
	}
}

// MaxAgeMonths bounds the declared age of a listed animal.
const MaxAgeMonths = 300

var (
	ErrEmptyName              = errors.New("pet name is required")
	ErrInvalidSpecies         = errors.New("species must be dog, cat or other")
	ErrInvalidSize            = errors.New("size must be small, medium or large")
	ErrInvalidSex             = errors.New("sex must be male or female")
	ErrInvalidAge             = errors.New("age must be between 0 and 300 months")
	ErrEmptyDescription       = errors.New("description is required")
	ErrEmptyCity              = errors.New("city is required")
	ErrInvalidRegion          = errors.New("region must be a Brazilian state code")
	ErrInvalidAdoptionStatus  = errors.New("adoption status must be available, in_process or adopted")
	ErrInvalidModerationState = errors.New("listing is not awaiting this moderation decision")
)

// ParseSpecies validates a wire value.
func ParseSpecies(raw string) (Species, error) {
	switch s := Species(strings.ToLower(strings.TrimSpace(raw))); s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return s, nil
	default:
		return "", ErrInvalidSpecies
	}
}

// ParseSize validates a wire value.
func ParseSize(raw string) (Size, error) {
	switch s := Size(strings.ToLower(strings.TrimSpace(raw))); s {
	case SizeSmall, SizeMedium, SizeLarge:
		return s, nil
	default:
		return "", ErrInvalidSize
	}
}

// ParseSex validates a wire value.
func ParseSex(raw string) (Sex, error) {
	switch s := Sex(strings.ToLower(strings.TrimSpace(raw))); s {
	case SexMale, SexFemale:
		return s, nil
	default:
		return "", ErrInvalidSex
	}
}

// ParseAdoptionStatus validates a wire value.
func ParseAdoptionStatus(raw string) (AdoptionStatus, error) {
	switch s := AdoptionStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case AdoptionAvailable, AdoptionInProcess, AdoptionAdopted:
		return s, nil
	default:
		return "", ErrInvalidAdoptionStatus
	}
}

// Owner is the read-side summary of the account that published a listing.
type Owner struct {
	ID       int64
	Name     string
	NGO      bool
	Verified bool
	Staff    bool
}

// VerifiedNGO reports whether the owner is a verified NGO.
func (o Owner) VerifiedNGO() bool {
	return o.NGO && o.Verified
}

// InitialModeration is the single moderation policy: verified NGOs publish
// immediately, everyone else waits for staff review.
func InitialModeration(owner Owner) ModerationStatus {
	if owner.VerifiedNGO() {
		return ModerationApproved
	}
	return ModerationPending
}

// Details carries the owner-editable attributes of a listing.
type Details struct {
	Name        string
	Species     Species
	Size        Size
	Sex         Sex
	AgeMonths   int
	Description string
	History     string
	HealthInfo  string
	City        string
	Region      string
	PhotoURLs   []string
}

// Listing is the aggregate managed by the listings bounded context.
type Listing struct {
	ID              int64
	OwnerID         int64
	Name            string
	Species         Species
	Size            Size
	Sex             Sex
	AgeMonths       int
	Description     string
	History         string
	HealthInfo      string
	City            string
	Region          string
	PhotoURLs       []string
	Moderation      ModerationStatus
	Adoption        AdoptionStatus
	RejectionReason string
	Owner           Owner

	events []Event
}

// NewListing validates the details and applies the moderation policy for owner.
func NewListing(owner Owner, details Details) (*Listing, error) {
	l := &Listing{OwnerID: owner.ID, Owner: owner, Adoption: AdoptionAvailable}
	if err := l.applyDetails(details); err != nil {
		return nil, err
	}
	l.Moderation = InitialModeration(owner)
	l.record(ListingSubmitted{
		BaseEvent:  BaseEvent{Timestamp: time.Now().UTC()},
		OwnerID:    owner.ID,
		Name:       l.Name,
		Moderation: l.Moderation,
	})
	return l, nil
}

// Update replaces the editable details. A pending listing is re-evaluated
// against the moderation policy so verified NGOs are approved on resave.
func (l *Listing) Update(details Details) error {
	if err := l.applyDetails(details); err != nil {
		return err
	}
	l.ApplyModerationPolicy(l.Owner)
	return nil
}

// ApplyModerationPolicy promotes a pending listing when the owner qualifies.
func (l *Listing) ApplyModerationPolicy(owner Owner) {
	if l.Moderation != ModerationPending {
		return
	}
	if next := InitialModeration(owner); next != l.Moderation {
		l.setModeration(next, "")
	}
}

// Approve publishes the listing.
func (l *Listing) Approve() error {
	if l.Moderation == ModerationApproved {
		return ErrInvalidModerationState
	}
	l.setModeration(ModerationApproved, "")
	return nil
}

// Reject hides the listing and keeps the reason for the owner.
func (l *Listing) Reject(reason string) error {
	if l.Moderation == ModerationRejected {
		return ErrInvalidModerationState
	}
	l.setModeration(ModerationRejected, strings.TrimSpace(reason))
	return nil
}

// ChangeAdoptionStatus moves the listing through the adoption lifecycle.
func (l *Listing) ChangeAdoptionStatus(status AdoptionStatus) error {
	if _, err := ParseAdoptionStatus(string(status)); err != nil {
		return err
	}
	if status == l.Adoption {
		return nil
	}
	previous := l.Adoption
	l.Adoption = status
	l.record(AdoptionStatusChanged{
		BaseEvent: BaseEvent{Timestamp: time.Now().UTC()},
		ListingID: l.ID,
		OwnerID:   l.OwnerID,
		From:      previous,
		To:        status,
	})
	return nil
}

// Listed reports whether the listing is visible in the public catalog.
func (l *Listing) Listed() bool {
	return l.Moderation == ModerationApproved && l.Adoption == AdoptionAvailable
}

// FormattedAge renders the age for display.
func (l *Listing) FormattedAge() string {
	return locale.FormatAge(l.AgeMonths)
}

// Events returns the pending domain events.
func (l *Listing) Events() []Event {
	return append([]Event(nil), l.events...)
}

// ClearEvents drops pending domain events once they are published.
func (l *Listing) ClearEvents() {
	l.events = nil
}

func (l *Listing) setModeration(status ModerationStatus, reason string) {
	previous := l.Moderation
	l.Moderation = status
	l.RejectionReason = reason
	l.record(ListingModerated{
		BaseEvent: BaseEvent{Timestamp: time.Now().UTC()},
		ListingID: l.ID,
		OwnerID:   l.OwnerID,
		From:      previous,
		To:        status,
		Reason:    reason,
	})
}

func (l *Listing) record(e Event) {
	l.events = append(l.events, e)
}

func (l *Listing) applyDetails(d Details) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrEmptyName
	}
	species, err := ParseSpecies(string(d.Species))
	if err != nil {
		return err
	}
	size, err := ParseSize(string(d.Size))
	if err != nil {
		return err
	}
	sex, err := ParseSex(string(d.Sex))
	if err != nil {
		return err
	}
	if d.AgeMonths < 0 || d.AgeMonths > MaxAgeMonths {
		return ErrInvalidAge
	}
	description := strings.TrimSpace(d.Description)
	if description == "" {
		return ErrEmptyDescription
	}
	city := strings.TrimSpace(d.City)
	if city == "" {
		return ErrEmptyCity
	}
	region, ok := locale.NormalizeRegion(d.Region)
	if !ok {
		return ErrInvalidRegion
	}
	photos := make([]string, 0, len(d.PhotoURLs))
	for _, url := range d.PhotoURLs {
		if url = strings.TrimSpace(url); url != "" {
			photos = append(photos, url)
		}
	}
	l.Name = name
	l.Species = species
	l.Size = size
	l.Sex = sex
	l.AgeMonths = d.AgeMonths
	l.Description = description
	l.History = strings.TrimSpace(d.History)
	l.HealthInfo = strings.TrimSpace(d.HealthInfo)
	l.City = city
	l.Region = region
	l.PhotoURLs = photos
	return nil
}

// Summary aggregates listing counters. Moderation and adoption counters are
// independent; Listed counts approved listings that are still available.
type Summary struct {
	Total     int64
	Pending   int64
	Approved  int64
	Rejected  int64
	Available int64
	InProcess int64
	Adopted   int64
	Listed    int64
}

// Add folds a single listing into the summary.
func (s *Summary) Add(l *Listing) {
	s.Total++
	switch l.Moderation {
	case ModerationPending:
		s.Pending++
	case ModerationApproved:
		s.Approved++
	case ModerationRejected:
		s.Rejected++
	}
	switch l.Adoption {
	case AdoptionAvailable:
		s.Available++
	case AdoptionInProcess:
		s.InProcess++
	case AdoptionAdopted:
		s.Adopted++
	}
	if l.Listed() {
		s.Listed++
	}
}
