package domain

import (
	"errors"
	"strings"
	"time"
)

// Status tracks how far the owner got with an application.
type Status string

const (
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusAnswered Status = "answered"
)

// Label returns the pt-BR display name.
func (s Status) Label() string {
	switch s {
	case StatusViewed:
		return "Visualizada"
	case StatusAnswered:
		return "Respondida"
	default:
		return "Enviada"
	}
}

const maxContactPhoneLength = 20

var (
	ErrInvalidExperience    = errors.New("experience must be Nenhuma, Pouca, Moderada or Muita")
	ErrInvalidHousing       = errors.New("housing must be Casa, Apartamento, Sitio or Outro")
	ErrInvalidOtherPets     = errors.New("other pets must be Sim or Não")
	ErrInvalidAvailableTime = errors.New("available time must be Pouco, Moderado or Muito")
	ErrEmptyMotivation      = errors.New("motivation is required")
	ErrEmptyReferral        = errors.New("referral is required")
	ErrInvalidContactPhone  = errors.New("contact phone is required and at most 20 characters")
	ErrOwnListing           = errors.New("owners cannot apply to their own listing")
)

var (
	experienceChoices    = []string{"Nenhuma", "Pouca", "Moderada", "Muita"}
	housingChoices       = []string{"Casa", "Apartamento", "Sitio", "Outro"}
	otherPetsChoices     = []string{"Sim", "Não"}
	availableTimeChoices = []string{"Pouco", "Moderado", "Muito"}
)

// Answer keys as stored with the application.
const (
	AnswerExperience    = "experience"
	AnswerHousing       = "housing"
	AnswerOtherPets     = "other_pets"
	AnswerAvailableTime = "available_time"
	AnswerMotivation    = "motivation"
	AnswerReferral      = "referral"
	AnswerContactPhone  = "contact_phone"
	AnswerNotes         = "notes"
)

// Answers is the adoption questionnaire filled by the applicant.
type Answers struct {
	Experience    string
	Housing       string
	OtherPets     string
	AvailableTime string
	Motivation    string
	Referral      string
	ContactPhone  string
	Notes         string
}

// Normalize trims every answer and validates the required ones.
func (a Answers) Normalize() (Answers, error) {
	out := Answers{
		Experience:    strings.TrimSpace(a.Experience),
		Housing:       strings.TrimSpace(a.Housing),
		OtherPets:     strings.TrimSpace(a.OtherPets),
		AvailableTime: strings.TrimSpace(a.AvailableTime),
		Motivation:    strings.TrimSpace(a.Motivation),
		Referral:      strings.TrimSpace(a.Referral),
		ContactPhone:  strings.TrimSpace(a.ContactPhone),
		Notes:         strings.TrimSpace(a.Notes),
	}
	switch {
	case !oneOf(out.Experience, experienceChoices):
		return Answers{}, ErrInvalidExperience
	case !oneOf(out.Housing, housingChoices):
		return Answers{}, ErrInvalidHousing
	case !oneOf(out.OtherPets, otherPetsChoices):
		return Answers{}, ErrInvalidOtherPets
	case !oneOf(out.AvailableTime, availableTimeChoices):
		return Answers{}, ErrInvalidAvailableTime
	case out.Motivation == "":
		return Answers{}, ErrEmptyMotivation
	case out.Referral == "":
		return Answers{}, ErrEmptyReferral
	case out.ContactPhone == "" || len([]rune(out.ContactPhone)) > maxContactPhoneLength:
		return Answers{}, ErrInvalidContactPhone
	}
	return out, nil
}

// Map flattens the answers for storage.
func (a Answers) Map() map[string]string {
	return map[string]string{
		AnswerExperience:    a.Experience,
		AnswerHousing:       a.Housing,
		AnswerOtherPets:     a.OtherPets,
		AnswerAvailableTime: a.AvailableTime,
		AnswerMotivation:    a.Motivation,
		AnswerReferral:      a.Referral,
		AnswerContactPhone:  a.ContactPhone,
		AnswerNotes:         a.Notes,
	}
}

// AnswersFromMap rebuilds answers from storage. Unknown keys are ignored.
func AnswersFromMap(m map[string]string) Answers {
	return Answers{
		Experience:    m[AnswerExperience],
		Housing:       m[AnswerHousing],
		OtherPets:     m[AnswerOtherPets],
		AvailableTime: m[AnswerAvailableTime],
		Motivation:    m[AnswerMotivation],
		Referral:      m[AnswerReferral],
		ContactPhone:  m[AnswerContactPhone],
		Notes:         m[AnswerNotes],
	}
}

// Pet is the read-side view of the listing an application targets.
type Pet struct {
	ID      int64
	OwnerID int64
	Name    string
	Listed  bool
}

// Application is a request to adopt a listed pet.
type Application struct {
	ID          int64
	PetID       int64
	ApplicantID int64
	OwnerID     int64
	Answers     Answers
	Status      Status
	SentAt      time.Time
	ViewedAt    *time.Time
	AnsweredAt  *time.Time
	OwnerNotes  string
	Approved    *bool

	events []Event
}

// NewApplication validates the answers for applicantID applying to pet.
func NewApplication(pet Pet, applicantID int64, answers Answers, now time.Time) (*Application, error) {
	if pet.OwnerID == applicantID {
		return nil, ErrOwnListing
	}
	normalized, err := answers.Normalize()
	if err != nil {
		return nil, err
	}
	a := &Application{
		PetID:       pet.ID,
		ApplicantID: applicantID,
		OwnerID:     pet.OwnerID,
		Answers:     normalized,
		Status:      StatusSent,
		SentAt:      now,
	}
	a.record(ApplicationSubmitted{
		BaseEvent:   BaseEvent{Timestamp: now},
		PetID:       pet.ID,
		ApplicantID: applicantID,
		OwnerID:     pet.OwnerID,
	})
	return a, nil
}

// MarkViewed stamps the first time the owner opened the application.
// It reports whether anything changed.
func (a *Application) MarkViewed(now time.Time) bool {
	if a.ViewedAt != nil {
		return false
	}
	viewed := now
	a.ViewedAt = &viewed
	if a.Status == StatusSent {
		a.Status = StatusViewed
	}
	return true
}

// Respond stores the owner's answer. Answering again replaces the notes and decision.
func (a *Application) Respond(notes string, approve bool, now time.Time) {
	a.MarkViewed(now)
	answered := now
	decision := approve
	a.AnsweredAt = &answered
	a.Approved = &decision
	a.OwnerNotes = strings.TrimSpace(notes)
	a.Status = StatusAnswered
	a.record(ApplicationAnswered{
		BaseEvent:     BaseEvent{Timestamp: now},
		ApplicationID: a.ID,
		PetID:         a.PetID,
		ApplicantID:   a.ApplicantID,
		OwnerID:       a.OwnerID,
		Approved:      approve,
	})
}

// Events returns the pending domain events.
func (a *Application) Events() []Event {
	return append([]Event(nil), a.events...)
}

// ClearEvents drops pending domain events.
func (a *Application) ClearEvents() {
	a.events = nil
}

func (a *Application) record(e Event) {
	a.events = append(a.events, e)
}

func oneOf(v string, choices []string) bool {
	for _, c := range choices {
		if v == c {
			return true
		}
	}
	return false
}
