package mapper

import (
	"time"

	adoptiontypes "github.com/Apurer/petadopt-api/internal/domains/adoptions/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
)

// Answers is the adoption questionnaire on the wire.
type Answers struct {
	Experience    string `json:"experience" binding:"required"`
	Housing       string `json:"housing" binding:"required"`
	OtherPets     string `json:"otherPets" binding:"required"`
	AvailableTime string `json:"availableTime" binding:"required"`
	Motivation    string `json:"motivation" binding:"required"`
	Referral      string `json:"referral" binding:"required"`
	ContactPhone  string `json:"contactPhone" binding:"required"`
	Notes         string `json:"notes,omitempty"`
}

// Response is the owner's answer payload.
type Response struct {
	Notes   string `json:"notes"`
	Approve bool   `json:"approve"`
}

// Application is the HTTP representation of an adoption application.
type Application struct {
	ID          int64      `json:"id"`
	PetID       int64      `json:"petId"`
	ApplicantID int64      `json:"applicantId"`
	OwnerID     int64      `json:"ownerId"`
	Answers     Answers    `json:"answers"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"statusLabel"`
	SentAt      time.Time  `json:"sentAt"`
	ViewedAt    *time.Time `json:"viewedAt,omitempty"`
	AnsweredAt  *time.Time `json:"answeredAt,omitempty"`
	OwnerNotes  string     `json:"ownerNotes,omitempty"`
	Approved    *bool      `json:"approved,omitempty"`
}

// ToApplyInput maps the questionnaire for applicantID applying to petID.
func ToApplyInput(applicantID, petID int64, model Answers) adoptiontypes.ApplyInput {
	return adoptiontypes.ApplyInput{
		ApplicantID: applicantID,
		PetID:       petID,
		Answers: adoptiontypes.AnswersInput{
			Experience:    model.Experience,
			Housing:       model.Housing,
			OtherPets:     model.OtherPets,
			AvailableTime: model.AvailableTime,
			Motivation:    model.Motivation,
			Referral:      model.Referral,
			ContactPhone:  model.ContactPhone,
			Notes:         model.Notes,
		},
	}
}

// FromDomainApplication converts an application into its transport representation.
func FromDomainApplication(a *domain.Application) Application {
	if a == nil {
		return Application{}
	}
	return Application{
		ID:          a.ID,
		PetID:       a.PetID,
		ApplicantID: a.ApplicantID,
		OwnerID:     a.OwnerID,
		Answers: Answers{
			Experience:    a.Answers.Experience,
			Housing:       a.Answers.Housing,
			OtherPets:     a.Answers.OtherPets,
			AvailableTime: a.Answers.AvailableTime,
			Motivation:    a.Answers.Motivation,
			Referral:      a.Answers.Referral,
			ContactPhone:  a.Answers.ContactPhone,
			Notes:         a.Answers.Notes,
		},
		Status:      string(a.Status),
		StatusLabel: a.Status.Label(),
		SentAt:      a.SentAt,
		ViewedAt:    a.ViewedAt,
		AnsweredAt:  a.AnsweredAt,
		OwnerNotes:  a.OwnerNotes,
		Approved:    a.Approved,
	}
}

// FromDomainApplications converts a list of applications.
func FromDomainApplications(items []*domain.Application) []Application {
	result := make([]Application, 0, len(items))
	for _, item := range items {
		result = append(result, FromDomainApplication(item))
	}
	return result
}
