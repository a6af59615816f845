package types

// AnswersInput carries the questionnaire as submitted.
type AnswersInput struct {
	Experience    string
	Housing       string
	OtherPets     string
	AvailableTime string
	Motivation    string
	Referral      string
	ContactPhone  string
	Notes         string
}

// ApplyInput is an application by ApplicantID for PetID.
type ApplyInput struct {
	ApplicantID int64
	PetID       int64
	Answers     AnswersInput
}

// ViewInput opens an application received by OwnerID.
type ViewInput struct {
	OwnerID       int64
	ApplicationID int64
}

// RespondInput is the owner's answer to an application.
type RespondInput struct {
	OwnerID       int64
	ApplicationID int64
	Notes         string
	Approve       bool
}
