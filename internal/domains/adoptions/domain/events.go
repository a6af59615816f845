package domain

import "time"

// Event is a domain event raised by the adoptions context.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

type BaseEvent struct {
	Timestamp time.Time
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// ApplicationSubmitted is raised when an applicant applies for a pet.
type ApplicationSubmitted struct {
	BaseEvent
	ApplicationID int64
	PetID         int64
	ApplicantID   int64
	OwnerID       int64
}

func (e ApplicationSubmitted) EventName() string {
	return "adoptions.application.submitted"
}

// ApplicationAnswered is raised when the owner responds to an application.
type ApplicationAnswered struct {
	BaseEvent
	ApplicationID int64
	PetID         int64
	ApplicantID   int64
	OwnerID       int64
	Approved      bool
}

func (e ApplicationAnswered) EventName() string {
	return "adoptions.application.answered"
}

// StampApplicationID fills in the id assigned on first save.
func StampApplicationID(events []Event, id int64) []Event {
	stamped := make([]Event, 0, len(events))
	for _, event := range events {
		switch e := event.(type) {
		case ApplicationSubmitted:
			if e.ApplicationID == 0 {
				e.ApplicationID = id
			}
			stamped = append(stamped, e)
		case ApplicationAnswered:
			if e.ApplicationID == 0 {
				e.ApplicationID = id
			}
			stamped = append(stamped, e)
		default:
			stamped = append(stamped, event)
		}
	}
	return stamped
}
