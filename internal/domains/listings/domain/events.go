package domain

import "time"

// Event is the base interface for all domain events.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent provides common event metadata.
type BaseEvent struct {
	Timestamp time.Time
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// ListingSubmitted is raised when an owner publishes a new listing.
type ListingSubmitted struct {
	BaseEvent
	ListingID  int64
	OwnerID    int64
	Name       string
	Moderation ModerationStatus
}

// EventName returns the event type identifier.
func (e ListingSubmitted) EventName() string {
	return "listings.listing.submitted"
}

// ListingModerated is raised when the moderation status changes.
type ListingModerated struct {
	BaseEvent
	ListingID int64
	OwnerID   int64
	From      ModerationStatus
	To        ModerationStatus
	Reason    string
}

// EventName returns the event type identifier.
func (e ListingModerated) EventName() string {
	return "listings.listing.moderated"
}

// AdoptionStatusChanged is raised when the owner moves the adoption lifecycle.
type AdoptionStatusChanged struct {
	BaseEvent
	ListingID int64
	OwnerID   int64
	From      AdoptionStatus
	To        AdoptionStatus
}

// EventName returns the event type identifier.
func (e AdoptionStatusChanged) EventName() string {
	return "listings.listing.adoption_status_changed"
}

// AggregateWithEvents is implemented by aggregates that track domain events.
type AggregateWithEvents interface {
	Events() []Event
	ClearEvents()
}

var _ AggregateWithEvents = (*Listing)(nil)

// StampListingID fills the listing id on events raised before the aggregate was persisted.
func StampListingID(events []Event, id int64) []Event {
	stamped := make([]Event, 0, len(events))
	for _, e := range events {
		switch ev := e.(type) {
		case ListingSubmitted:
			if ev.ListingID == 0 {
				ev.ListingID = id
			}
			e = ev
		case ListingModerated:
			if ev.ListingID == 0 {
				ev.ListingID = id
			}
			e = ev
		case AdoptionStatusChanged:
			if ev.ListingID == 0 {
				ev.ListingID = id
			}
			e = ev
		}
		stamped = append(stamped, e)
	}
	return stamped
}
