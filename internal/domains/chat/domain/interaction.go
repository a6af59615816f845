package domain

import (
	"errors"
	"time"
)

// MaxSessionIDLength bounds caller supplied session identifiers.
const MaxSessionIDLength = 100

var (
	ErrEmptyMessage       = errors.New("message must not be empty")
	ErrSessionIDTooLong   = errors.New("session id must be at most 100 characters")
	ErrMissingInteraction = errors.New("interaction id is required")
)

// Interaction is one logged exchange. Only Feedback changes after creation.
type Interaction struct {
	ID            int64
	AccountID     int64
	Message       string
	Response      string
	Topic         Topic
	DetectedTopic Topic
	LatencyMs     *int64
	Feedback      *bool
	SessionID     string
	CreatedAt     time.Time
}

// TopicCount is the number of interactions routed to a topic.
type TopicCount struct {
	Topic Topic
	Total int64
}

// Stats summarizes assistant usage.
type Stats struct {
	Total            int64
	Topics           []TopicCount
	AverageLatencyMs *float64
}
