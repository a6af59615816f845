package types

import "github.com/Apurer/petadopt-api/internal/domains/chat/domain"

// MessageInput is one user turn.
type MessageInput struct {
	AccountID int64
	Message   string
	TopicHint string
	SessionID string
}

// MessageResult is the assistant's reply to a turn.
type MessageResult struct {
	Response      string
	LatencyMs     int64
	InteractionID int64
	SessionID     string
	Topic         domain.Topic
}

// FeedbackInput rates an earlier reply.
type FeedbackInput struct {
	AccountID     int64
	InteractionID int64
	Feedback      bool
}

// RecordInput is what the interaction logger persists for a turn.
type RecordInput struct {
	AccountID     int64
	Message       string
	Response      string
	TopicHint     domain.Topic
	DetectedTopic domain.Topic
	LatencyMs     int64
	SessionID     string
}
