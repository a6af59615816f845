package mapper

import (
	"time"

	chattypes "github.com/Apurer/petadopt-api/internal/domains/chat/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	"github.com/Apurer/petadopt-api/internal/shared/locale"
)

// Envelope messages returned to chat clients.
const (
	MessageEmpty          = "Mensagem não pode estar vazia"
	MessageInvalidJSON    = "Dados JSON inválidos"
	MessageSessionTooLong = "Identificador de sessão deve ter no máximo 100 caracteres"
	MessageMissingID      = "ID da interação é obrigatório"
	MessageNotFound       = "Interação não encontrada"
	MessageUserNotFound   = "Usuário não encontrado"
	MessageFeedbackSaved  = "Feedback registrado com sucesso"
	MessageForbidden      = "Acesso restrito à equipe"
	MessageInternal       = "Erro interno"
)

// MessageRequest is one inbound chat turn.
type MessageRequest struct {
	Message   string `json:"message"`
	TopicHint string `json:"topicHint"`
	SessionID string `json:"sessionId"`
}

// FeedbackRequest rates a reply. Pointers distinguish absent fields from zero values.
type FeedbackRequest struct {
	InteractionID *int64 `json:"interactionId"`
	Feedback      *bool  `json:"feedback"`
}

// MessageReply is the success envelope for a chat turn.
type MessageReply struct {
	Success       bool   `json:"success"`
	Response      string `json:"response"`
	LatencyMs     int64  `json:"latencyMs"`
	InteractionID int64  `json:"interactionId"`
	SessionID     string `json:"sessionId"`
	Topic         string `json:"topic"`
}

// Ack is the success envelope for feedback.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Failure is the error envelope shared by every chat endpoint.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Interaction is one history item.
type Interaction struct {
	ID         int64     `json:"id"`
	Message    string    `json:"message"`
	Response   string    `json:"response"`
	Topic      string    `json:"topic"`
	TopicLabel string    `json:"topicLabel"`
	LatencyMs  *int64    `json:"latencyMs,omitempty"`
	Feedback   *bool     `json:"feedback,omitempty"`
	SessionID  string    `json:"sessionId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// History wraps the caller's recent interactions.
type History struct {
	Success bool          `json:"success"`
	Items   []Interaction `json:"items"`
}

// PetSuggestion is a listing proposed on the chat page.
type PetSuggestion struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Species       string `json:"species"`
	SpeciesLabel  string `json:"speciesLabel"`
	Size          string `json:"size"`
	SizeLabel     string `json:"sizeLabel"`
	Age           string `json:"age"`
	City          string `json:"city"`
	Region        string `json:"region"`
	OwnerVerified bool   `json:"ownerVerified"`
}

// Suggestions wraps the proposed listings.
type Suggestions struct {
	Success bool            `json:"success"`
	Items   []PetSuggestion `json:"items"`
}

// TopicCount is one row of the usage report.
type TopicCount struct {
	Topic string `json:"topic"`
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// Stats is the staff usage report.
type Stats struct {
	Success          bool         `json:"success"`
	Total            int64        `json:"total"`
	Topics           []TopicCount `json:"topics"`
	AverageLatencyMs *float64     `json:"averageLatencyMs,omitempty"`
}

// ToMessageInput maps a chat turn for accountID.
func ToMessageInput(accountID int64, model MessageRequest) chattypes.MessageInput {
	return chattypes.MessageInput{
		AccountID: accountID,
		Message:   model.Message,
		TopicHint: model.TopicHint,
		SessionID: model.SessionID,
	}
}

// ToFeedbackInput maps a rating; callers check the pointers first.
func ToFeedbackInput(accountID int64, model FeedbackRequest) chattypes.FeedbackInput {
	input := chattypes.FeedbackInput{AccountID: accountID}
	if model.InteractionID != nil {
		input.InteractionID = *model.InteractionID
	}
	if model.Feedback != nil {
		input.Feedback = *model.Feedback
	}
	return input
}

func FromMessageResult(result *chattypes.MessageResult) MessageReply {
	if result == nil {
		return MessageReply{}
	}
	return MessageReply{
		Success:       true,
		Response:      result.Response,
		LatencyMs:     result.LatencyMs,
		InteractionID: result.InteractionID,
		SessionID:     result.SessionID,
		Topic:         string(result.Topic),
	}
}

func FromInteractions(items []*domain.Interaction) History {
	history := History{Success: true, Items: make([]Interaction, 0, len(items))}
	for _, item := range items {
		if item == nil {
			continue
		}
		history.Items = append(history.Items, Interaction{
			ID:         item.ID,
			Message:    item.Message,
			Response:   item.Response,
			Topic:      string(item.DetectedTopic),
			TopicLabel: item.DetectedTopic.Label(),
			LatencyMs:  item.LatencyMs,
			Feedback:   item.Feedback,
			SessionID:  item.SessionID,
			CreatedAt:  item.CreatedAt,
		})
	}
	return history
}

func FromPetRecords(records []domain.PetRecord) Suggestions {
	suggestions := Suggestions{Success: true, Items: make([]PetSuggestion, 0, len(records))}
	for _, record := range records {
		suggestions.Items = append(suggestions.Items, PetSuggestion{
			ID:            record.ID,
			Name:          record.Name,
			Species:       string(record.Species),
			SpeciesLabel:  record.SpeciesLabel,
			Size:          string(record.Size),
			SizeLabel:     record.SizeLabel,
			Age:           locale.FormatAge(record.AgeMonths),
			City:          record.City,
			Region:        record.Region,
			OwnerVerified: record.OwnerVerified,
		})
	}
	return suggestions
}

func FromStats(stats domain.Stats) Stats {
	out := Stats{Success: true, Total: stats.Total, Topics: make([]TopicCount, 0, len(stats.Topics)), AverageLatencyMs: stats.AverageLatencyMs}
	for _, row := range stats.Topics {
		out.Topics = append(out.Topics, TopicCount{Topic: string(row.Topic), Label: row.Topic.Label(), Total: row.Total})
	}
	return out
}
