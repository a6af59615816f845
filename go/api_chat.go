package adoptionserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	chathttpmapper "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/http/mapper"
	chatapp "github.com/Apurer/petadopt-api/internal/domains/chat/application"
	chatdomain "github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	chatports "github.com/Apurer/petadopt-api/internal/domains/chat/ports"
)

// ChatAPI wires HTTP transport with the assistant. Every response uses the
// {success, ...} envelope chat clients expect.
type ChatAPI struct {
	service chatports.Service
}

// NewChatAPI wires dependencies.
func NewChatAPI(service chatports.Service) ChatAPI {
	return ChatAPI{service: service}
}

// Post /v1/chat/messages
// Ask the assistant
func (api *ChatAPI) SendMessage(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	var payload chathttpmapper.MessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondChatFailure(c, http.StatusBadRequest, chathttpmapper.MessageInvalidJSON)
		return
	}
	result, err := api.service.HandleMessage(c.Request.Context(), chathttpmapper.ToMessageInput(account.ID, payload))
	if err != nil {
		respondChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, chathttpmapper.FromMessageResult(result))
}

// Post /v1/chat/feedback
// Rate an assistant reply
func (api *ChatAPI) SubmitFeedback(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	var payload chathttpmapper.FeedbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondChatFailure(c, http.StatusBadRequest, chathttpmapper.MessageInvalidJSON)
		return
	}
	if payload.InteractionID == nil || *payload.InteractionID <= 0 {
		respondChatFailure(c, http.StatusBadRequest, chathttpmapper.MessageMissingID)
		return
	}
	if payload.Feedback == nil {
		respondChatFailure(c, http.StatusBadRequest, chathttpmapper.MessageInvalidJSON)
		return
	}
	if err := api.service.SubmitFeedback(c.Request.Context(), chathttpmapper.ToFeedbackInput(account.ID, payload)); err != nil {
		respondChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, chathttpmapper.Ack{Success: true, Message: chathttpmapper.MessageFeedbackSaved})
}

// Get /v1/chat/history
// The caller's recent conversation
func (api *ChatAPI) History(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	items, err := api.service.History(c.Request.Context(), account.ID)
	if err != nil {
		respondChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, chathttpmapper.FromInteractions(items))
}

// Get /v1/chat/suggestions
// Listings near the caller
func (api *ChatAPI) Suggestions(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	records, err := api.service.Suggestions(c.Request.Context(), account.ID)
	if err != nil {
		respondChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, chathttpmapper.FromPetRecords(records))
}

func respondChatFailure(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, chathttpmapper.Failure{Success: false, Error: message})
}

// respondChatError never forwards the text of unexpected errors.
func respondChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chatdomain.ErrEmptyMessage):
		respondChatFailure(c, http.StatusBadRequest, chathttpmapper.MessageEmpty)
	case errors.Is(err, chatdomain.ErrMissingInteraction):
		respondChatFailure(c, http.StatusBadRequest, chathttpmapper.MessageMissingID)
	case errors.Is(err, chatdomain.ErrSessionIDTooLong):
		respondChatFailure(c, http.StatusBadRequest, chathttpmapper.MessageSessionTooLong)
	case errors.Is(err, chatapp.ErrInvalidInput):
		respondChatFailure(c, http.StatusBadRequest, chathttpmapper.MessageInvalidJSON)
	case errors.Is(err, chatports.ErrInteractionNotFound):
		respondChatFailure(c, http.StatusNotFound, chathttpmapper.MessageNotFound)
	case errors.Is(err, chatports.ErrUserNotFound):
		respondChatFailure(c, http.StatusUnauthorized, chathttpmapper.MessageUserNotFound)
	case errors.Is(err, chatapp.ErrForbidden):
		respondChatFailure(c, http.StatusForbidden, chathttpmapper.MessageForbidden)
	default:
		respondChatFailure(c, http.StatusInternalServerError, chathttpmapper.MessageInternal)
	}
}
