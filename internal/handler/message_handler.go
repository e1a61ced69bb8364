package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/middleware"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/models"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/service"
	"github.com/sumityadav0955/travel-guide-backend-go/pkg/response"
)

// MessageHandler handles HTTP requests for direct messages
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send handles POST /api/v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid message payload")
		return
	}

	msg, err := h.messageService.Send(middleware.UserID(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Created(c, msg)
}

// Conversations handles GET /api/v1/messages
func (h *MessageHandler) Conversations(c *gin.Context) {
	conversations, err := h.messageService.Conversations(middleware.UserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  conversations,
		"count": len(conversations),
	})
}

// Conversation handles GET /api/v1/messages/:id
func (h *MessageHandler) Conversation(c *gin.Context) {
	peerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var filter models.MessageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.messageService.Conversation(middleware.UserID(c), peerID, filter)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}

// MarkRead handles POST /api/v1/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	peerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.messageService.MarkConversationRead(middleware.UserID(c), peerID); err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, nil)
}
