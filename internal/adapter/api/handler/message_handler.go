package handler

import (
	"github.com/labstack/echo/v4"

	"dapurkita/internal/usecase"
	"dapurkita/pkg/response"
	"dapurkita/pkg/utils"
)

type MessageHandler struct {
	messagingUseCase *usecase.MessagingUseCase
}

func NewMessageHandler(messagingUseCase *usecase.MessagingUseCase) *MessageHandler {
	return &MessageHandler{
		messagingUseCase: messagingUseCase,
	}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Body        string `json:"body" validate:"required,max=5000"`
	// Provenance only ("cook_contact", "dish_contact", "order_contact");
	// stored on the message, never consulted by the permission checks.
	ContextType string `json:"context_type,omitempty"`
	ContextID   string `json:"context_id,omitempty"`
}

// Send creates a new message to a recipient
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.messagingUseCase.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
		ContextType: req.ContextType,
		ContextID:   req.ContextID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// GetInbox lists the caller's conversations, newest exchange first
func (h *MessageHandler) GetInbox(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	conversations, total, err := h.messagingUseCase.GetInbox(c.Request().Context(), userID, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, params.Page, params.PageSize)
}

// GetConversation returns one page of the exchange with a partner
func (h *MessageHandler) GetConversation(c echo.Context) error {
	userID := c.Get("uid").(string)
	partnerID := c.Param("userId")
	params := utils.GetPaginationParams(c)

	partner, messages, total, err := h.messagingUseCase.GetConversation(c.Request().Context(), userID, partnerID, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	totalPages := int(total) / params.PageSize
	if int(total)%params.PageSize > 0 {
		totalPages++
	}

	return response.Success(c, map[string]interface{}{
		"partner":  partner,
		"messages": messages,
		"pagination": map[string]interface{}{
			"total":      total,
			"page":       params.Page,
			"pageSize":   params.PageSize,
			"totalPages": totalPages,
		},
	})
}

// MarkRead marks every unread message from a sender as read
func (h *MessageHandler) MarkRead(c echo.Context) error {
	userID := c.Get("uid").(string)
	senderID := c.Param("senderId")

	modified, err := h.messagingUseCase.MarkConversationRead(c.Request().Context(), userID, senderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"modified_count": modified,
	})
}
