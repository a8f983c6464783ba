package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"dapurkita/internal/domain/entity"
	"dapurkita/internal/domain/repository"
	"dapurkita/internal/domain/service"
	"dapurkita/pkg/errors"
	"dapurkita/pkg/logger"
)

const (
	maxSubjectLength = 200
	maxBodyLength    = 5000
)

type MessagingUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifier    Notifier
}

func NewMessagingUseCase(messageRepo repository.MessageRepository, userRepo repository.UserRepository, notifier Notifier) *MessagingUseCase {
	return &MessagingUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

type SendMessageInput struct {
	RecipientID string
	Subject     string
	Body        string
	ContextType string
	ContextID   string
}

// SendMessage validates, authorizes and persists a new message. All
// pre-condition checks run before any store write, so a failed send never
// leaves a partial message behind.
func (uc *MessagingUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	subject := strings.TrimSpace(input.Subject)
	body := strings.TrimSpace(input.Body)

	if subject == "" || body == "" {
		return nil, errors.BadRequest("Subject and body are required", nil)
	}
	if input.RecipientID == senderID {
		return nil, errors.BadRequest("You cannot send a message to yourself", nil)
	}
	if utf8.RuneCountInString(subject) > maxSubjectLength {
		return nil, errors.BadRequest("Subject must be at most 200 characters", nil)
	}
	if utf8.RuneCountInString(body) > maxBodyLength {
		return nil, errors.BadRequest("Body must be at most 5000 characters", nil)
	}

	recipient, err := uc.userRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Warn("SendMessage: recipient %s not found: %v", input.RecipientID, err)
			return nil, errors.NotFound("Recipient", err)
		}
		return nil, err
	}

	sender, err := uc.userRepo.GetByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("Sender", err)
		}
		return nil, err
	}

	// Roles are re-resolved above; a stale discovery list on the client
	// cannot widen the policy.
	if err := service.CanMessage(sender.Role, recipient.Role); err != nil {
		logger.Debug("SendMessage: %s (%s) denied messaging %s (%s)", senderID, sender.Role, recipient.ID, recipient.Role)
		return nil, err
	}

	message := &entity.Message{
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Subject:     subject,
		Body:        body,
		IsRead:      false,
		ContextType: input.ContextType,
		ContextID:   input.ContextID,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		logger.Error("SendMessage: failed to persist message from %s to %s: %v", senderID, recipient.ID, err)
		return nil, err
	}

	// Fire-and-forget; a dropped or failed notification never fails the send.
	uc.notifier.Notify(recipient.ID, "new_message", map[string]interface{}{
		"message": message,
		"sender": map[string]interface{}{
			"id":           sender.ID,
			"display_name": sender.DisplayName,
		},
	})

	return message, nil
}

// GetInbox derives the conversation list from a window of the caller's
// message log. The window is createdAt descending, so the first message seen
// for a counterparty is its most recent one. Unread counts only cover
// messages inside the window, and total counts messages, not conversations.
func (uc *MessagingUseCase) GetInbox(ctx context.Context, userID string, page, limit int) ([]*entity.Conversation, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	messages, total, err := uc.messageRepo.ListByParticipant(ctx, userID, limit, offset)
	if err != nil {
		logger.Error("GetInbox: failed to list messages for user %s: %v", userID, err)
		return nil, 0, err
	}

	// Grouping state is local to this call.
	byPartner := make(map[string]*entity.Conversation)
	conversations := make([]*entity.Conversation, 0, len(messages))

	for _, message := range messages {
		partnerID := message.SenderID
		if partnerID == userID {
			partnerID = message.RecipientID
		}

		conversation, ok := byPartner[partnerID]
		if !ok {
			conversation = &entity.Conversation{
				PartnerID:   partnerID,
				LastMessage: message,
			}
			byPartner[partnerID] = conversation
			conversations = append(conversations, conversation)
		}

		if message.RecipientID == userID && !message.IsRead {
			conversation.UnreadCount++
		}
	}

	for _, conversation := range conversations {
		partner, err := uc.userRepo.GetByID(ctx, conversation.PartnerID)
		if err != nil {
			logger.Warn("GetInbox: partner %s not found for user %s: %v", conversation.PartnerID, userID, err)
			continue
		}
		conversation.Partner = toContactSummary(partner)
	}

	return conversations, total, nil
}

// GetConversation returns one page of the exchange with a partner. Page 1 is
// the most recent window; within each page messages are chronological oldest
// first.
func (uc *MessagingUseCase) GetConversation(ctx context.Context, userID, partnerID string, page, limit int) (*entity.ContactSummary, []*entity.Message, int64, error) {
	partner, err := uc.userRepo.GetByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, nil, 0, errors.NotFound("User", err)
		}
		return nil, nil, 0, err
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	messages, total, err := uc.messageRepo.ListByPair(ctx, userID, partnerID, limit, offset)
	if err != nil {
		logger.Error("GetConversation: failed to list messages between %s and %s: %v", userID, partnerID, err)
		return nil, nil, 0, err
	}

	messages = lo.Reverse(messages)

	return toContactSummary(partner), messages, total, nil
}

// MarkConversationRead flips every unread message from senderID to the
// caller in one bulk update. Safe to repeat: a second call modifies nothing.
func (uc *MessagingUseCase) MarkConversationRead(ctx context.Context, userID, senderID string) (int64, error) {
	modified, err := uc.messageRepo.MarkPairRead(ctx, userID, senderID)
	if err != nil {
		logger.Error("MarkConversationRead: failed for recipient %s, sender %s: %v", userID, senderID, err)
		return 0, err
	}

	return modified, nil
}
