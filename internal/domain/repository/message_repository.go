package repository

import (
	"context"

	"dapurkita/internal/domain/entity"
)

// MessageRepository is the thin interface over the append-only message log.
// Listings are ordered by createdAt descending; totals count every matching
// message, not distinct conversations.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*entity.Message, int64, error)
	ListByPair(ctx context.Context, userID, partnerID string, limit, offset int) ([]*entity.Message, int64, error)

	// MarkPairRead flips every unread message from senderID to recipientID
	// to read in one bulk update and reports how many were modified.
	MarkPairRead(ctx context.Context, recipientID, senderID string) (int64, error)
}
