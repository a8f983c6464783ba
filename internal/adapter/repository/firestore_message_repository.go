package repository

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"dapurkita/internal/domain/entity"
	"dapurkita/internal/domain/repository"
	"dapurkita/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

// PairKey returns the deterministic conversation key for two user ids, so
// that both directions of a pair land on the same key.
func PairKey(userID1, userID2 string) string {
	ids := []string{userID1, userID2}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now
	message.Participants = []string{message.SenderID, message.RecipientID}
	message.PairKey = PairKey(message.SenderID, message.RecipientID)

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*entity.Message, int64, error) {
	query := r.client.Collection("messages").
		Where("participants", "array-contains", userID).
		OrderBy("createdAt", firestore.Desc)

	return r.listMessages(ctx, query, limit, offset)
}

func (r *firestoreMessageRepository) ListByPair(ctx context.Context, userID, partnerID string, limit, offset int) ([]*entity.Message, int64, error) {
	query := r.client.Collection("messages").
		Where("pairKey", "==", PairKey(userID, partnerID)).
		OrderBy("createdAt", firestore.Desc)

	return r.listMessages(ctx, query, limit, offset)
}

func (r *firestoreMessageRepository) listMessages(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Message, int64, error) {
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Firestore error while counting messages: %v", err)
		return nil, 0, errors.Internal("Failed to count messages", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while iterating messages: %v", err)
			return nil, 0, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			log.Printf("Error parsing message data: %v", err)
			return nil, 0, errors.Internal("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	return messages, total, nil
}

func (r *firestoreMessageRepository) MarkPairRead(ctx context.Context, recipientID, senderID string) (int64, error) {
	query := r.client.Collection("messages").
		Where("recipientId", "==", recipientID).
		Where("senderId", "==", senderID).
		Where("isRead", "==", false)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to query unread messages", err)
	}

	if len(docs) == 0 {
		return 0, nil
	}

	now := time.Now()
	bw := r.client.BulkWriter(ctx)
	for _, doc := range docs {
		_, err := bw.Update(doc.Ref, []firestore.Update{
			{Path: "isRead", Value: true},
			{Path: "readAt", Value: now},
			{Path: "updatedAt", Value: now},
		})
		if err != nil {
			bw.End()
			return 0, errors.Internal("Failed to queue read-state update", err)
		}
	}
	bw.End()

	return int64(len(docs)), nil
}
