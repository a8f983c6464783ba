package entity

import "time"

// Message is immutable after creation except for the isRead/readAt
// transition performed by the repository's bulk read-state update.
type Message struct {
	ID          string     `json:"id" firestore:"id"`
	SenderID    string     `json:"sender_id" firestore:"senderId"`
	RecipientID string     `json:"recipient_id" firestore:"recipientId"`
	Subject     string     `json:"subject" firestore:"subject"`
	Body        string     `json:"body" firestore:"body"`
	IsRead      bool       `json:"is_read" firestore:"isRead"`
	ReadAt      *time.Time `json:"read_at,omitempty" firestore:"readAt,omitempty"`

	// Provenance metadata recorded on send ("cook_contact", "dish_contact",
	// "order_contact"). Not consulted by the permission checks.
	ContextType string `json:"context_type,omitempty" firestore:"contextType,omitempty"`
	ContextID   string `json:"context_id,omitempty" firestore:"contextId,omitempty"`

	ParentMessageID string `json:"parent_message_id,omitempty" firestore:"parentMessageId,omitempty"` // reserved
	ThreadID        string `json:"thread_id,omitempty" firestore:"threadId,omitempty"`                // reserved

	// Query helper fields maintained by the repository on create.
	Participants []string `json:"-" firestore:"participants"`
	PairKey      string   `json:"-" firestore:"pairKey"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
