package entity

// ContactSummary is the directory snapshot exposed to clients by contact
// discovery and embedded in conversation listings.
type ContactSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	StoreName   string `json:"store_name,omitempty"`
	Label       string `json:"label"`
}

// Conversation is derived from the message log at read time and never
// persisted. UnreadCount reflects the messages visible in the current inbox
// window, not the lifetime unread total for the counterparty.
type Conversation struct {
	PartnerID   string          `json:"partner_id"`
	Partner     *ContactSummary `json:"partner,omitempty"`
	LastMessage *Message        `json:"last_message"`
	UnreadCount int             `json:"unread_count"`
}
