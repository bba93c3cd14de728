package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageDirection indicates whether a message was received from the guest
// or sent by the system
type MessageDirection string

const (
	MessageDirectionInbound  MessageDirection = "inbound"
	MessageDirectionOutbound MessageDirection = "outbound"
)

// SystemSender is the sender identifier used for pipeline-generated replies
const SystemSender = "system"

// Message is a single communication unit inside a session. Inbound messages
// arrive through external ingestion; outbound messages are created
// exclusively by the responder stage. Identity and ordering (by SentAt) are
// immutable once created.
type Message struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID uuid.UUID        `json:"session_id" gorm:"type:uuid;not null;index"`
	Direction MessageDirection `json:"direction" gorm:"type:varchar(10);not null;index"`
	Body      string           `json:"body" gorm:"type:text;not null"`
	Sender    string           `json:"sender" gorm:"type:varchar(255)"`
	Recipient string           `json:"recipient" gorm:"type:varchar(255)"`
	SentAt    time.Time        `json:"sent_at" gorm:"type:timestamp;not null;index"`

	Metadata datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// NewOutboundMessage creates a reply message addressed to the sender of the
// original inbound message
func NewOutboundMessage(sessionID uuid.UUID, recipient, body string) *Message {
	return &Message{
		ID:        uuid.New(),
		SessionID: sessionID,
		Direction: MessageDirectionOutbound,
		Body:      body,
		Sender:    SystemSender,
		Recipient: recipient,
		SentAt:    time.Now(),
		CreatedAt: time.Now(),
	}
}

// IsInbound reports whether the message came from the guest
func (m *Message) IsInbound() bool {
	return m.Direction == MessageDirectionInbound
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}
