package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a bounded automation run scope for one guest
// conversation scenario. Sessions are created by session setup routes and
// are read-only to the automation pipeline.
type Session struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID uuid.UUID       `json:"account_id" gorm:"type:uuid;not null;index"`
	Scenario  ScenarioPayload `json:"scenario" gorm:"type:jsonb;serializer:json"`
	Active    bool            `json:"active" gorm:"not null;default:true;index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// ScenarioPayload holds the conversation scenario: the property under
// discussion, the guest profile and the synthetic booking window. Every
// field is optional; consumers must default missing values.
type ScenarioPayload struct {
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	GuestName  string     `json:"guest_name,omitempty"`
	GuestEmail string     `json:"guest_email,omitempty"`
	GuestPhone string     `json:"guest_phone,omitempty"`
	CheckIn    string     `json:"check_in,omitempty"`
	CheckOut   string     `json:"check_out,omitempty"`
}

// NewSession creates a new automation session
func NewSession(accountID uuid.UUID, scenario ScenarioPayload) *Session {
	return &Session{
		ID:        uuid.New(),
		AccountID: accountID,
		Scenario:  scenario,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// GuestDisplayName returns the scenario guest name or a placeholder
func (s *Session) GuestDisplayName() string {
	if s == nil || s.Scenario.GuestName == "" {
		return "Guest"
	}
	return s.Scenario.GuestName
}

// TableName specifies the table name for GORM
func (Session) TableName() string {
	return "automation_sessions"
}
