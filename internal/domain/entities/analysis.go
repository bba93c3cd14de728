package entities

import (
	"github.com/google/uuid"
)

// Summary categories recognized by the pipeline
const (
	CategoryBooking     = "booking"
	CategoryMaintenance = "maintenance"
	CategoryCheckIn     = "check-in"
	CategoryCheckOut    = "check-out"
	CategoryAmenities   = "amenities"
	CategoryComplaint   = "complaint"
	CategoryCleaning    = "cleaning"
	CategoryGeneral     = "general"
)

// Summary priorities, lowest to highest
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Summary is the structured interpretation of one inbound message. It is
// produced once per message by the summarizer, persisted as the output of a
// completed summarization record, and never mutated afterward. The validate
// tags describe the strict schema expected from the completion service; the
// deterministic fallback always satisfies them.
type Summary struct {
	MessageID uuid.UUID `json:"message_id"`

	Language          string   `json:"language" validate:"required"`
	Sentiment         string   `json:"sentiment" validate:"required"`
	Tone              string   `json:"tone" validate:"required"`
	ActionRequired    bool     `json:"actionRequired"`
	ActionTitle       string   `json:"actionTitle"`
	Category          string   `json:"category" validate:"required,oneof=booking maintenance check-in check-out amenities complaint cleaning general"`
	Priority          string   `json:"priority" validate:"required,oneof=low medium high urgent"`
	KeyInformation    []string `json:"keyInformation"`
	SuggestedResponse string   `json:"suggestedResponse"`
}

// ReplyDirective is the responder's output: the guest-facing reply text plus
// routing flags. The reply text becomes an outbound message; the directive
// itself is only part of the run result.
type ReplyDirective struct {
	MessageID         uuid.UUID `json:"message_id"`
	OutboundMessageID uuid.UUID `json:"outbound_message_id"`

	Message          string `json:"message" validate:"required"`
	RequiresFollowUp bool   `json:"requiresFollowUp"`
	EscalationNeeded bool   `json:"escalationNeeded"`
	TaskType         string `json:"taskType"`
}

// FollowUp is a reminder emitted for a stale pending task. Informational
// output of one run, never durable state.
type FollowUp struct {
	TaskID  uuid.UUID `json:"task_id"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
}

// Escalation flags a summary for human attention. Transient; delivery is an
// external concern.
type Escalation struct {
	MessageID         uuid.UUID `json:"message_id"`
	Reason            string    `json:"reason"`
	Summary           *Summary  `json:"summary"`
	RecommendedAction string    `json:"recommended_action"`
}

// PipelineResult aggregates every stage output of one automation run
type PipelineResult struct {
	Summaries   []*Summary        `json:"summaries"`
	Responses   []*ReplyDirective `json:"responses"`
	Tasks       []*Task           `json:"tasks"`
	FollowUps   []FollowUp        `json:"follow_ups"`
	Escalations []Escalation      `json:"escalations"`
	Success     bool              `json:"success"`
}
