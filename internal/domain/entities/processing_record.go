package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProcessType identifies a pipeline stage in the idempotency ledger
type ProcessType string

const (
	ProcessTypeSummarization      ProcessType = "summarization"
	ProcessTypeResponseGeneration ProcessType = "response_generation"
)

// ProcessingStatus represents the state of a processing record
type ProcessingStatus string

const (
	ProcessingStatusPending   ProcessingStatus = "pending"
	ProcessingStatusCompleted ProcessingStatus = "completed"
	ProcessingStatusFailed    ProcessingStatus = "failed"
)

// ProcessingRecord is the idempotency ledger entry for one pipeline stage of
// one message. The composite unique index on (session_id, message_id,
// process_type) guarantees that at most one record per key can exist, which
// closes the check-then-insert race between concurrent runs: a conflicting
// insert means another run already processed the message.
type ProcessingRecord struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID   uuid.UUID        `json:"session_id" gorm:"type:uuid;not null;uniqueIndex:ux_session_message_process,priority:1"`
	MessageID   uuid.UUID        `json:"message_id" gorm:"type:uuid;not null;uniqueIndex:ux_session_message_process,priority:2"`
	ProcessType ProcessType      `json:"process_type" gorm:"type:varchar(50);not null;uniqueIndex:ux_session_message_process,priority:3"`
	Status      ProcessingStatus `json:"status" gorm:"type:varchar(20);not null;index;default:'pending'"`

	Input  datatypes.JSON `json:"input,omitempty" gorm:"type:jsonb"`
	Output datatypes.JSON `json:"output,omitempty" gorm:"type:jsonb"`
	Model  string         `json:"model,omitempty" gorm:"type:varchar(100)"`

	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"type:timestamp"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// NewProcessingRecord creates a ledger entry in pending state
func NewProcessingRecord(sessionID, messageID uuid.UUID, processType ProcessType) *ProcessingRecord {
	return &ProcessingRecord{
		ID:          uuid.New(),
		SessionID:   sessionID,
		MessageID:   messageID,
		ProcessType: processType,
		Status:      ProcessingStatusPending,
		CreatedAt:   time.Now(),
	}
}

// MarkCompleted transitions the record to completed with its output snapshot
func (r *ProcessingRecord) MarkCompleted(output datatypes.JSON, model string) {
	r.Status = ProcessingStatusCompleted
	r.Output = output
	r.Model = model
	now := time.Now()
	r.CompletedAt = &now
}

// IsCompleted reports whether this stage already ran to completion
func (r *ProcessingRecord) IsCompleted() bool {
	return r != nil && r.Status == ProcessingStatusCompleted
}

// TableName specifies the table name for GORM
func (ProcessingRecord) TableName() string {
	return "processing_records"
}
