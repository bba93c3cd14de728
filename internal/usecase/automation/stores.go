package automation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// SessionStore provides session lookups scoped to an account
type SessionStore interface {
	FindActiveForAccount(ctx context.Context, sessionID, accountID uuid.UUID) (*entities.Session, error)
}

// MessageStore provides message reads for context assembly plus outbound
// message creation for the responder
type MessageStore interface {
	CreateMessage(ctx context.Context, msg *entities.Message) error
	GetMessageByID(ctx context.Context, messageID uuid.UUID) (*entities.Message, error)
	ListUnsummarizedInbound(ctx context.Context, sessionID uuid.UUID) ([]entities.Message, error)
	ListPriorMessages(ctx context.Context, sessionID uuid.UUID, before time.Time, limit int) ([]entities.Message, error)
}

// RecordStore is the idempotency ledger. CreateRecord must return
// entities.ErrDuplicateRecord on a (session, message, process type) conflict.
type RecordStore interface {
	FindCompleted(ctx context.Context, sessionID, messageID uuid.UUID, processType entities.ProcessType) (*entities.ProcessingRecord, error)
	CreateRecord(ctx context.Context, record *entities.ProcessingRecord) error
}

// TaskStore provides task creation and the open-task listing the follow-up
// evaluator reads
type TaskStore interface {
	CreateTask(ctx context.Context, task *entities.Task) error
	ListOpenBySession(ctx context.Context, sessionID uuid.UUID) ([]entities.Task, error)
}

// PropertyStore provides property reference data with FAQs preloaded
type PropertyStore interface {
	FindWithFAQs(ctx context.Context, propertyID uuid.UUID) (*entities.Property, error)
}
