package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// MessageRepository handles message data operations
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateMessage inserts a message row. Used by the responder for outbound
// replies; inbound messages arrive through external ingestion.
func (r *MessageRepository) CreateMessage(ctx context.Context, msg *entities.Message) error {
	if msg == nil {
		return errors.New("message cannot be nil")
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

// GetMessageByID retrieves a message by ID
func (r *MessageRepository) GetMessageByID(ctx context.Context, messageID uuid.UUID) (*entities.Message, error) {
	var msg entities.Message
	if err := r.db.WithContext(ctx).Where("id = ?", messageID).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

// ListUnsummarizedInbound retrieves inbound messages in a session that have
// no completed summarization record yet, ascending by send time. This is the
// summarizer's work queue; ordering here fixes the processing order for the
// whole run.
func (r *MessageRepository) ListUnsummarizedInbound(ctx context.Context, sessionID uuid.UUID) ([]entities.Message, error) {
	var messages []entities.Message
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND direction = ?", sessionID, entities.MessageDirectionInbound).
		Where("NOT EXISTS (SELECT 1 FROM processing_records pr WHERE pr.message_id = messages.id AND pr.process_type = ? AND pr.status = ?)",
			entities.ProcessTypeSummarization, entities.ProcessingStatusCompleted).
		Order("sent_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListPriorMessages retrieves up to limit messages in the session strictly
// earlier than the given timestamp, newest first. The context builder
// reverses them into chronological order for presentation.
func (r *MessageRepository) ListPriorMessages(ctx context.Context, sessionID uuid.UUID, before time.Time, limit int) ([]entities.Message, error) {
	if limit == 0 {
		limit = 10
	}
	var messages []entities.Message
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND sent_at < ?", sessionID, before).
		Order("sent_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
