package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// ProcessingRecordRepository handles the idempotency ledger
type ProcessingRecordRepository struct {
	db *gorm.DB
}

// NewProcessingRecordRepository creates a new processing record repository
func NewProcessingRecordRepository(db *gorm.DB) *ProcessingRecordRepository {
	return &ProcessingRecordRepository{db: db}
}

// FindCompleted retrieves the completed record for a (session, message,
// process type) key, or nil when none exists. A non-nil result is the skip
// signal for the summarizer and responder stages.
func (r *ProcessingRecordRepository) FindCompleted(ctx context.Context, sessionID, messageID uuid.UUID, processType entities.ProcessType) (*entities.ProcessingRecord, error) {
	var record entities.ProcessingRecord
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND message_id = ? AND process_type = ? AND status = ?",
			sessionID, messageID, processType, entities.ProcessingStatusCompleted).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// CreateRecord inserts a ledger entry. A conflict on the composite unique
// key is translated to entities.ErrDuplicateRecord so callers can treat it
// as "another run got here first" rather than a store failure.
func (r *ProcessingRecordRepository) CreateRecord(ctx context.Context, record *entities.ProcessingRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicateKey(err) {
			return entities.ErrDuplicateRecord
		}
		return err
	}
	return nil
}

// ListBySession retrieves all ledger entries for a session, oldest first
func (r *ProcessingRecordRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entities.ProcessingRecord, error) {
	var records []entities.ProcessingRecord
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// isDuplicateKey recognizes unique-constraint violations across gorm's
// translated error and the raw postgres SQLSTATE.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
