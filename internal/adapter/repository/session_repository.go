package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// SessionRepository handles automation session data operations. Sessions are
// created by session-setup routes elsewhere; the pipeline only reads them.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// FindByID retrieves a session by ID
func (r *SessionRepository) FindByID(ctx context.Context, sessionID uuid.UUID) (*entities.Session, error) {
	var session entities.Session
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// FindActiveForAccount retrieves a session scoped to an account. Returns
// nil, nil when the session does not exist or belongs to another account.
func (r *SessionRepository) FindActiveForAccount(ctx context.Context, sessionID, accountID uuid.UUID) (*entities.Session, error) {
	var session entities.Session
	if err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", sessionID, accountID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}
