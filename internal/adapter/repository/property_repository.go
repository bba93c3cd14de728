package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
)

// PropertyRepository handles property reference data
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// FindWithFAQs retrieves a property and its FAQs
func (r *PropertyRepository) FindWithFAQs(ctx context.Context, propertyID uuid.UUID) (*entities.Property, error) {
	var property entities.Property
	if err := r.db.WithContext(ctx).
		Preload("FAQs").
		Where("id = ?", propertyID).
		First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}
