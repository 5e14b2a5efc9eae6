package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// GormUserRepository implements UserDirectory using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// SetHasCountry upserts the user's has-country flag
func (r *GormUserRepository) SetHasCountry(ctx context.Context, userID shared.UserID, hasCountry bool) error {
	now := time.Now().UTC()
	model := &UserModel{
		ID:         userID.Value(),
		HasCountry: hasCountry,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"has_country", "updated_at"}),
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

// HasCountry reads the flag; unknown users have no country
func (r *GormUserRepository) HasCountry(ctx context.Context, userID shared.UserID) (bool, error) {
	var model UserModel
	result := r.db.WithContext(ctx).Where("id = ?", userID.Value()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return model.HasCountry, nil
}
