package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(ctx context.Context, v *domain.EmailVerification) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// GetActive returns the newest unexpired code row for the user.
func (r *VerificationRepository) GetActive(ctx context.Context, userID int64) (*domain.EmailVerification, error) {
	var v domain.EmailVerification
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		First(&v)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &v, nil
}

func (r *VerificationRepository) DeleteForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.EmailVerification{}).Error
}
