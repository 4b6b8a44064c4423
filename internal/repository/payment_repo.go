package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.GatewayPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByReference(ctx context.Context, ref string) (*domain.GatewayPayment, error) {
	var p domain.GatewayPayment
	tx := r.db.WithContext(ctx).Where("reference = ?", ref).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// MarkPaid flips the payment to paid exactly once; repeated callbacks
// for the same reference report changed=false and nothing is rewritten.
func (r *PaymentRepository) MarkPaid(ctx context.Context, ref, rawCallback string, paidAt time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.GatewayPayment{}).
		Where("reference = ? AND status <> ?", ref, string(domain.GatewayPaymentPaid)).
		Updates(map[string]any{
			"status":       string(domain.GatewayPaymentPaid),
			"raw_callback": rawCallback,
			"paid_at":      paidAt,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, ref, rawCallback, reason string) error {
	return r.db.WithContext(ctx).Model(&domain.GatewayPayment{}).
		Where("reference = ?", ref).
		Updates(map[string]any{
			"status":       string(domain.GatewayPaymentFailed),
			"raw_callback": rawCallback,
			"fail_reason":  reason,
		}).Error
}
