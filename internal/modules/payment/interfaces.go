package payment

import (
	"context"
	"time"

	"glambook/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.GatewayPayment) error
	GetByReference(ctx context.Context, ref string) (*domain.GatewayPayment, error)
	MarkPaid(ctx context.Context, ref, rawCallback string, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, ref, rawCallback, reason string) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

type NotificationSender interface {
	NotifyPaymentReceived(ctx context.Context, artistID, bookingID int64, amount float64) error
}
