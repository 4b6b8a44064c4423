package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"glambook/internal/domain"
)

type Service struct {
	payments PaymentRepository
	bookings BookingRepository
	notifs   NotificationSender
	secret   []byte
	log      *logrus.Logger
}

func NewService(payments PaymentRepository, bookings BookingRepository, notifs NotificationSender, gatewaySecret string, log *logrus.Logger) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		notifs:   notifs,
		secret:   []byte(gatewaySecret),
		log:      log,
	}
}

// Init opens a payment attempt for a confirmed booking. The amount is
// computed server-side from the booking; the client never supplies it.
func (s *Service) Init(ctx context.Context, clientID int64, req InitPaymentRequest) (*InitPaymentResponse, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingConfirmed || b.PaymentStatus == domain.PaymentPaid {
		return nil, ErrNotPayable
	}

	amount := b.TotalDue()
	ref := uuid.NewString()
	sig := s.sign(ref, amount, "paid")

	p := &domain.GatewayPayment{
		BookingID: b.ID,
		Reference: ref,
		Amount:    amount,
		Status:    domain.GatewayPaymentCreated,
		Signature: sig,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	return &InitPaymentResponse{
		Reference: ref,
		Amount:    amount,
		Signature: sig,
	}, nil
}

// HandleCallback processes the gateway's server-to-server confirmation.
// It verifies the HMAC, checks the amount against the booking's total
// due, and flips the booking to paid exactly once.
func (s *Service) HandleCallback(ctx context.Context, cb GatewayCallback) error {
	if !hmac.Equal([]byte(s.sign(cb.Reference, cb.Amount, cb.Status)), []byte(cb.Signature)) {
		return ErrInvalidSignature
	}

	p, err := s.payments.GetByReference(ctx, cb.Reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	raw, _ := json.Marshal(cb)

	if cb.Status != "paid" {
		return s.payments.MarkFailed(ctx, cb.Reference, string(raw), cb.Reason)
	}

	b, err := s.bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		return err
	}

	// Amounts come back through JSON, so compare with a cent of slack.
	if math.Abs(cb.Amount-b.TotalDue()) > 0.01 {
		_ = s.payments.MarkFailed(ctx, cb.Reference, string(raw),
			fmt.Sprintf("amount %.2f does not match total due %.2f", cb.Amount, b.TotalDue()))
		return ErrAmountMismatch
	}

	changed, err := s.payments.MarkPaid(ctx, cb.Reference, string(raw), time.Now())
	if err != nil {
		return err
	}
	if !changed {
		// Gateways retry callbacks; the first one already settled this.
		s.log.WithField("reference", cb.Reference).Info("duplicate payment callback ignored")
		return nil
	}

	if err := s.bookings.UpdatePaymentStatus(ctx, b.ID, domain.PaymentPaid); err != nil {
		return err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyPaymentReceived(ctx, b.ArtistID, b.ID, cb.Amount)
	}
	return nil
}

// GetStatus lets a booking party poll the payment state.
func (s *Service) GetStatus(ctx context.Context, userID int64, reference string) (*domain.GatewayPayment, error) {
	p, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsParty(userID) {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *Service) sign(reference string, amount float64, status string) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%.2f|%s", reference, amount, status)
	return hex.EncodeToString(mac.Sum(nil))
}
