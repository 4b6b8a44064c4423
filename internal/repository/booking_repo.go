package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	ArtistID        int64      `gorm:"column:artist_id"`
	ClientID        int64      `gorm:"column:client_id"`
	ServiceID       int64      `gorm:"column:service_id"`
	BookingDate     time.Time  `gorm:"column:booking_date"`
	Status          string     `gorm:"column:status"`
	OriginalPrice   float64    `gorm:"column:original_price"`
	NegotiatedPrice *float64   `gorm:"column:negotiated_price"`
	PlatformFee     *float64   `gorm:"column:platform_fee"`
	ClientNotes     *string    `gorm:"column:client_notes"`
	ArtistNotes     *string    `gorm:"column:artist_notes"`
	TravelAddress   *string    `gorm:"column:travel_address"`
	PaymentStatus   string     `gorm:"column:payment_status"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:              m.ID,
		ArtistID:        m.ArtistID,
		ClientID:        m.ClientID,
		ServiceID:       m.ServiceID,
		BookingDate:     m.BookingDate,
		Status:          domain.BookingStatus(m.Status),
		OriginalPrice:   m.OriginalPrice,
		NegotiatedPrice: m.NegotiatedPrice,
		PlatformFeeOvr:  m.PlatformFee,
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CancelledAt:     m.CancelledAt,
	}
	if m.ClientNotes != nil {
		b.ClientNotes = *m.ClientNotes
	}
	if m.ArtistNotes != nil {
		b.ArtistNotes = *m.ArtistNotes
	}
	if m.TravelAddress != nil {
		b.TravelAddress = *m.TravelAddress
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:              b.ID,
		ArtistID:        b.ArtistID,
		ClientID:        b.ClientID,
		ServiceID:       b.ServiceID,
		BookingDate:     b.BookingDate,
		Status:          string(b.Status),
		OriginalPrice:   b.OriginalPrice,
		NegotiatedPrice: b.NegotiatedPrice,
		PlatformFee:     b.PlatformFeeOvr,
		PaymentStatus:   string(b.PaymentStatus),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
	if b.ClientNotes != "" {
		v := b.ClientNotes
		m.ClientNotes = &v
	}
	if b.ArtistNotes != "" {
		v := b.ArtistNotes
		m.ArtistNotes = &v
	}
	if b.TravelAddress != "" {
		v := b.TravelAddress
		m.TravelAddress = &v
	}
	return m
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// Confirm moves the booking to confirmed, applying the artist's optional
// negotiated price and notes. original_price is deliberately not in the
// update set.
func (r *BookingRepository) Confirm(ctx context.Context, id int64, negotiatedPrice *float64, artistNotes string) error {
	updates := map[string]any{"status": string(domain.BookingConfirmed)}
	if negotiatedPrice != nil {
		updates["negotiated_price"] = *negotiatedPrice
	}
	if artistNotes != "" {
		updates["artist_notes"] = artistNotes
	}
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Cancel moves the booking to cancelled with the artist's decline notes.
func (r *BookingRepository) Cancel(ctx context.Context, id int64, artistNotes string) error {
	updates := map[string]any{
		"status":       string(domain.BookingCancelled),
		"cancelled_at": time.Now(),
	}
	if artistNotes != "" {
		updates["artist_notes"] = artistNotes
	}
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status)).Error
}

func (r *BookingRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Booking, error) {
	return r.list(ctx, "artist_id = ?", artistID)
}

func (r *BookingRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	return r.list(ctx, "client_id = ?", clientID)
}

func (r *BookingRepository) list(ctx context.Context, cond string, arg any) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Where(cond, arg).Order("booking_date DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
