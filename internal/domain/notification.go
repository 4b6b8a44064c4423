package domain

import "time"

type NotificationType string

const (
	NotifBookingCreated   NotificationType = "booking_created"
	NotifBookingConfirmed NotificationType = "booking_confirmed"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifBookingCompleted NotificationType = "booking_completed"
	NotifPaymentReceived  NotificationType = "payment_received"
	NotifNewRating        NotificationType = "new_rating"
	NotifNewMessage       NotificationType = "new_message"
)

type Notification struct {
	ID        int64            `json:"id" gorm:"primaryKey"`
	UserID    int64            `json:"user_id" gorm:"index;not null"`
	Type      NotificationType `json:"type" gorm:"not null"`
	Title     string           `json:"title" gorm:"not null"`
	Body      string           `json:"body,omitempty" gorm:"type:text"`
	Data      string           `json:"data,omitempty" gorm:"type:text"`
	IsRead    bool             `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
