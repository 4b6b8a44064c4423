package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestBooking_EffectivePrice(t *testing.T) {
	b := &Booking{OriginalPrice: 15000}
	assert.Equal(t, 15000.0, b.EffectivePrice())

	b.NegotiatedPrice = fptr(12000)
	assert.Equal(t, 12000.0, b.EffectivePrice())

	// Zero is a valid negotiated price, not "unset".
	b.NegotiatedPrice = fptr(0)
	assert.Equal(t, 0.0, b.EffectivePrice())
}

func TestBooking_PlatformFee_DefaultsToFivePercent(t *testing.T) {
	b := &Booking{OriginalPrice: 15000}
	assert.Equal(t, 750.0, b.PlatformFee())
	assert.Equal(t, 15750.0, b.TotalDue())

	b.NegotiatedPrice = fptr(12000)
	assert.Equal(t, 600.0, b.PlatformFee())
	assert.Equal(t, 12600.0, b.TotalDue())
}

func TestBooking_PlatformFee_RoundsToWholeUnit(t *testing.T) {
	// 5% of 1010 = 50.5, rounds half away from zero.
	b := &Booking{OriginalPrice: 1010}
	assert.Equal(t, 51.0, b.PlatformFee())

	b = &Booking{OriginalPrice: 999}
	assert.Equal(t, 50.0, b.PlatformFee()) // 49.95 -> 50
}

func TestBooking_PlatformFee_Override(t *testing.T) {
	b := &Booking{OriginalPrice: 15000, PlatformFeeOvr: fptr(1000)}
	assert.Equal(t, 1000.0, b.PlatformFee())
	assert.Equal(t, 16000.0, b.TotalDue())
}

func TestBooking_IsParty(t *testing.T) {
	b := &Booking{ArtistID: 1, ClientID: 2}
	assert.True(t, b.IsParty(1))
	assert.True(t, b.IsParty(2))
	assert.False(t, b.IsParty(3))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingCompleted, false},
		{BookingPending, BookingPending, false},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, false},
		{BookingConfirmed, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCancelled, BookingCompleted, false},
		{BookingCompleted, BookingConfirmed, false},
		{BookingCompleted, BookingPending, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}
