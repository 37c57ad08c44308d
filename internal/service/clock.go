package service

import (
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
)

// BookingPolicy is the time and retry configuration of the booking flow.
type BookingPolicy struct {
	Location       *time.Location
	Payment        domain.PaymentPolicy
	NumberAttempts int
}

func (p BookingPolicy) withDefaults() BookingPolicy {
	if p.Location == nil {
		p.Location = time.UTC
	}
	if p.Payment == (domain.PaymentPolicy{}) {
		p.Payment = domain.DefaultPaymentPolicy
	}
	if p.NumberAttempts < 1 {
		p.NumberAttempts = 5
	}
	return p
}

func utcNow() time.Time { return time.Now().UTC() }
