package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"arcade-booking/internal/domain/booking"
	"arcade-booking/internal/pkg/clock"
	"arcade-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// VerificationService maps a scanned entry token to a booking and a validity
// verdict. Found-but-invalid and not-found are distinct outcomes so the gate
// can show "expired ticket" instead of "unknown ticket".
type VerificationService struct {
	bookings BookingStore
	clock    clock.Clock
}

type VerifyResult struct {
	Found   bool
	Valid   bool
	Booking *booking.Booking
}

func NewVerificationService(bookings BookingStore, clk clock.Clock) *VerificationService {
	return &VerificationService{bookings: bookings, clock: clk}
}

// Verify accepts either the bare booking identifier or a scanned URL carrying
// it as the bid query parameter. The store is swept first so a booking whose
// slot just ended verifies as expired, not as still valid.
func (s *VerificationService) Verify(ctx context.Context, token string) (VerifyResult, error) {
	id, ok := ExtractToken(token)
	if !ok {
		return VerifyResult{}, nil
	}

	if _, err := s.bookings.SweepExpirations(ctx, s.clock.Now()); err != nil {
		return VerifyResult{}, err
	}

	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			return VerifyResult{}, nil
		}
		return VerifyResult{}, err
	}

	return VerifyResult{
		Found:   true,
		Valid:   b.Status() == booking.StatusConfirmed,
		Booking: b,
	}, nil
}

// ExtractToken pulls the booking identifier out of a raw token. URL parsing
// is deliberately thin: anything with a bid parameter wins, otherwise the
// whole trimmed string must parse as the identifier.
func ExtractToken(token string) (uuid.UUID, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.Nil, false
	}

	if strings.Contains(token, "bid=") {
		if u, err := url.Parse(token); err == nil {
			if bid := u.Query().Get("bid"); bid != "" {
				token = bid
			}
		}
	}

	id, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
