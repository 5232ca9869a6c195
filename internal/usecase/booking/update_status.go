package booking

import (
	"context"
	"time"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	domain "github.com/barberconnect/barberconnect-api/internal/domain/booking"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// Execute sets a new status on a booking of the barber's shop. Any enum
// value may follow any other; only the value itself is validated.
// Entering in_progress stamps the actual start, completed the actual end.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	barberID uint,
	bookingID uint,
	next domain.Status,
) (*models.Booking, error) {

	if !next.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if _, err := uc.repo.GetShopForBarber(ctx, b.ShopID, barberID); err != nil {
		return nil, httperr.ErrBusiness("access_denied")
	}

	domain.ApplyStatus(b, next, uc.now())

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		// Reviving a terminal booking can land on a slot someone else
		// booked meanwhile; the partial slot index rejects the save.
		if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("slot_already_booked")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   b.ShopID,
		UserID:   &barberID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"status": string(next)},
	})

	return b, nil
}
