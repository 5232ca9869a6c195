package booking

import (
	"context"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	domain "github.com/barberconnect/barberconnect-api/internal/domain/booking"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels the customer's own booking. Allowed only from pending
// or confirmed; the row is kept with status cancelled.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	customerID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Cancel(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   b.ShopID,
		UserID:   &customerID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
