package booking

import (
	"context"

	"github.com/barberconnect/barberconnect-api/internal/models"
)

type Repository interface {
	// -------- Shop --------
	GetActiveShop(
		ctx context.Context,
		shopID uint,
	) (*models.Shop, error)

	GetShopForBarber(
		ctx context.Context,
		shopID uint,
		barberID uint,
	) (*models.Shop, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking persists the booking inside a transaction that locks
	// and re-checks the slot; a taken slot yields the slot_already_booked
	// business error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	GetBookingForCustomer(
		ctx context.Context,
		bookingID uint,
		customerID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
