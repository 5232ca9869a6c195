package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	domain "github.com/barberconnect/barberconnect-api/internal/domain/booking"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	ShopID     uint

	// Service as submitted by the client. Only existence is checked
	// against the shop's list; price and duration are taken as sent and
	// frozen on the booking.
	ServiceName     string
	ServicePrice    float64
	ServiceDuration int

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Shop must exist and be active
	// --------------------------------------------------
	shop, err := uc.repo.GetActiveShop(ctx, in.ShopID)
	if err != nil {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	// --------------------------------------------------
	// 2. Service must be offered by the shop (exact name match)
	// --------------------------------------------------
	offered := false
	for _, s := range shop.Services {
		if s.Name == in.ServiceName {
			offered = true
			break
		}
	}
	if !offered {
		return nil, httperr.ErrBusiness("service_not_available")
	}

	// --------------------------------------------------
	// 3. Slot must be strictly in the future
	// --------------------------------------------------
	date, at, err := domain.ParseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if !at.After(uc.now()) {
		return nil, httperr.ErrBusiness("appointment_in_past")
	}

	// --------------------------------------------------
	// 4. Slot must be free (checked and enforced in the repository)
	// --------------------------------------------------
	b := &models.Booking{
		Code:       uuid.NewString(),
		CustomerID: in.CustomerID,
		ShopID:     shop.ID,

		ServiceName:        in.ServiceName,
		ServicePrice:       in.ServicePrice,
		ServiceDurationMin: in.ServiceDuration,

		AppointmentDate: date,
		AppointmentTime: in.Time,
		AppointmentAt:   at,

		Status: string(domain.InitialStatus()),
		Notes:  in.Notes,

		// Shop state frozen at booking time.
		EstimatedWaitingTime: shop.CurrentWaitingTime,
		TotalAmount:          in.ServicePrice,
		PaymentStatus:        "pending",
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shop.ID,
		UserID:   &in.CustomerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	// Re-read with shop and customer expanded for the response.
	created, err := uc.repo.GetBooking(ctx, b.ID)
	if err != nil {
		return b, nil
	}

	return created, nil
}
