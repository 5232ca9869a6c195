package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	domain "github.com/barberconnect/barberconnect-api/internal/domain/booking"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/models"
)

func seedBooking(repo *fakeRepo, customerID uint, status domain.Status) *models.Booking {
	b := &models.Booking{
		ID:         repo.nextID,
		CustomerID: customerID,
		ShopID:     1,
		Status:     string(status),
	}
	repo.nextID++
	repo.bookings[b.ID] = b
	return b
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels pending booking", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusPending)

		uc := NewCancelBooking(repo, audit.Nop())

		got, err := uc.Execute(ctx, 7, b.ID)
		require.NoError(t, err)
		require.Equal(t, "cancelled", got.Status)
		require.Equal(t, "cancelled", repo.bookings[b.ID].Status)
	})

	t.Run("cancels confirmed booking", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusConfirmed)

		uc := NewCancelBooking(repo, audit.Nop())

		got, err := uc.Execute(ctx, 7, b.ID)
		require.NoError(t, err)
		require.Equal(t, "cancelled", got.Status)
	})

	t.Run("refuses once service started", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusInProgress)

		uc := NewCancelBooking(repo, audit.Nop())

		_, err := uc.Execute(ctx, 7, b.ID)
		require.True(t, httperr.IsBusiness(err, "invalid_state"))
		require.Equal(t, "in_progress", repo.bookings[b.ID].Status)
	})

	t.Run("refuses completed booking", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusCompleted)

		uc := NewCancelBooking(repo, audit.Nop())

		_, err := uc.Execute(ctx, 7, b.ID)
		require.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("other customer's booking is invisible", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusPending)

		uc := NewCancelBooking(repo, audit.Nop())

		_, err := uc.Execute(ctx, 8, b.ID)
		require.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		uc := NewCancelBooking(repo, audit.Nop())

		_, err := uc.Execute(ctx, 7, 999)
		require.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})
}
