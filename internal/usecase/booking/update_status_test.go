package booking

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/barberconnect/barberconnect-api/internal/audit"
	domain "github.com/barberconnect/barberconnect-api/internal/domain/booking"
	"github.com/barberconnect/barberconnect-api/internal/httperr"
)

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms a pending booking", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusPending)

		uc := NewUpdateBookingStatus(repo, audit.Nop())

		got, err := uc.Execute(ctx, 10, b.ID, domain.StatusConfirmed)
		require.NoError(t, err)
		require.Equal(t, "confirmed", got.Status)
		require.Nil(t, got.ActualStartTime)
	})

	t.Run("in_progress stamps actual start", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusConfirmed)

		uc := NewUpdateBookingStatus(repo, audit.Nop())
		uc.now = fixedNow

		got, err := uc.Execute(ctx, 10, b.ID, domain.StatusInProgress)
		require.NoError(t, err)
		require.NotNil(t, got.ActualStartTime)
		require.Equal(t, fixedNow(), *got.ActualStartTime)
	})

	t.Run("completed stamps actual end", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusInProgress)

		uc := NewUpdateBookingStatus(repo, audit.Nop())
		uc.now = fixedNow

		got, err := uc.Execute(ctx, 10, b.ID, domain.StatusCompleted)
		require.NoError(t, err)
		require.NotNil(t, got.ActualEndTime)
		require.Equal(t, fixedNow(), *got.ActualEndTime)
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusCancelled)

		uc := NewUpdateBookingStatus(repo, audit.Nop())

		got, err := uc.Execute(ctx, 10, b.ID, domain.StatusConfirmed)
		require.NoError(t, err)
		require.Equal(t, "confirmed", got.Status)
	})

	t.Run("rejects unknown status value", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusPending)

		uc := NewUpdateBookingStatus(repo, audit.Nop())

		_, err := uc.Execute(ctx, 10, b.ID, domain.Status("done"))
		require.True(t, httperr.IsBusiness(err, "invalid_status"))
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		uc := NewUpdateBookingStatus(repo, audit.Nop())

		_, err := uc.Execute(ctx, 10, 999, domain.StatusConfirmed)
		require.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})

	t.Run("reviving a booking into a taken slot conflicts", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusCancelled)
		repo.updateErr = &pgconn.PgError{Code: "23505"}

		uc := NewUpdateBookingStatus(repo, audit.Nop())

		_, err := uc.Execute(ctx, 10, b.ID, domain.StatusConfirmed)
		require.True(t, httperr.IsBusiness(err, "slot_already_booked"))
	})

	t.Run("barber of another shop is denied", func(t *testing.T) {
		repo := newFakeRepo(testShop(), 10)
		b := seedBooking(repo, 7, domain.StatusPending)

		uc := NewUpdateBookingStatus(repo, audit.Nop())

		_, err := uc.Execute(ctx, 11, b.ID, domain.StatusConfirmed)
		require.True(t, httperr.IsBusiness(err, "access_denied"))
	})
}
