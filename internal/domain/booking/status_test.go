package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/barberconnect/barberconnect-api/internal/httperr"
	"github.com/barberconnect/barberconnect-api/internal/models"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	} {
		require.True(t, s.Valid(), "expected %q to be valid", s)
	}

	require.False(t, Status("done").Valid())
	require.False(t, Status("").Valid())
}

func TestStatusTerminal(t *testing.T) {
	require.True(t, StatusCompleted.Terminal())
	require.True(t, StatusCancelled.Terminal())
	require.True(t, StatusNoShow.Terminal())

	require.False(t, StatusPending.Terminal())
	require.False(t, StatusConfirmed.Terminal())
	require.False(t, StatusInProgress.Terminal())
}

func TestActiveStatuses(t *testing.T) {
	active := ActiveStatuses()
	require.ElementsMatch(t, []string{"pending", "confirmed", "in_progress"}, active)
}

func TestCanCancel(t *testing.T) {
	require.NoError(t, CanCancel(StatusPending))
	require.NoError(t, CanCancel(StatusConfirmed))

	for _, s := range []Status{StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow} {
		err := CanCancel(s)
		require.True(t, httperr.IsBusiness(err, "invalid_state"), "status %q", s)
	}
}

func TestApplyStatusStampsTimes(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("in_progress stamps actual start", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusConfirmed)}
		ApplyStatus(b, StatusInProgress, now)

		require.Equal(t, "in_progress", b.Status)
		require.NotNil(t, b.ActualStartTime)
		require.Equal(t, now, *b.ActualStartTime)
		require.Nil(t, b.ActualEndTime)
	})

	t.Run("completed stamps actual end", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusInProgress)}
		ApplyStatus(b, StatusCompleted, now)

		require.Equal(t, "completed", b.Status)
		require.NotNil(t, b.ActualEndTime)
		require.Equal(t, now, *b.ActualEndTime)
	})

	t.Run("other statuses leave times alone", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPending)}
		ApplyStatus(b, StatusConfirmed, now)

		require.Equal(t, "confirmed", b.Status)
		require.Nil(t, b.ActualStartTime)
		require.Nil(t, b.ActualEndTime)
	})

	t.Run("owner may override any status", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusCancelled)}
		ApplyStatus(b, StatusConfirmed, now)
		require.Equal(t, "confirmed", b.Status)
	})
}

func TestCancel(t *testing.T) {
	t.Run("pending cancels", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPending)}
		require.NoError(t, Cancel(b))
		require.Equal(t, "cancelled", b.Status)
	})

	t.Run("in_progress refuses", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusInProgress)}
		err := Cancel(b)
		require.True(t, httperr.IsBusiness(err, "invalid_state"))
		require.Equal(t, "in_progress", b.Status)
	})
}
