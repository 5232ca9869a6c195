package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/barberconnect/barberconnect-api/internal/httperr"
)

func TestParseSlot(t *testing.T) {
	t.Run("combines date and time", func(t *testing.T) {
		date, at, err := ParseSlot("2026-03-14", "14:30")
		require.NoError(t, err)

		require.Equal(t, 2026, date.Year())
		require.Equal(t, time.March, date.Month())
		require.Equal(t, 14, date.Day())

		require.Equal(t, 14, at.Hour())
		require.Equal(t, 30, at.Minute())
		require.Equal(t, 0, at.Second())
	})

	t.Run("same inputs give identical instants", func(t *testing.T) {
		_, a, err := ParseSlot("2026-03-14", "14:30")
		require.NoError(t, err)
		_, b, err := ParseSlot("2026-03-14", "14:30")
		require.NoError(t, err)

		require.True(t, a.Equal(b))
	})

	t.Run("different minutes are distinct slots", func(t *testing.T) {
		_, a, err := ParseSlot("2026-03-14", "14:30")
		require.NoError(t, err)
		_, b, err := ParseSlot("2026-03-14", "14:45")
		require.NoError(t, err)

		require.False(t, a.Equal(b))
	})

	t.Run("rejects bad date", func(t *testing.T) {
		_, _, err := ParseSlot("14/03/2026", "14:30")
		require.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	})

	t.Run("rejects bad time", func(t *testing.T) {
		_, _, err := ParseSlot("2026-03-14", "2pm")
		require.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

		_, _, err = ParseSlot("2026-03-14", "25:00")
		require.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
	})
}
