package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServicesFromInput(t *testing.T) {
	in := []ServiceInput{
		{Name: "Haircut", Price: 30, Duration: 30},
		{Name: "Beard Trim", Description: "razor finish", Price: 15, Duration: 15},
	}

	out := servicesFromInput(in)
	require.Len(t, out, 2)

	// Submission order survives as Position.
	require.Equal(t, 0, out[0].Position)
	require.Equal(t, 1, out[1].Position)

	require.Equal(t, "Haircut", out[0].Name)
	require.Equal(t, 30.0, out[0].Price)
	require.Equal(t, 30, out[0].DurationMin)
	require.Equal(t, "razor finish", out[1].Description)
}

func TestHoursFromInput(t *testing.T) {
	in := []OperatingDayInput{
		{Weekday: 1, Open: "09:00", Close: "18:00"},
		{Weekday: 0, Closed: true},
	}

	out := hoursFromInput(in)
	require.Len(t, out, 2)

	require.Equal(t, 1, out[0].Weekday)
	require.Equal(t, "09:00", out[0].Open)
	require.Equal(t, "18:00", out[0].Close)
	require.False(t, out[0].Closed)

	require.Equal(t, 0, out[1].Weekday)
	require.True(t, out[1].Closed)
}

func TestServicesFromInputEmpty(t *testing.T) {
	require.Empty(t, servicesFromInput(nil))
	require.Empty(t, hoursFromInput(nil))
}
