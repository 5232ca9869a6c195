package booking

import (
	"time"

	"github.com/barberconnect/barberconnect-api/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseSlot combines a YYYY-MM-DD date and an HH:MM time into the slot
// instant. Slot identity is exact date+time equality; two bookings only
// collide when their instants match, never by interval overlap.
func ParseSlot(dateStr, timeStr string) (date time.Time, at time.Time, err error) {
	date, err = time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	hm, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	at = time.Date(
		date.Year(), date.Month(), date.Day(),
		hm.Hour(), hm.Minute(), 0, 0,
		time.Local,
	)

	return date, at, nil
}
