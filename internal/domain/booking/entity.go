package booking

import (
	"time"

	"github.com/barberconnect/barberconnect-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus writes the new status and stamps the actual start/end times
// on the transitions that begin and finish service.
func ApplyStatus(b *models.Booking, next Status, now time.Time) {
	b.Status = string(next)

	switch next {
	case StatusInProgress:
		b.ActualStartTime = &now
	case StatusCompleted:
		b.ActualEndTime = &now
	}
}

// Cancel is the customer-side transition. It is the only guarded one.
func Cancel(b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}
