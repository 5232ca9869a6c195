package booking

import "github.com/barberconnect/barberconnect-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

// Status values follow the lifecycle
//
//	pending → {confirmed, cancelled}
//	confirmed → {in_progress, cancelled}
//	in_progress → completed
//	terminal: completed, cancelled, no_show
//
// The graph is documentation, not enforcement: shop owners may set any
// status over any other (manual correction is a supported flow). Only
// customer cancellation is guarded.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Terminal statuses never count toward slot occupancy.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ActiveStatuses are the statuses that hold a slot.
func ActiveStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusConfirmed),
		string(StatusInProgress),
	}
}

// CanCancel defines when a customer may cancel their own booking.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
