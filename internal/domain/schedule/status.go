package schedule

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

// ActiveStatuses are the statuses that count toward conflict checks.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

// Active reports whether an appointment in this status still holds its
// time range. CANCELED, COMPLETED and NO_SHOW never block new bookings.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// DefaultStatus is applied when a create request omits the status.
func DefaultStatus() Status {
	return StatusConfirmed
}
