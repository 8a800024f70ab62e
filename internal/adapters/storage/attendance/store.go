package attendance

import (
	"context"

	domain "gymdesk/internal/domain/attendance"
)

// Row is one attendance mark as shown in the listing, with the attending
// member and the schedule joined in by name.
type Row struct {
	ID         int64
	Member     string
	Schedule   string
	AttendedOn string // attendance_date formatted dd-Mon-yyyy
	Status     string
}

// Store defines the interface for attendance persistence.
type Store interface {
	Insert(ctx context.Context, a domain.Attendance) error
	ListDetailed(ctx context.Context) ([]Row, error)
}
