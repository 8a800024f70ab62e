package orchestrators

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/attendance"
)

// AttendanceStore defines the attendance store interface needed by MarkAttendance.
type AttendanceStore interface {
	Insert(ctx context.Context, a attendance.Attendance) error
}

// MarkAttendanceInput carries input for the mark-attendance orchestrator.
type MarkAttendanceInput struct {
	MemberID   int64
	ScheduleID int64
	Status     string
}

// MarkAttendanceDeps holds dependencies for MarkAttendance.
type MarkAttendanceDeps struct {
	AttendanceStore AttendanceStore
}

// ExecuteMarkAttendance inserts one attendance row. Marking the same member
// and schedule again is not deduplicated; each call is its own row.
// PRE: numeric fields were coerced by the form layer
// POST: Exactly one attendance row exists for this call
func ExecuteMarkAttendance(ctx context.Context, input MarkAttendanceInput, deps MarkAttendanceDeps) error {
	a := attendance.Attendance{
		AttenderID: input.MemberID,
		ScheduleID: input.ScheduleID,
		Status:     input.Status,
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := deps.AttendanceStore.Insert(ctx, a); err != nil {
		return err
	}

	slog.Info("attendance_marked", "member_id", a.AttenderID, "schedule_id", a.ScheduleID, "status", a.Status)
	return nil
}
