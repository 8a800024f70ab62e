package attendance

import (
	"errors"
	"strings"
)

// Attendance records a member attending a schedule on a date. The ID and
// attendance date are assigned by the store on insert. Status is free text
// ("present", "late"). The same member/schedule pair may be marked any number
// of times; each mark is its own row.
type Attendance struct {
	ID         int64
	AttenderID int64
	ScheduleID int64
	Status     string
}

// Validate checks presence of the required fields.
// PRE: Attendance struct is initialized
// POST: Returns error if a required field is blank or unset, nil otherwise
func (a *Attendance) Validate() error {
	if a.AttenderID <= 0 {
		return errors.New("attendance requires a member")
	}
	if a.ScheduleID <= 0 {
		return errors.New("attendance requires a schedule")
	}
	if strings.TrimSpace(a.Status) == "" {
		return errors.New("attendance status cannot be empty")
	}
	return nil
}
