package schedule

import (
	"errors"
	"strings"
)

// Schedule holds a workout schedule owned by a single trainer. TimeSlot is
// free text ("Mon/Wed 6-7pm"); the ID is assigned by the store on insert.
type Schedule struct {
	ID           int64
	TrainerID    int64
	ScheduleName string
	TimeSlot     string
}

// Validate checks presence of the required fields.
// PRE: Schedule struct is initialized
// POST: Returns error if a required field is blank or unset, nil otherwise
func (s *Schedule) Validate() error {
	if s.TrainerID <= 0 {
		return errors.New("schedule requires a trainer")
	}
	if strings.TrimSpace(s.ScheduleName) == "" {
		return errors.New("schedule name cannot be empty")
	}
	if strings.TrimSpace(s.TimeSlot) == "" {
		return errors.New("schedule time slot cannot be empty")
	}
	return nil
}
