package orchestrators

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/schedule"
)

// ScheduleStore defines the schedule store interface needed by AddSchedule.
type ScheduleStore interface {
	Insert(ctx context.Context, s schedule.Schedule) error
}

// AddScheduleInput carries input for the add-schedule orchestrator.
type AddScheduleInput struct {
	TrainerID    int64
	ScheduleName string
	TimeSlot     string
}

// AddScheduleDeps holds dependencies for AddSchedule.
type AddScheduleDeps struct {
	ScheduleStore ScheduleStore
}

// ExecuteAddSchedule inserts one new workout schedule row owned by a trainer.
// PRE: TrainerID was coerced by the form layer
// POST: Exactly one schedule row exists for this call
func ExecuteAddSchedule(ctx context.Context, input AddScheduleInput, deps AddScheduleDeps) error {
	s := schedule.Schedule{
		TrainerID:    input.TrainerID,
		ScheduleName: input.ScheduleName,
		TimeSlot:     input.TimeSlot,
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if err := deps.ScheduleStore.Insert(ctx, s); err != nil {
		return err
	}

	slog.Info("schedule_added", "name", s.ScheduleName, "trainer_id", s.TrainerID)
	return nil
}
