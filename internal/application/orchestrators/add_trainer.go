package orchestrators

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/trainer"
)

// TrainerStore defines the trainer store interface needed by AddTrainer.
type TrainerStore interface {
	Insert(ctx context.Context, t trainer.Trainer) error
}

// AddTrainerInput carries input for the add-trainer orchestrator.
type AddTrainerInput struct {
	Name           string
	Specialization string
	ContactNo      string // optional
}

// AddTrainerDeps holds dependencies for AddTrainer.
type AddTrainerDeps struct {
	TrainerStore TrainerStore
}

// ExecuteAddTrainer inserts one new trainer row.
// PRE: input fields are already trimmed by the form layer
// POST: Exactly one trainer row exists for this call
func ExecuteAddTrainer(ctx context.Context, input AddTrainerInput, deps AddTrainerDeps) error {
	t := trainer.Trainer{
		Name:           input.Name,
		Specialization: input.Specialization,
		ContactNo:      input.ContactNo,
	}
	if err := t.Validate(); err != nil {
		return err
	}

	if err := deps.TrainerStore.Insert(ctx, t); err != nil {
		return err
	}

	slog.Info("trainer_added", "name", t.Name, "specialization", t.Specialization)
	return nil
}
