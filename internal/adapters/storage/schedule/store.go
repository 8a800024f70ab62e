package schedule

import (
	"context"

	domain "gymdesk/internal/domain/schedule"
)

// Row is one schedule as shown in the listing, with the owning trainer
// joined in by name.
type Row struct {
	ID           int64
	ScheduleName string
	TimeSlot     string
	Trainer      string
}

// Option is the id/name pair used to populate form dropdowns.
type Option struct {
	ID   int64
	Name string
}

// Store defines the interface for workout schedule persistence.
type Store interface {
	Insert(ctx context.Context, s domain.Schedule) error
	ListWithTrainer(ctx context.Context) ([]Row, error)
	ListOptions(ctx context.Context) ([]Option, error)
}
