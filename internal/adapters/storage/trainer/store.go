package trainer

import (
	"context"

	domain "gymdesk/internal/domain/trainer"
)

// Option is the id/name pair used to populate form dropdowns.
type Option struct {
	ID   int64
	Name string
}

// Store defines the interface for trainer persistence.
type Store interface {
	Insert(ctx context.Context, t domain.Trainer) error
	List(ctx context.Context) ([]domain.Trainer, error)
	ListOptions(ctx context.Context) ([]Option, error)
}
