package member

import (
	"context"

	domain "gymdesk/internal/domain/member"
)

// Row is one member as shown in the member listing: dates pre-formatted by
// the store and all assigned plan names collapsed into one text field.
type Row struct {
	ID     int64
	Name   string
	Gender string
	Phone  string
	Email  string
	Joined string // join_date formatted dd-Mon-yyyy
	Plans  string // comma-joined plan names, or the placeholder when none
}

// Option is the id/name pair used to populate form dropdowns.
type Option struct {
	ID   int64
	Name string
}

// Store defines the interface for member persistence.
type Store interface {
	Insert(ctx context.Context, m domain.Member) error
	GetByID(ctx context.Context, id int64) (domain.Member, error)
	ListWithPlans(ctx context.Context) ([]Row, error)
	ListOptions(ctx context.Context) ([]Option, error)
}
