package plan

import (
	"context"

	domain "gymdesk/internal/domain/plan"
)

// AssignOption carries what the assignment form needs per plan: the duration
// is kept so the create path can derive a missing end date.
type AssignOption struct {
	ID             int64
	Name           string
	DurationMonths int
}

// AssignmentRow is one member/plan assignment as shown in the listing, with
// both sides of the association joined in and dates pre-formatted.
type AssignmentRow struct {
	MemberID       int64
	MemberName     string
	PlanName       string
	StartDate      string // formatted dd-Mon-yyyy
	EndDate        string // formatted dd-Mon-yyyy
	DurationMonths int
	Fee            float64
}

// Store defines the interface for membership plan persistence.
type Store interface {
	Insert(ctx context.Context, p domain.Plan) error
	List(ctx context.Context) ([]domain.Plan, error)
	ListForAssignment(ctx context.Context) ([]AssignOption, error)
}

// AssignmentStore defines the interface for the member/plan association.
// Insert stores an explicit date window; InsertWithComputedEnd delegates the
// end-date arithmetic (start + months) to the database.
type AssignmentStore interface {
	Insert(ctx context.Context, a domain.Assignment) error
	InsertWithComputedEnd(ctx context.Context, a domain.Assignment, months int) error
	ListDetailed(ctx context.Context) ([]AssignmentRow, error)
}
