package stats

import "context"

// Counts is the single dashboard row: one literal row count per table,
// taken at the instant of the query.
type Counts struct {
	Members    int
	Trainers   int
	Plans      int
	Schedules  int
	Payments   int
	Attendance int
}

// Store defines the interface for the dashboard aggregate read.
type Store interface {
	Counts(ctx context.Context) (Counts, error)
}
