package stats

import (
	"context"

	"gymdesk/internal/adapters/storage"
)

// MySQLStore implements Store against MySQL.
type MySQLStore struct {
	db storage.SQLDB
}

// NewMySQLStore creates a new stats store.
func NewMySQLStore(db storage.SQLDB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Counts runs the six scalar subqueries as one statement and returns the
// combined row. Nothing is cached; every call recounts.
func (s *MySQLStore) Counts(ctx context.Context) (Counts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM Members) AS members,
			(SELECT COUNT(*) FROM Trainers) AS trainers,
			(SELECT COUNT(*) FROM Membership_Plans) AS plans,
			(SELECT COUNT(*) FROM Workout_Schedule) AS schedules,
			(SELECT COUNT(*) FROM Payments) AS payments,
			(SELECT COUNT(*) FROM Attendance) AS attendance`

	var c Counts
	err := s.db.QueryRowContext(ctx, query).Scan(
		&c.Members, &c.Trainers, &c.Plans, &c.Schedules, &c.Payments, &c.Attendance)
	return c, err
}
