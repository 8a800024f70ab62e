package schedule

import (
	"context"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/schedule"
)

// MySQLStore implements Store against MySQL.
type MySQLStore struct {
	db storage.SQLDB
}

// NewMySQLStore creates a new schedule store.
func NewMySQLStore(db storage.SQLDB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Insert adds one schedule row. The store assigns schedule_id.
// PRE: s has been validated
// POST: Exactly one row is inserted
func (st *MySQLStore) Insert(ctx context.Context, s domain.Schedule) error {
	_, err := st.db.ExecContext(ctx,
		"INSERT INTO Workout_Schedule (trainer_id, schedule_name, time_slot) VALUES (?,?,?)",
		s.TrainerID, s.ScheduleName, s.TimeSlot)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

// ListWithTrainer returns all schedules joined with their trainer's name,
// ordered by schedule_id ascending.
func (st *MySQLStore) ListWithTrainer(ctx context.Context) ([]Row, error) {
	query := `
		SELECT ws.schedule_id, ws.schedule_name, ws.time_slot, t.name AS trainer
		FROM Workout_Schedule ws
		JOIN Trainers t ON t.trainer_id = ws.trainer_id
		ORDER BY ws.schedule_id`

	rows, err := st.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.ScheduleName, &r.TimeSlot, &r.Trainer); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ListOptions returns id/name pairs for form dropdowns, ordered by schedule_id.
func (st *MySQLStore) ListOptions(ctx context.Context) ([]Option, error) {
	rows, err := st.db.QueryContext(ctx,
		"SELECT schedule_id, schedule_name FROM Workout_Schedule ORDER BY schedule_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		results = append(results, o)
	}
	return results, rows.Err()
}
