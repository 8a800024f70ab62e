package attendance

import (
	"context"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/attendance"
)

// MySQLStore implements Store against MySQL.
type MySQLStore struct {
	db storage.SQLDB
}

// NewMySQLStore creates a new attendance store.
func NewMySQLStore(db storage.SQLDB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Insert adds one attendance row. The store assigns attendance_id and
// attendance_date. Repeated marks for the same member/schedule pair each
// produce their own row.
// PRE: a has been validated
// POST: Exactly one row is inserted
func (s *MySQLStore) Insert(ctx context.Context, a domain.Attendance) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO Attendance (attender_id, schedule_id, status) VALUES (?,?,?)",
		a.AttenderID, a.ScheduleID, a.Status)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// ListDetailed returns all attendance marks joined with member and schedule
// names, ordered by attendance_id ascending.
func (s *MySQLStore) ListDetailed(ctx context.Context) ([]Row, error) {
	query := `
		SELECT a.attendance_id, m.name AS member, ws.schedule_name AS schedule,
		       DATE_FORMAT(a.attendance_date, '%d-%b-%Y') AS attended_on, a.status
		FROM Attendance a
		JOIN Members m ON m.member_id = a.attender_id
		JOIN Workout_Schedule ws ON ws.schedule_id = a.schedule_id
		ORDER BY a.attendance_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Member, &r.Schedule, &r.AttendedOn, &r.Status); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
