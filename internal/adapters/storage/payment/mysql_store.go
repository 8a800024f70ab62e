package payment

import (
	"context"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/payment"
)

// MySQLStore implements Store against MySQL.
type MySQLStore struct {
	db storage.SQLDB
}

// NewMySQLStore creates a new payment store.
func NewMySQLStore(db storage.SQLDB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Insert adds one payment row. The store assigns payment_id and payment_date.
// PRE: p has been validated
// POST: Exactly one row is inserted
func (s *MySQLStore) Insert(ctx context.Context, p domain.Payment) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO Payments (member_id, schedule_id, amount, mode_of_payment) VALUES (?,?,?,?)",
		p.MemberID, p.ScheduleID, p.Amount, p.ModeOfPayment)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListDetailed returns all payments joined with member and schedule names,
// ordered by payment_id ascending.
func (s *MySQLStore) ListDetailed(ctx context.Context) ([]Row, error) {
	query := `
		SELECT p.payment_id, m.name AS member, ws.schedule_name AS schedule,
		       p.amount, DATE_FORMAT(p.payment_date, '%d-%b-%Y') AS paid_on, p.mode_of_payment
		FROM Payments p
		JOIN Members m ON m.member_id = p.member_id
		JOIN Workout_Schedule ws ON ws.schedule_id = p.schedule_id
		ORDER BY p.payment_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Member, &r.Schedule, &r.Amount, &r.PaidOn, &r.Mode); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
