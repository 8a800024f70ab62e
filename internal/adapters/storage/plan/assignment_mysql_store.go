package plan

import (
	"context"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/plan"
)

// AssignmentMySQLStore implements AssignmentStore against MySQL.
type AssignmentMySQLStore struct {
	db storage.SQLDB
}

// NewAssignmentMySQLStore creates a new assignment store.
func NewAssignmentMySQLStore(db storage.SQLDB) *AssignmentMySQLStore {
	return &AssignmentMySQLStore{db: db}
}

// Insert stores an assignment with an explicit end date.
// PRE: a has been validated and a.EndDate is set
// POST: Exactly one association row is inserted
func (s *AssignmentMySQLStore) Insert(ctx context.Context, a domain.Assignment) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO Member_Plan (member_id, plan_id, start_date, end_date) VALUES (?,?,?,?)",
		a.MemberID, a.PlanID, a.StartDate, a.EndDate)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// InsertWithComputedEnd stores an assignment whose end date is derived by
// MySQL as start_date plus the plan duration in months. Month arithmetic
// stays in the database so calendar edge cases match DATE_ADD exactly.
// PRE: a has been validated; months is the selected plan's duration
// POST: Exactly one association row is inserted with the derived end date
func (s *AssignmentMySQLStore) InsertWithComputedEnd(ctx context.Context, a domain.Assignment, months int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO Member_Plan (member_id, plan_id, start_date, end_date)
		 VALUES (?,?,?, DATE_ADD(?, INTERVAL ? MONTH))`,
		a.MemberID, a.PlanID, a.StartDate, a.StartDate, months)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// ListDetailed returns every assignment joined with its member and plan,
// ordered by member_id ascending. An assignment whose member or plan was
// removed out-of-band drops out of the listing.
func (s *AssignmentMySQLStore) ListDetailed(ctx context.Context) ([]AssignmentRow, error) {
	query := `
		SELECT m.member_id, m.name, p.plan_name,
		       DATE_FORMAT(mp.start_date, '%d-%b-%Y') AS start_date,
		       DATE_FORMAT(mp.end_date, '%d-%b-%Y') AS end_date,
		       p.duration_months, p.fee
		FROM Member_Plan mp
		JOIN Members m ON m.member_id = mp.member_id
		JOIN Membership_Plans p ON p.plan_id = mp.plan_id
		ORDER BY m.member_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []AssignmentRow
	for rows.Next() {
		var r AssignmentRow
		if err := rows.Scan(&r.MemberID, &r.MemberName, &r.PlanName, &r.StartDate, &r.EndDate, &r.DurationMonths, &r.Fee); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
