package plan

import (
	"context"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/plan"
)

// MySQLStore implements Store against MySQL.
type MySQLStore struct {
	db storage.SQLDB
}

// NewMySQLStore creates a new plan store.
func NewMySQLStore(db storage.SQLDB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Insert adds one plan row. The store assigns plan_id.
// PRE: p has been validated
// POST: Exactly one row is inserted
func (s *MySQLStore) Insert(ctx context.Context, p domain.Plan) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO Membership_Plans (plan_name, duration_months, fee) VALUES (?,?,?)",
		p.PlanName, p.DurationMonths, p.Fee)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// List returns all plans ordered by plan_id ascending.
func (s *MySQLStore) List(ctx context.Context) ([]domain.Plan, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT plan_id, plan_name, duration_months, fee FROM Membership_Plans ORDER BY plan_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.PlanName, &p.DurationMonths, &p.Fee); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// ListForAssignment returns the id/name/duration triples the assignment form
// and the assign-plan orchestrator both work from.
func (s *MySQLStore) ListForAssignment(ctx context.Context) ([]AssignOption, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT plan_id, plan_name, duration_months FROM Membership_Plans ORDER BY plan_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []AssignOption
	for rows.Next() {
		var o AssignOption
		if err := rows.Scan(&o.ID, &o.Name, &o.DurationMonths); err != nil {
			return nil, err
		}
		results = append(results, o)
	}
	return results, rows.Err()
}
