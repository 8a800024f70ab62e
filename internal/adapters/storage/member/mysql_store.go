package member

import (
	"context"
	"database/sql"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/member"
)

// NoPlansPlaceholder is shown in the member listing for members with zero
// plan assignments.
const NoPlansPlaceholder = "—"

// MySQLStore implements Store against MySQL.
type MySQLStore struct {
	db storage.SQLDB
}

// NewMySQLStore creates a new member store.
func NewMySQLStore(db storage.SQLDB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Insert adds one member row. The store assigns member_id and join_date.
// PRE: m has been validated
// POST: Exactly one row is inserted
func (s *MySQLStore) Insert(ctx context.Context, m domain.Member) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO Members (name, gender, phone, email) VALUES (?,?,?,?)",
		m.Name, m.Gender, m.Phone, m.Email)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByID retrieves a member by its ID.
// PRE: id > 0
// POST: Returns the entity or an error if not found
func (s *MySQLStore) GetByID(ctx context.Context, id int64) (domain.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT member_id, name, gender, phone, email FROM Members WHERE member_id = ?", id)

	var m domain.Member
	err := row.Scan(&m.ID, &m.Name, &m.Gender, &m.Phone, &m.Email)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	return m, err
}

// ListWithPlans returns every member once, ordered by member_id ascending,
// with all assigned plan names aggregated into one comma-joined field.
// Members with zero assignments still appear, carrying the placeholder text.
func (s *MySQLStore) ListWithPlans(ctx context.Context) ([]Row, error) {
	query := `
		SELECT m.member_id, m.name, m.gender, m.phone, m.email,
		       DATE_FORMAT(m.join_date, '%d-%b-%Y') AS joined,
		       IFNULL(GROUP_CONCAT(p.plan_name SEPARATOR ', '), ?) AS plans
		FROM Members m
		LEFT JOIN Member_Plan mp ON mp.member_id = m.member_id
		LEFT JOIN Membership_Plans p ON p.plan_id = mp.plan_id
		GROUP BY m.member_id
		ORDER BY m.member_id`

	rows, err := s.db.QueryContext(ctx, query, NoPlansPlaceholder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Name, &r.Gender, &r.Phone, &r.Email, &r.Joined, &r.Plans); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ListOptions returns id/name pairs for form dropdowns, ordered by member_id.
func (s *MySQLStore) ListOptions(ctx context.Context) ([]Option, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT member_id, name FROM Members ORDER BY member_id")
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
