package trainer

import (
	"context"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/trainer"
)

// MySQLStore implements Store against MySQL.
type MySQLStore struct {
	db storage.SQLDB
}

// NewMySQLStore creates a new trainer store.
func NewMySQLStore(db storage.SQLDB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Insert adds one trainer row. The store assigns trainer_id.
// PRE: t has been validated
// POST: Exactly one row is inserted
func (s *MySQLStore) Insert(ctx context.Context, t domain.Trainer) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO Trainers (name, specialization, contact_no) VALUES (?,?,?)",
		t.Name, t.Specialization, t.ContactNo)
	if err != nil {
		return fmt.Errorf("insert trainer: %w", err)
	}
	return nil
}

// List returns all trainers ordered by trainer_id ascending.
func (s *MySQLStore) List(ctx context.Context) ([]domain.Trainer, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT trainer_id, name, specialization, contact_no FROM Trainers ORDER BY trainer_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Trainer
	for rows.Next() {
		var t domain.Trainer
		if err := rows.Scan(&t.ID, &t.Name, &t.Specialization, &t.ContactNo); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// ListOptions returns id/name pairs for form dropdowns, ordered by trainer_id.
func (s *MySQLStore) ListOptions(ctx context.Context) ([]Option, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT trainer_id, name FROM Trainers ORDER BY trainer_id")
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
