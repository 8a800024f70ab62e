package trainer

import (
	"errors"
	"strings"
)

// Trainer holds a trainer record. The ID is assigned by the store on insert.
type Trainer struct {
	ID             int64
	Name           string
	Specialization string
	ContactNo      string // optional, stored as empty text when absent
}

// Validate checks presence of the required fields.
// PRE: Trainer struct is initialized
// POST: Returns error if a required field is blank, nil otherwise
func (t *Trainer) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("trainer name cannot be empty")
	}
	if strings.TrimSpace(t.Specialization) == "" {
		return errors.New("trainer specialization cannot be empty")
	}
	return nil
}
