package member

import (
	"errors"
	"strings"
)

// Member holds a gym member record. The ID and join date are assigned by the
// store on insert.
type Member struct {
	ID     int64
	Name   string
	Gender string
	Phone  string // optional, stored as empty text when absent
	Email  string // optional, stored as empty text when absent
}

// Validate checks presence of the required fields.
// PRE: Member struct is initialized
// POST: Returns error if a required field is blank, nil otherwise
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("member name cannot be empty")
	}
	if strings.TrimSpace(m.Gender) == "" {
		return errors.New("member gender cannot be empty")
	}
	return nil
}
