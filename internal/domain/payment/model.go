package payment

import (
	"errors"
	"strings"
)

// Payment records money received from a member against a schedule. The ID and
// payment date are assigned by the store on insert.
type Payment struct {
	ID            int64
	MemberID      int64
	ScheduleID    int64
	Amount        float64
	ModeOfPayment string // free text ("cash", "card", "UPI")
}

// Validate checks presence of the required fields.
// PRE: Payment struct is initialized
// POST: Returns error if a required field is blank or unset, nil otherwise
func (p *Payment) Validate() error {
	if p.MemberID <= 0 {
		return errors.New("payment requires a member")
	}
	if p.ScheduleID <= 0 {
		return errors.New("payment requires a schedule")
	}
	if strings.TrimSpace(p.ModeOfPayment) == "" {
		return errors.New("payment mode cannot be empty")
	}
	return nil
}
