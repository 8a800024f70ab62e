package plan

import (
	"errors"
	"strings"
)

// Plan holds a membership plan. The ID is assigned by the store on insert.
// Fee is a decimal amount; DurationMonths drives store-side end-date
// arithmetic when an assignment omits its end date.
type Plan struct {
	ID             int64
	PlanName       string
	DurationMonths int
	Fee            float64
}

// Validate checks presence of the required fields.
// PRE: Plan struct is initialized
// POST: Returns error if a required field is blank, nil otherwise
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.PlanName) == "" {
		return errors.New("plan name cannot be empty")
	}
	return nil
}

// Assignment links a member to a plan for a date window. EndDate may be left
// empty by the caller, in which case the store derives it from the plan's
// duration in months.
type Assignment struct {
	MemberID  int64
	PlanID    int64
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD, optional
}

// Validate checks presence of the required fields.
// PRE: Assignment struct is initialized
// POST: Returns error if a required field is blank or unset, nil otherwise
func (a *Assignment) Validate() error {
	if a.MemberID <= 0 {
		return errors.New("assignment requires a member")
	}
	if a.PlanID <= 0 {
		return errors.New("assignment requires a plan")
	}
	if strings.TrimSpace(a.StartDate) == "" {
		return errors.New("assignment start date cannot be empty")
	}
	return nil
}
