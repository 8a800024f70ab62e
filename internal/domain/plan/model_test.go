package plan_test

import (
	"testing"

	"gymdesk/internal/domain/plan"
)

// TestPlan_Validate tests presence validation of Plan.
func TestPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       plan.Plan
		wantErr bool
	}{
		{
			name:    "valid plan",
			p:       plan.Plan{PlanName: "Gold", DurationMonths: 3, Fee: 49.99},
			wantErr: false,
		},
		{
			name:    "missing name",
			p:       plan.Plan{DurationMonths: 3, Fee: 49.99},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			p:       plan.Plan{PlanName: "  ", DurationMonths: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Plan.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestAssignment_Validate tests presence validation of Assignment.
func TestAssignment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       plan.Assignment
		wantErr bool
	}{
		{
			name:    "valid with explicit end date",
			a:       plan.Assignment{MemberID: 1, PlanID: 2, StartDate: "2024-01-01", EndDate: "2024-04-01"},
			wantErr: false,
		},
		{
			name: "valid without end date",
			a:    plan.Assignment{MemberID: 1, PlanID: 2, StartDate: "2024-01-01"},
			// end date is derived by the store from the plan duration
			wantErr: false,
		},
		{
			name:    "missing member",
			a:       plan.Assignment{PlanID: 2, StartDate: "2024-01-01"},
			wantErr: true,
		},
		{
			name:    "missing plan",
			a:       plan.Assignment{MemberID: 1, StartDate: "2024-01-01"},
			wantErr: true,
		},
		{
			name:    "missing start date",
			a:       plan.Assignment{MemberID: 1, PlanID: 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Assignment.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
