package orchestrators

import (
	"context"
	"errors"
	"testing"

	planStore "gymdesk/internal/adapters/storage/plan"
	"gymdesk/internal/domain/plan"
)

// mockAssignPlanStore returns a fixed plan list for the assignment form.
type mockAssignPlanStore struct {
	plans   []planStore.AssignOption
	listErr error
}

// ListForAssignment implements AssignPlanStore for testing.
func (m *mockAssignPlanStore) ListForAssignment(_ context.Context) ([]planStore.AssignOption, error) {
	return m.plans, m.listErr
}

// mockAssignmentStore records which insert variant was called and with what.
type mockAssignmentStore struct {
	inserted       []plan.Assignment
	computed       []plan.Assignment
	computedMonths []int
	insertErr      error
}

// Insert implements AssignmentStore for testing.
func (m *mockAssignmentStore) Insert(_ context.Context, a plan.Assignment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, a)
	return nil
}

// InsertWithComputedEnd implements AssignmentStore for testing.
func (m *mockAssignmentStore) InsertWithComputedEnd(_ context.Context, a plan.Assignment, months int) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.computed = append(m.computed, a)
	m.computedMonths = append(m.computedMonths, months)
	return nil
}

// TestExecuteAssignPlan_ExplicitEndDate verifies an explicit end date goes
// straight to the plain insert with no duration lookup.
func TestExecuteAssignPlan_ExplicitEndDate(t *testing.T) {
	plans := &mockAssignPlanStore{listErr: errors.New("should not be called")}
	assignments := &mockAssignmentStore{}
	deps := AssignPlanDeps{PlanStore: plans, AssignmentStore: assignments}

	input := AssignPlanInput{MemberID: 1, PlanID: 2, StartDate: "2024-01-01", EndDate: "2024-06-30"}
	if err := ExecuteAssignPlan(context.Background(), input, deps); err != nil {
		t.Fatalf("ExecuteAssignPlan() error = %v", err)
	}

	if len(assignments.inserted) != 1 {
		t.Fatalf("inserted %d rows, want 1", len(assignments.inserted))
	}
	if got := assignments.inserted[0].EndDate; got != "2024-06-30" {
		t.Errorf("end date = %q, want 2024-06-30", got)
	}
	if len(assignments.computed) != 0 {
		t.Errorf("computed-end insert called %d times, want 0", len(assignments.computed))
	}
}

// TestExecuteAssignPlan_ComputedEndDate verifies the selected plan's duration
// is looked up from the plan list and handed to the store for date arithmetic.
func TestExecuteAssignPlan_ComputedEndDate(t *testing.T) {
	plans := &mockAssignPlanStore{plans: []planStore.AssignOption{
		{ID: 1, Name: "Silver", DurationMonths: 1},
		{ID: 2, Name: "Gold", DurationMonths: 3},
	}}
	assignments := &mockAssignmentStore{}
	deps := AssignPlanDeps{PlanStore: plans, AssignmentStore: assignments}

	input := AssignPlanInput{MemberID: 7, PlanID: 2, StartDate: "2024-01-01"}
	if err := ExecuteAssignPlan(context.Background(), input, deps); err != nil {
		t.Fatalf("ExecuteAssignPlan() error = %v", err)
	}

	if len(assignments.computed) != 1 {
		t.Fatalf("computed-end insert called %d times, want 1", len(assignments.computed))
	}
	if got := assignments.computedMonths[0]; got != 3 {
		t.Errorf("months = %d, want 3", got)
	}
	if got := assignments.computed[0].StartDate; got != "2024-01-01" {
		t.Errorf("start date = %q, want 2024-01-01", got)
	}
	if len(assignments.inserted) != 0 {
		t.Errorf("plain insert called %d times, want 0", len(assignments.inserted))
	}
}

// TestExecuteAssignPlan_UnknownPlan verifies a plan id missing from the list
// surfaces ErrPlanNotFound and inserts nothing.
func TestExecuteAssignPlan_UnknownPlan(t *testing.T) {
	plans := &mockAssignPlanStore{plans: []planStore.AssignOption{
		{ID: 1, Name: "Silver", DurationMonths: 1},
	}}
	assignments := &mockAssignmentStore{}
	deps := AssignPlanDeps{PlanStore: plans, AssignmentStore: assignments}

	input := AssignPlanInput{MemberID: 7, PlanID: 99, StartDate: "2024-01-01"}
	err := ExecuteAssignPlan(context.Background(), input, deps)
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("ExecuteAssignPlan() error = %v, want ErrPlanNotFound", err)
	}
	if len(assignments.inserted)+len(assignments.computed) != 0 {
		t.Errorf("rows inserted despite unknown plan")
	}
}

// TestExecuteAssignPlan_MissingStartDate verifies validation failure before
// any store call.
func TestExecuteAssignPlan_MissingStartDate(t *testing.T) {
	assignments := &mockAssignmentStore{}
	deps := AssignPlanDeps{PlanStore: &mockAssignPlanStore{}, AssignmentStore: assignments}

	input := AssignPlanInput{MemberID: 1, PlanID: 2}
	if err := ExecuteAssignPlan(context.Background(), input, deps); err == nil {
		t.Fatal("ExecuteAssignPlan() expected validation error, got nil")
	}
	if len(assignments.inserted)+len(assignments.computed) != 0 {
		t.Errorf("rows inserted despite validation failure")
	}
}
