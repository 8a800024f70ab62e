package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	planStore "gymdesk/internal/adapters/storage/plan"
	"gymdesk/internal/domain/plan"
)

// ErrPlanNotFound is returned when the selected plan id does not appear in
// the plan list fetched for the assignment form.
var ErrPlanNotFound = errors.New("selected plan not found")

// AssignPlanStore defines the plan store interface needed by AssignPlan.
type AssignPlanStore interface {
	ListForAssignment(ctx context.Context) ([]planStore.AssignOption, error)
}

// AssignmentStore defines the assignment store interface needed by AssignPlan.
type AssignmentStore interface {
	Insert(ctx context.Context, a plan.Assignment) error
	InsertWithComputedEnd(ctx context.Context, a plan.Assignment, months int) error
}

// AssignPlanInput carries input for the assign-plan orchestrator. EndDate may
// be empty, in which case the store derives it from the plan duration.
type AssignPlanInput struct {
	MemberID  int64
	PlanID    int64
	StartDate string
	EndDate   string
}

// AssignPlanDeps holds dependencies for AssignPlan.
type AssignPlanDeps struct {
	PlanStore       AssignPlanStore
	AssignmentStore AssignmentStore
}

// ExecuteAssignPlan links a member to a plan. When no end date is supplied the
// selected plan's duration is looked up from the full plan list and the end
// date computed by the database as start plus that many months.
// PRE: MemberID and PlanID were coerced by the form layer
// POST: Exactly one association row exists for this call
func ExecuteAssignPlan(ctx context.Context, input AssignPlanInput, deps AssignPlanDeps) error {
	a := plan.Assignment{
		MemberID:  input.MemberID,
		PlanID:    input.PlanID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if a.EndDate != "" {
		if err := deps.AssignmentStore.Insert(ctx, a); err != nil {
			return err
		}
		slog.Info("plan_assigned", "member_id", a.MemberID, "plan_id", a.PlanID, "end_date", a.EndDate)
		return nil
	}

	plans, err := deps.PlanStore.ListForAssignment(ctx)
	if err != nil {
		return err
	}
	months := -1
	for _, p := range plans {
		if p.ID == a.PlanID {
			months = p.DurationMonths
			break
		}
	}
	if months < 0 {
		return ErrPlanNotFound
	}

	if err := deps.AssignmentStore.InsertWithComputedEnd(ctx, a, months); err != nil {
		return err
	}

	slog.Info("plan_assigned", "member_id", a.MemberID, "plan_id", a.PlanID, "duration_months", months)
	return nil
}
