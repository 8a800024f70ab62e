package orchestrators

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/plan"
)

// PlanStore defines the plan store interface needed by AddPlan.
type PlanStore interface {
	Insert(ctx context.Context, p plan.Plan) error
}

// AddPlanInput carries input for the add-plan orchestrator.
type AddPlanInput struct {
	PlanName       string
	DurationMonths int
	Fee            float64
}

// AddPlanDeps holds dependencies for AddPlan.
type AddPlanDeps struct {
	PlanStore PlanStore
}

// ExecuteAddPlan inserts one new membership plan row.
// PRE: numeric fields were coerced by the form layer
// POST: Exactly one plan row exists for this call
func ExecuteAddPlan(ctx context.Context, input AddPlanInput, deps AddPlanDeps) error {
	p := plan.Plan{
		PlanName:       input.PlanName,
		DurationMonths: input.DurationMonths,
		Fee:            input.Fee,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := deps.PlanStore.Insert(ctx, p); err != nil {
		return err
	}

	slog.Info("plan_added", "name", p.PlanName, "duration_months", p.DurationMonths)
	return nil
}
