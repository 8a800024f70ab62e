package web

import (
	"errors"
	"net/http"

	"gymdesk/internal/application/orchestrators"
)

// handleAddPlan renders the plan form on GET and creates a plan on POST.
func handleAddPlan(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		renderTemplate(w, r, "add_plan.html", nil)

	case "POST":
		f, err := newFormReader(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		input := orchestrators.AddPlanInput{
			PlanName:       f.Required("plan_name"),
			DurationMonths: f.Int("duration"),
			Fee:            f.Float("fee"),
		}
		if err := f.Err(); err != nil {
			badRequest(w, err)
			return
		}

		deps := orchestrators.AddPlanDeps{PlanStore: stores.PlanStore}
		if err := orchestrators.ExecuteAddPlan(r.Context(), input, deps); err != nil {
			internalError(w, err)
			return
		}

		setFlash(w, "Plan added")
		http.Redirect(w, r, "/view_plans", http.StatusSeeOther)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleViewPlans lists all membership plans.
func handleViewPlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	plans, err := stores.PlanStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "view_plans.html", map[string]any{"Plans": plans})
		return
	}
	writeJSON(w, plans)
}

// handleAssignPlan renders the assignment form on GET (member and plan
// dropdowns) and links a member to a plan on POST. The end date may be left
// blank, in which case it is derived from the plan duration.
func handleAssignPlan(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		members, err := stores.MemberStore.ListOptions(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		plans, err := stores.PlanStore.ListForAssignment(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "assign_plan.html", map[string]any{
			"Members": members,
			"Plans":   plans,
		})

	case "POST":
		f, err := newFormReader(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		input := orchestrators.AssignPlanInput{
			MemberID:  f.Int64("member_id"),
			PlanID:    f.Int64("plan_id"),
			StartDate: f.Required("start_date"),
			EndDate:   f.Optional("end_date"),
		}
		if err := f.Err(); err != nil {
			badRequest(w, err)
			return
		}

		deps := orchestrators.AssignPlanDeps{
			PlanStore:       stores.PlanStore,
			AssignmentStore: stores.AssignmentStore,
		}
		if err := orchestrators.ExecuteAssignPlan(r.Context(), input, deps); err != nil {
			if errors.Is(err, orchestrators.ErrPlanNotFound) {
				badRequest(w, err)
				return
			}
			internalError(w, err)
			return
		}

		setFlash(w, "Plan assigned")
		http.Redirect(w, r, "/view_member_plans", http.StatusSeeOther)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleViewMemberPlans lists member/plan assignments with both sides joined
// in by name.
func handleViewMemberPlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	assignments, err := stores.AssignmentStore.ListDetailed(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "view_member_plans.html", map[string]any{"Assignments": assignments})
		return
	}
	writeJSON(w, assignments)
}
