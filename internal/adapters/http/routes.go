package web

import "net/http"

// registerRoutes wires every route onto the mux. Creates share their path
// with the form that feeds them: GET renders the form, POST inserts and
// redirects to the matching list view.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleHome)

	mux.HandleFunc("/add_member", handleAddMember)
	mux.HandleFunc("/add_trainer", handleAddTrainer)
	mux.HandleFunc("/add_plan", handleAddPlan)
	mux.HandleFunc("/assign_plan", handleAssignPlan)
	mux.HandleFunc("/add_schedule", handleAddSchedule)
	mux.HandleFunc("/add_payment", handleAddPayment)
	mux.HandleFunc("/mark_attendance", handleMarkAttendance)

	mux.HandleFunc("/view_members", handleViewMembers)
	mux.HandleFunc("/view_trainers", handleViewTrainers)
	mux.HandleFunc("/view_plans", handleViewPlans)
	mux.HandleFunc("/view_member_plans", handleViewMemberPlans)
	mux.HandleFunc("/view_schedules", handleViewSchedules)
	mux.HandleFunc("/view_payments", handleViewPayments)
	mux.HandleFunc("/view_attendance", handleViewAttendance)
}
