package web

import (
	"net/http"

	"gymdesk/internal/application/orchestrators"
)

// handleMarkAttendance renders the attendance form on GET (member and
// schedule dropdowns) and records one mark on POST. Every submission inserts
// a fresh row; marking twice on one day records twice.
func handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		members, err := stores.MemberStore.ListOptions(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		schedules, err := stores.ScheduleStore.ListOptions(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "mark_attendance.html", map[string]any{
			"Members":   members,
			"Schedules": schedules,
		})

	case "POST":
		f, err := newFormReader(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		input := orchestrators.MarkAttendanceInput{
			MemberID:   f.Int64("member_id"),
			ScheduleID: f.Int64("schedule_id"),
			Status:     f.Required("status"),
		}
		if err := f.Err(); err != nil {
			badRequest(w, err)
			return
		}

		deps := orchestrators.MarkAttendanceDeps{AttendanceStore: stores.AttendanceStore}
		if err := orchestrators.ExecuteMarkAttendance(r.Context(), input, deps); err != nil {
			internalError(w, err)
			return
		}

		setFlash(w, "Attendance marked")
		http.Redirect(w, r, "/view_attendance", http.StatusSeeOther)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleViewAttendance lists attendance marks with member and schedule joined
// in by name.
func handleViewAttendance(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	marks, err := stores.AttendanceStore.ListDetailed(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "view_attendance.html", map[string]any{"Attendance": marks})
		return
	}
	writeJSON(w, marks)
}
