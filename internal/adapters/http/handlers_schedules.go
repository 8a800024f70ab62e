package web

import (
	"net/http"

	"gymdesk/internal/application/orchestrators"
)

// handleAddSchedule renders the schedule form on GET (trainer dropdown) and
// creates a workout schedule on POST.
func handleAddSchedule(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		trainers, err := stores.TrainerStore.ListOptions(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "add_schedule.html", map[string]any{"Trainers": trainers})

	case "POST":
		f, err := newFormReader(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		input := orchestrators.AddScheduleInput{
			TrainerID:    f.Int64("trainer_id"),
			ScheduleName: f.Required("schedule_name"),
			TimeSlot:     f.Required("time_slot"),
		}
		if err := f.Err(); err != nil {
			badRequest(w, err)
			return
		}

		deps := orchestrators.AddScheduleDeps{ScheduleStore: stores.ScheduleStore}
		if err := orchestrators.ExecuteAddSchedule(r.Context(), input, deps); err != nil {
			internalError(w, err)
			return
		}

		setFlash(w, "Schedule added")
		http.Redirect(w, r, "/view_schedules", http.StatusSeeOther)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleViewSchedules lists workout schedules with the owning trainer joined
// in by name.
func handleViewSchedules(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	schedules, err := stores.ScheduleStore.ListWithTrainer(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "view_schedules.html", map[string]any{"Schedules": schedules})
		return
	}
	writeJSON(w, schedules)
}
