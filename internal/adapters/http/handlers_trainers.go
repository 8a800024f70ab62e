package web

import (
	"net/http"

	"gymdesk/internal/application/orchestrators"
)

// handleAddTrainer renders the trainer form on GET and creates a trainer on POST.
func handleAddTrainer(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		renderTemplate(w, r, "add_trainer.html", nil)

	case "POST":
		f, err := newFormReader(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		input := orchestrators.AddTrainerInput{
			Name:           f.Required("name"),
			Specialization: f.Required("specialization"),
			ContactNo:      f.Optional("contact"),
		}
		if err := f.Err(); err != nil {
			badRequest(w, err)
			return
		}

		deps := orchestrators.AddTrainerDeps{TrainerStore: stores.TrainerStore}
		if err := orchestrators.ExecuteAddTrainer(r.Context(), input, deps); err != nil {
			internalError(w, err)
			return
		}

		setFlash(w, "Trainer added")
		http.Redirect(w, r, "/view_trainers", http.StatusSeeOther)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleViewTrainers lists all trainers.
func handleViewTrainers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	trainers, err := stores.TrainerStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "view_trainers.html", map[string]any{"Trainers": trainers})
		return
	}
	writeJSON(w, trainers)
}
