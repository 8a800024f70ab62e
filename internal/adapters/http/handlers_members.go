package web

import (
	"net/http"

	"gymdesk/internal/application/orchestrators"
)

// handleAddMember renders the member form on GET and creates a member on
// POST. Phone and email are optional and stored as empty text when absent.
func handleAddMember(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		renderTemplate(w, r, "add_member.html", nil)

	case "POST":
		f, err := newFormReader(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		input := orchestrators.AddMemberInput{
			Name:   f.Required("name"),
			Gender: f.Required("gender"),
			Phone:  f.Optional("phone"),
			Email:  f.Optional("email"),
		}
		if err := f.Err(); err != nil {
			badRequest(w, err)
			return
		}

		deps := orchestrators.AddMemberDeps{MemberStore: stores.MemberStore}
		if err := orchestrators.ExecuteAddMember(r.Context(), input, deps); err != nil {
			internalError(w, err)
			return
		}

		setFlash(w, "Member added")
		http.Redirect(w, r, "/view_members", http.StatusSeeOther)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleViewMembers lists every member once, with assigned plan names
// aggregated per row.
func handleViewMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	members, err := stores.MemberStore.ListWithPlans(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "view_members.html", map[string]any{"Members": members})
		return
	}
	writeJSON(w, members)
}
