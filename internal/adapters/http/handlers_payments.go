package web

import (
	"net/http"

	"gymdesk/internal/application/orchestrators"
)

// handleAddPayment renders the payment form on GET (member and schedule
// dropdowns) and records a payment on POST.
func handleAddPayment(w http.ResponseWriter, r *http.Request) {
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
		renderTemplate(w, r, "add_payment.html", map[string]any{
			"Members":   members,
			"Schedules": schedules,
		})

	case "POST":
		f, err := newFormReader(r)
		if err != nil {
			badRequest(w, err)
			return
		}
		input := orchestrators.RecordPaymentInput{
			MemberID:      f.Int64("member_id"),
			ScheduleID:    f.Int64("schedule_id"),
			Amount:        f.Float("amount"),
			ModeOfPayment: f.Required("mode_of_payment"),
		}
		if err := f.Err(); err != nil {
			badRequest(w, err)
			return
		}

		deps := orchestrators.RecordPaymentDeps{
			PaymentStore: stores.PaymentStore,
			MemberStore:  stores.MemberStore,
			Sender:       emailSender,
			From:         emailFromAddress,
			ReplyTo:      emailReplyTo,
		}
		if err := orchestrators.ExecuteRecordPayment(r.Context(), input, deps); err != nil {
			internalError(w, err)
			return
		}

		setFlash(w, "Payment recorded")
		http.Redirect(w, r, "/view_payments", http.StatusSeeOther)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleViewPayments lists payments with member and schedule joined in by
// name.
func handleViewPayments(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	payments, err := stores.PaymentStore.ListDetailed(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "view_payments.html", map[string]any{"Payments": payments})
		return
	}
	writeJSON(w, payments)
}
