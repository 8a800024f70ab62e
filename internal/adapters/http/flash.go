package web

import "net/http"

// The flash is a one-shot success notification carried across the
// POST-redirect-GET hop in a short-lived signed cookie. It is set on the
// redirect response, read on the next render, and cleared in the same
// response that displays it.

const flashCookieName = "gymdesk_flash"

// setFlash attaches a signed one-shot notification to the response.
func setFlash(w http.ResponseWriter, message string) {
	encoded, err := flashCodec.Encode(flashCookieName, message)
	if err != nil {
		// A flash that cannot be signed is dropped; the create already succeeded.
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending notification, if any, and clears the cookie
// so it shows exactly once. A cookie that fails signature verification is
// discarded as if absent.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	var message string
	if err := flashCodec.Decode(flashCookieName, cookie.Value, &message); err != nil {
		return ""
	}
	return message
}
