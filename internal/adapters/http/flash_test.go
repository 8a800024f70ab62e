package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// flashCookieFrom pulls the flash cookie out of a recorded response.
func flashCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName {
			return c
		}
	}
	t.Fatal("no flash cookie in response")
	return nil
}

func TestFlash_RoundTrip(t *testing.T) {
	setRec := httptest.NewRecorder()
	setFlash(setRec, "Member added")
	cookie := flashCookieFrom(t, setRec)

	req := httptest.NewRequest("GET", "/view_members", nil)
	req.AddCookie(cookie)
	popRec := httptest.NewRecorder()

	if got := popFlash(popRec, req); got != "Member added" {
		t.Errorf("got %q, want the set message", got)
	}
}

func TestFlash_PopClearsCookie(t *testing.T) {
	setRec := httptest.NewRecorder()
	setFlash(setRec, "Plan added")

	req := httptest.NewRequest("GET", "/view_plans", nil)
	req.AddCookie(flashCookieFrom(t, setRec))
	popRec := httptest.NewRecorder()
	popFlash(popRec, req)

	cleared := flashCookieFrom(t, popRec)
	if cleared.MaxAge != -1 || cleared.Value != "" {
		t.Errorf("pop did not clear the cookie: %+v", cleared)
	}
}

func TestFlash_AbsentCookieIsEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	if got := popFlash(rec, req); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestFlash_TamperedCookieDiscarded(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "forged-value"})
	rec := httptest.NewRecorder()

	if got := popFlash(rec, req); got != "" {
		t.Errorf("tampered cookie produced %q, want empty", got)
	}
}
