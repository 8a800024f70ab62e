package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	statsStore "gymdesk/internal/adapters/storage/stats"
)

func TestHandleHome_Counts(t *testing.T) {
	stores = newTestStores()
	stores.StatsStore = &mockStatsStore{counts: statsStore.Counts{
		Members: 3, Trainers: 1, Plans: 2, Schedules: 4, Payments: 5, Attendance: 6,
	}}

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handleHome(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusOK)
	}
	var counts statsStore.Counts
	if err := json.NewDecoder(rec.Body).Decode(&counts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if counts.Members != 3 || counts.Attendance != 6 {
		t.Errorf("got %+v, want members=3 attendance=6", counts)
	}
}

func TestHandleHome_UnknownPathIs404(t *testing.T) {
	stores = newTestStores()
	req := httptest.NewRequest("GET", "/no_such_page", nil)
	rec := httptest.NewRecorder()
	handleHome(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleHome_StoreFailure(t *testing.T) {
	stores = newTestStores()
	stores.StatsStore = &mockStatsStore{fail: true}

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handleHome(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if body := rec.Body.String(); body != "internal server error\n" {
		t.Errorf("error detail leaked to client: %q", body)
	}
}

func TestHandleHome_MethodNotAllowed(t *testing.T) {
	stores = newTestStores()
	req := httptest.NewRequest("POST", "/", nil)
	rec := httptest.NewRecorder()
	handleHome(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("got %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
