package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	scheduleStore "gymdesk/internal/adapters/storage/schedule"
	scheduleDomain "gymdesk/internal/domain/schedule"
)

func TestHandleAddSchedule_POST_Valid(t *testing.T) {
	stores = newTestStores()

	req := formPost("/add_schedule", url.Values{
		"trainer_id":    {"1"},
		"schedule_name": {"Morning HIIT"},
		"time_slot":     {"6:00 AM - 7:00 AM"},
	})
	rec := httptest.NewRecorder()
	handleAddSchedule(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("got %d, want %d. Body: %s", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	ss := stores.ScheduleStore.(*mockScheduleStore)
	if len(ss.schedules) != 1 || ss.schedules[0].TrainerID != 1 {
		t.Errorf("got %+v", ss.schedules)
	}
}

func TestHandleAddSchedule_POST_BadTrainerID(t *testing.T) {
	stores = newTestStores()

	req := formPost("/add_schedule", url.Values{
		"trainer_id":    {"nope"},
		"schedule_name": {"Morning HIIT"},
		"time_slot":     {"6:00 AM - 7:00 AM"},
	})
	rec := httptest.NewRecorder()
	handleAddSchedule(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleViewSchedules_JSON(t *testing.T) {
	stores = newTestStores()
	ss := stores.ScheduleStore.(*mockScheduleStore)
	ss.schedules = []scheduleDomain.Schedule{
		{ID: 1, TrainerID: 2, ScheduleName: "Morning HIIT", TimeSlot: "6:00 AM - 7:00 AM"},
	}

	req := httptest.NewRequest("GET", "/view_schedules", nil)
	rec := httptest.NewRecorder()
	handleViewSchedules(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusOK)
	}
	var rows []scheduleStore.Row
	if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].ScheduleName != "Morning HIIT" {
		t.Errorf("got %+v", rows)
	}
}
