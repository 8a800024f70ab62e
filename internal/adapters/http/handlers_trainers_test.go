package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	trainerDomain "gymdesk/internal/domain/trainer"
)

func TestHandleAddTrainer_POST_Valid(t *testing.T) {
	stores = newTestStores()

	req := formPost("/add_trainer", url.Values{
		"name":           {"Mere Kapa"},
		"specialization": {"Strength"},
		"contact":        {"021 555 0102"},
	})
	rec := httptest.NewRecorder()
	handleAddTrainer(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("got %d, want %d. Body: %s", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/view_trainers" {
		t.Errorf("got redirect to %q, want /view_trainers", loc)
	}
	ts := stores.TrainerStore.(*mockTrainerStore)
	if len(ts.trainers) != 1 || ts.trainers[0].Specialization != "Strength" {
		t.Errorf("got %+v", ts.trainers)
	}
}

func TestHandleAddTrainer_POST_ContactOptional(t *testing.T) {
	stores = newTestStores()

	req := formPost("/add_trainer", url.Values{
		"name":           {"Mere Kapa"},
		"specialization": {"Strength"},
	})
	rec := httptest.NewRecorder()
	handleAddTrainer(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("got %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestHandleAddTrainer_POST_MissingSpecialization(t *testing.T) {
	stores = newTestStores()

	req := formPost("/add_trainer", url.Values{"name": {"Mere Kapa"}})
	rec := httptest.NewRecorder()
	handleAddTrainer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleViewTrainers_JSON(t *testing.T) {
	stores = newTestStores()
	ts := stores.TrainerStore.(*mockTrainerStore)
	ts.trainers = []trainerDomain.Trainer{{ID: 1, Name: "Mere", Specialization: "Strength"}}

	req := httptest.NewRequest("GET", "/view_trainers", nil)
	rec := httptest.NewRecorder()
	handleViewTrainers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusOK)
	}
	var rows []trainerDomain.Trainer
	if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Mere" {
		t.Errorf("got %+v", rows)
	}
}
