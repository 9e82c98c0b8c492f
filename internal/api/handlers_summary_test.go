package api

import (
	"net/http"
	"testing"
)

func TestSummaryEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	status, payload := performRequest(t, app, http.MethodPost, "/api/profile",
		`{"name": "Alex", "height_cm": 180, "weight_kg": 81}`)
	expectStatus(t, status, http.StatusOK, payload)

	status, payload = performRequest(t, app, http.MethodPost, "/api/goals", `{"steps_goal": 5000}`)
	expectStatus(t, status, http.StatusOK, payload)

	for _, body := range []string{
		`{"date": "2024-01-01", "steps": 9000}`,
		`{"date": "2024-01-02", "steps": 4000}`,
		`{"date": "2024-01-03", "steps": 6000}`,
	} {
		status, payload = performRequest(t, app, http.MethodPost, "/api/today", body)
		expectStatus(t, status, http.StatusCreated, payload)
	}

	status, payload = performRequest(t, app, http.MethodGet, "/api/summary", "")
	expectStatus(t, status, http.StatusOK, payload)
	summary := decodeObject(t, payload)

	averages, ok := summary["averages"].(map[string]any)
	if !ok {
		t.Fatalf("expected averages object, got %v", summary["averages"])
	}
	// (9000 + 4000 + 6000) / 3
	if averages["steps"] != float64(6333.33) {
		t.Fatalf("expected average steps 6333.33, got %v", averages["steps"])
	}
	if averages["water_ml"] != float64(0) {
		t.Fatalf("expected average water 0, got %v", averages["water_ml"])
	}

	// Newest entry satisfies the goal, the one before it does not.
	if summary["streak"] != float64(1) {
		t.Fatalf("expected streak 1, got %v", summary["streak"])
	}

	if summary["bmi"] != float64(25) {
		t.Fatalf("expected bmi 25, got %v", summary["bmi"])
	}

	profile, ok := summary["profile"].(map[string]any)
	if !ok || profile["name"] != "Alex" {
		t.Fatalf("expected profile in summary, got %v", summary["profile"])
	}
	goals, ok := summary["goals"].(map[string]any)
	if !ok || goals["steps_goal"] != float64(5000) {
		t.Fatalf("expected goals in summary, got %v", summary["goals"])
	}

	if _, ok := summary["weights"].([]any); !ok {
		t.Fatalf("expected weights array, got %v", summary["weights"])
	}
	if _, ok := summary["moods"].([]any); !ok {
		t.Fatalf("expected moods array, got %v", summary["moods"])
	}
}

func TestSummaryOnEmptyStore(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	status, payload := performRequest(t, app, http.MethodGet, "/api/summary", "")
	expectStatus(t, status, http.StatusOK, payload)
	summary := decodeObject(t, payload)

	if summary["bmi"] != nil {
		t.Fatalf("expected null bmi, got %v", summary["bmi"])
	}
	if summary["streak"] != float64(0) {
		t.Fatalf("expected streak 0, got %v", summary["streak"])
	}
	goals, ok := summary["goals"].(map[string]any)
	if !ok || len(goals) != 0 {
		t.Fatalf("expected empty goals object, got %v", summary["goals"])
	}
	profile, ok := summary["profile"].(map[string]any)
	if !ok || len(profile) != 0 {
		t.Fatalf("expected empty profile object, got %v", summary["profile"])
	}
}
