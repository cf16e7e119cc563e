package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yug-24/TaskFlow/models"
)

func decodeHabit(t *testing.T, w *httptest.ResponseRecorder) models.Habit {
	t.Helper()
	var habit models.Habit
	if err := json.Unmarshal(w.Body.Bytes(), &habit); err != nil {
		t.Fatalf("unmarshal habit: %v; body=%s", err, w.Body.String())
	}
	return habit
}

func TestCreateHabit_Defaults(t *testing.T) {
	st := newFakeStore()
	r := newAPI(st, twoUsers())

	w := do(t, r, http.MethodPost, "/api/habits", "token-alice", map[string]any{"name": "meditate"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	habit := decodeHabit(t, w)
	if habit.UserID != "uid-alice" {
		t.Fatalf("userId=%q, want uid-alice", habit.UserID)
	}
	if habit.Streak != 0 {
		t.Fatalf("streak=%d, want 0", habit.Streak)
	}
	if habit.Progress == nil || len(habit.Progress) != 0 {
		t.Fatalf("progress=%v, want empty list", habit.Progress)
	}
}

func TestCreateHabit_StreakValidation(t *testing.T) {
	st := newFakeStore()
	r := newAPI(st, twoUsers())

	cases := []struct {
		streak any
		want   int
	}{
		{0, http.StatusCreated},
		{-1, http.StatusBadRequest},
		{1.5, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := do(t, r, http.MethodPost, "/api/habits", "token-alice",
			map[string]any{"name": "run", "streak": tc.streak})
		if w.Code != tc.want {
			t.Fatalf("streak=%v: status=%d, want %d (body=%s)", tc.streak, w.Code, tc.want, w.Body.String())
		}
	}
}

func TestCreateHabit_NameBoundary(t *testing.T) {
	st := newFakeStore()
	r := newAPI(st, twoUsers())

	if w := do(t, r, http.MethodPost, "/api/habits", "token-alice",
		map[string]any{"name": strings.Repeat("h", 200)}); w.Code != http.StatusCreated {
		t.Fatalf("200-char name: status=%d body=%s", w.Code, w.Body.String())
	}
	if w := do(t, r, http.MethodPost, "/api/habits", "token-alice",
		map[string]any{"name": strings.Repeat("h", 201)}); w.Code != http.StatusBadRequest {
		t.Fatalf("201-char name: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateHabit_ProgressAndOwnership(t *testing.T) {
	st := newFakeStore()
	r := newAPI(st, twoUsers())

	created := decodeHabit(t, do(t, r, http.MethodPost, "/api/habits", "token-alice", map[string]any{"name": "read"}))
	id := created.ID.Hex()

	w := do(t, r, http.MethodPut, "/api/habits/"+id, "token-alice", map[string]any{
		"streak":   3,
		"progress": []string{"2026-08-26T00:00:00Z", "2026-08-27T00:00:00Z"},
		"userId":   "uid-bob",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	updated := decodeHabit(t, w)
	if updated.Streak != 3 || len(updated.Progress) != 2 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.UserID != "uid-alice" {
		t.Fatalf("userId=%q, want uid-alice", updated.UserID)
	}

	// bob cannot update or see it
	if w := do(t, r, http.MethodPut, "/api/habits/"+id, "token-bob",
		map[string]any{"streak": 99}); w.Code != http.StatusNotFound {
		t.Fatalf("cross-user update: status=%d, want 404", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/habits", "token-bob", nil); strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("bob sees alice's habits: %s", w.Body.String())
	}
}

func TestDeleteHabit_Twice(t *testing.T) {
	st := newFakeStore()
	r := newAPI(st, twoUsers())

	created := decodeHabit(t, do(t, r, http.MethodPost, "/api/habits", "token-alice", map[string]any{"name": "n"}))
	id := created.ID.Hex()

	w := do(t, r, http.MethodDelete, "/api/habits/"+id, "token-alice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete: status=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Habit deleted successfully") {
		t.Fatalf("body=%s", w.Body.String())
	}
	if w := do(t, r, http.MethodDelete, "/api/habits/"+id, "token-alice", nil); w.Code != http.StatusNotFound {
		t.Fatalf("second delete: status=%d, want 404", w.Code)
	}
}

func TestUpdateHabit_UnknownFieldNamed(t *testing.T) {
	st := newFakeStore()
	r := newAPI(st, twoUsers())

	created := decodeHabit(t, do(t, r, http.MethodPost, "/api/habits", "token-alice", map[string]any{"name": "n"}))
	id := created.ID.Hex()

	w := do(t, r, http.MethodPut, "/api/habits/"+id, "token-alice", map[string]any{"frequency": "daily"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "frequency") {
		t.Fatalf("error does not name offending field: %s", w.Body.String())
	}
}
