package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
)

func testFixtures(t *testing.T, backend http.Handler) (*api.Client, *session.Store, *Renderer) {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sessions := session.NewStore(session.NewMemoryTokenStore(), logger)

	client, err := api.NewClient(api.ClientConfig{
		BaseURL:        server.URL,
		Tokens:         sessions,
		OnUnauthorized: sessions.Invalidate,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	renderer, err := NewRenderer(logger)
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return client, sessions, renderer
}

func loginTestUser(t *testing.T, sessions *session.Store) {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if err := sessions.Login(token); err != nil {
		t.Fatalf("login failed: %v", err)
	}
}

func TestCalendar_DefaultsToCurrentMonth(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tasks":
			w.Write([]byte(`[
				{"id":"1","title":"Quarterly review","dueDate":"2026-09-01T10:00:00Z","status":"TODO","priority":"HIGH"},
				{"id":"2","title":"Someday","status":"TODO","priority":"LOW"}
			]`))
		case "/api/categories":
			w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	})
	client, sessions, renderer := testFixtures(t, backend)
	loginTestUser(t, sessions)

	h := NewCalendarHandler(client, sessions, renderer)
	h.now = func() time.Time { return time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/calendar", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "September 2026") {
		t.Error("expected current month heading")
	}
	if !strings.Contains(body, "Quarterly review") {
		t.Error("expected due task on the grid")
	}
	if strings.Contains(body, "Someday") {
		t.Error("task without a due date must not appear on the grid")
	}
	if !strings.Contains(body, "/calendar?year=2026&amp;month=8") {
		t.Error("expected previous-month link")
	}
	if !strings.Contains(body, "/calendar?year=2026&amp;month=10") {
		t.Error("expected next-month link")
	}
}

func TestCalendar_MonthFromQuery(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	client, sessions, renderer := testFixtures(t, backend)
	loginTestUser(t, sessions)

	h := NewCalendarHandler(client, sessions, renderer)
	h.now = func() time.Time { return time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC) }

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "explicit month", query: "?year=2026&month=2", want: "February 2026"},
		{name: "invalid month ignored", query: "?year=2026&month=13", want: "September 2026"},
		{name: "invalid year ignored", query: "?year=123&month=2", want: "February 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Show(rec, httptest.NewRequest(http.MethodGet, "/calendar"+tt.query, nil))
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("expected heading %q", tt.want)
			}
		})
	}
}

func TestCalendar_CategoryFilterCarriedInNavigation(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	client, sessions, renderer := testFixtures(t, backend)
	loginTestUser(t, sessions)

	h := NewCalendarHandler(client, sessions, renderer)
	h.now = func() time.Time { return time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/calendar?category=Work", nil))

	if !strings.Contains(rec.Body.String(), "category=Work") {
		t.Error("expected category filter kept on month navigation links")
	}
}

func TestCalendar_DayPickPrefillsForm(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	client, sessions, renderer := testFixtures(t, backend)
	loginTestUser(t, sessions)

	h := NewCalendarHandler(client, sessions, renderer)
	h.now = func() time.Time { return time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/calendar?year=2026&month=9&day=2026-09-03", nil))

	if !strings.Contains(rec.Body.String(), `value="2026-09-03T09:00"`) {
		t.Error("expected picked day prefilled in the add-task form")
	}
}

func TestSettings_FallsBackToSessionClaims(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"profile service down"}`))
	})
	client, sessions, renderer := testFixtures(t, backend)
	loginTestUser(t, sessions)

	h := NewSettingsHandler(client, sessions, renderer)
	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Ada") {
		t.Error("expected claim-derived first name in the form")
	}
	if !strings.Contains(body, "profile service down") {
		t.Error("expected backend message in the banner")
	}
}

func TestSettings_ShowsBackendProfile(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/users/me" {
			w.Write([]byte(`{"firstName":"Augusta","lastName":"King","email":"ada@example.com"}`))
			return
		}
		http.NotFound(w, r)
	})
	client, sessions, renderer := testFixtures(t, backend)
	loginTestUser(t, sessions)

	h := NewSettingsHandler(client, sessions, renderer)
	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))

	if !strings.Contains(rec.Body.String(), "Augusta") {
		t.Error("expected backend profile, not the token claims")
	}
}

func TestCategories_ListsCounts(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/categories":
			w.Write([]byte(`[{"id":"c1","name":"Work","color":"#00FF00"}]`))
		case "/api/tasks/category/c1":
			w.Write([]byte(`[{"id":"1","title":"A"},{"id":"2","title":"B"}]`))
		default:
			http.NotFound(w, r)
		}
	})
	client, sessions, renderer := testFixtures(t, backend)
	loginTestUser(t, sessions)

	h := NewCategoriesHandler(client, sessions, renderer)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Work") {
		t.Error("expected category name in body")
	}
	if !strings.Contains(body, "<td>2</td>") {
		t.Error("expected task count of 2")
	}
}

func TestTasksList_ErrorKeepsPageWithBanner(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"backend unavailable"}`))
	})
	client, sessions, renderer := testFixtures(t, backend)
	loginTestUser(t, sessions)

	h := NewTasksHandler(client, sessions, renderer)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "backend unavailable") {
		t.Error("expected backend message in the banner")
	}
}

func TestParseTaskForm(t *testing.T) {
	form := func(values string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(values))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "valid", body: "title=Buy+milk&priority=HIGH&status=TODO", wantMsg: ""},
		{name: "defaults applied", body: "title=Buy+milk", wantMsg: ""},
		{name: "missing title", body: "priority=HIGH", wantMsg: "Title is required"},
		{name: "bad priority", body: "title=x&priority=URGENT", wantMsg: "Invalid priority"},
		{name: "bad status", body: "title=x&status=DONE", wantMsg: "Invalid status"},
		{name: "bad due date", body: "title=x&dueDate=tomorrow", wantMsg: "Invalid due date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, msg := parseTaskForm(form(tt.body))
			if msg != tt.wantMsg {
				t.Fatalf("got msg %q, want %q", msg, tt.wantMsg)
			}
			if tt.name == "defaults applied" {
				if string(input.Priority) != "MEDIUM" || string(input.Status) != "TODO" {
					t.Errorf("got defaults %s/%s, want MEDIUM/TODO", input.Priority, input.Status)
				}
			}
		})
	}
}

func TestSafeReturn(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "/dashboard", want: "/dashboard"},
		{raw: "", want: "/tasks"},
		{raw: "https://evil.example.com", want: "/tasks"},
		{raw: "//evil.example.com", want: "/tasks"},
		{raw: "relative/path", want: "/tasks"},
	}
	for _, tt := range tests {
		if got := safeReturn(tt.raw, "/tasks"); got != tt.want {
			t.Errorf("safeReturn(%q): got %q, want %q", tt.raw, got, tt.want)
		}
	}
}
