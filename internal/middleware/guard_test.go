package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mustafacapras/todoapp-frontend/internal/middleware"
)

type fakeSession struct {
	authenticated bool
}

func (f *fakeSession) IsAuthenticated() bool { return f.authenticated }

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		wantStatus    int
		wantLocation  string
		wantReached   bool
	}{
		{"authenticated passes through", true, http.StatusOK, "", true},
		{"unauthenticated redirects to signin", false, http.StatusSeeOther, "/signin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			})

			guard := middleware.RequireSession(&fakeSession{authenticated: tt.authenticated})
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			rec := httptest.NewRecorder()

			guard(inner).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("got Location=%q, want %q", got, tt.wantLocation)
			}
			if reached != tt.wantReached {
				t.Errorf("handler reached=%v, want %v", reached, tt.wantReached)
			}
		})
	}
}
