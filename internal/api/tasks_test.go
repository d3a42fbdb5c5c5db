package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/model"
)

// recordingBackend captures the last request and plays back a fixed response.
type recordingBackend struct {
	method string
	path   string
	body   []byte

	status   int
	response string
}

func (b *recordingBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.method = r.Method
		b.path = r.URL.Path
		b.body, _ = io.ReadAll(r.Body)

		status := b.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		w.Write([]byte(b.response))
	})
}

func TestTaskAPI_List(t *testing.T) {
	backend := &recordingBackend{response: `[
		{"id":"t1","title":"X","priority":"HIGH","status":"TODO","category":"Work","isVital":false},
		{"id":"t2","title":"Y","priority":"LOW","status":"COMPLETED","category":"Home","isVital":true}
	]`}
	client := newTestClient(t, backend.handler(), &staticTokens{token: "tok"}, nil)

	tasks, err := client.Tasks.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodGet || backend.path != "/api/tasks" {
		t.Errorf("got %s %s, want GET /api/tasks", backend.method, backend.path)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].Status != model.TaskStatusTodo || tasks[1].IsVital != true {
		t.Errorf("unexpected decode: %+v", tasks)
	}
}

func TestTaskAPI_Create(t *testing.T) {
	backend := &recordingBackend{
		status:   http.StatusCreated,
		response: `{"id":"t1","title":"X","priority":"HIGH","status":"TODO","category":"Work","isVital":true}`,
	}
	client := newTestClient(t, backend.handler(), &staticTokens{token: "tok"}, nil)

	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	task, err := client.Tasks.Create(context.Background(), api.TaskInput{
		Title:    "X",
		DueDate:  &due,
		Priority: model.TaskPriorityHigh,
		Status:   model.TaskStatusTodo,
		Category: "Work",
		IsVital:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodPost || backend.path != "/api/tasks" {
		t.Errorf("got %s %s, want POST /api/tasks", backend.method, backend.path)
	}
	if task.ID != "t1" {
		t.Errorf("got task ID %q, want t1", task.ID)
	}

	var sent map[string]any
	if err := json.Unmarshal(backend.body, &sent); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if sent["isVital"] != true {
		t.Errorf("expected isVital=true on the wire, got %v", sent["isVital"])
	}
	if sent["dueDate"] != "2026-09-01T12:00:00Z" {
		t.Errorf("expected RFC3339 dueDate, got %v", sent["dueDate"])
	}
}

func TestTaskAPI_UpdateAndDelete(t *testing.T) {
	backend := &recordingBackend{response: `{"id":"t1","title":"X","priority":"LOW","status":"COMPLETED","category":"","isVital":false}`}
	client := newTestClient(t, backend.handler(), &staticTokens{token: "tok"}, nil)

	_, err := client.Tasks.Update(context.Background(), "t1", api.TaskInput{
		Title:    "X",
		Priority: model.TaskPriorityLow,
		Status:   model.TaskStatusCompleted,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodPut || backend.path != "/api/tasks/t1" {
		t.Errorf("got %s %s, want PUT /api/tasks/t1", backend.method, backend.path)
	}

	backend.response = ""
	if err := client.Tasks.Delete(context.Background(), "t1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodDelete || backend.path != "/api/tasks/t1" {
		t.Errorf("got %s %s, want DELETE /api/tasks/t1", backend.method, backend.path)
	}
}

func TestTaskAPI_FilteredEndpoints(t *testing.T) {
	backend := &recordingBackend{response: `[]`}
	client := newTestClient(t, backend.handler(), &staticTokens{token: "tok"}, nil)

	if _, err := client.Tasks.ListVital(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.path != "/api/tasks/vital" {
		t.Errorf("got path %s, want /api/tasks/vital", backend.path)
	}

	if _, err := client.Tasks.ListByCategory(context.Background(), "cat-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.path != "/api/tasks/category/cat-1" {
		t.Errorf("got path %s, want /api/tasks/category/cat-1", backend.path)
	}
}

func TestAuthAPI_SignIn(t *testing.T) {
	backend := &recordingBackend{response: `{"accessToken":"tok-abc"}`}
	client := newTestClient(t, backend.handler(), &staticTokens{}, nil)

	token, err := client.Auth.SignIn(context.Background(), api.Credentials{Email: "a@b.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodPost || backend.path != "/api/auth/signin" {
		t.Errorf("got %s %s, want POST /api/auth/signin", backend.method, backend.path)
	}
	if token != "tok-abc" {
		t.Errorf("got token %q, want tok-abc", token)
	}

	var sent map[string]any
	if err := json.Unmarshal(backend.body, &sent); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if sent["email"] != "a@b.com" || sent["password"] != "secret" {
		t.Errorf("unexpected credentials payload: %v", sent)
	}
}

func TestCategoryAPI_CRUD(t *testing.T) {
	backend := &recordingBackend{response: `{"id":"c1","name":"Work","description":"","color":"#FF6B6B"}`}
	client := newTestClient(t, backend.handler(), &staticTokens{token: "tok"}, nil)

	cat, err := client.Categories.Create(context.Background(), api.CategoryInput{Name: "Work", Color: "#FF6B6B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodPost || backend.path != "/api/categories" {
		t.Errorf("got %s %s, want POST /api/categories", backend.method, backend.path)
	}
	if cat.Color != "#FF6B6B" {
		t.Errorf("got color %q, want #FF6B6B", cat.Color)
	}

	if _, err := client.Categories.Update(context.Background(), "c1", api.CategoryInput{Name: "Work"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodPut || backend.path != "/api/categories/c1" {
		t.Errorf("got %s %s, want PUT /api/categories/c1", backend.method, backend.path)
	}

	backend.response = ""
	if err := client.Categories.Delete(context.Background(), "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodDelete || backend.path != "/api/categories/c1" {
		t.Errorf("got %s %s, want DELETE /api/categories/c1", backend.method, backend.path)
	}
}

func TestUserAPI(t *testing.T) {
	backend := &recordingBackend{response: `{"firstName":"Ada","lastName":"Lovelace","email":"a@b.com"}`}
	client := newTestClient(t, backend.handler(), &staticTokens{token: "tok"}, nil)

	user, err := client.Users.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodGet || backend.path != "/api/users/me" {
		t.Errorf("got %s %s, want GET /api/users/me", backend.method, backend.path)
	}
	if user.FirstName != "Ada" {
		t.Errorf("got user %+v", user)
	}

	if _, err := client.Users.UpdateUser(context.Background(), api.UpdateUserInput{FirstName: "Ada"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodPut || backend.path != "/api/users/me" {
		t.Errorf("got %s %s, want PUT /api/users/me", backend.method, backend.path)
	}

	backend.response = ""
	if err := client.Users.UpdatePassword(context.Background(), api.UpdatePasswordInput{CurrentPassword: "old", NewPassword: "newpass"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend.method != http.MethodPut || backend.path != "/api/users/me/password" {
		t.Errorf("got %s %s, want PUT /api/users/me/password", backend.method, backend.path)
	}
}
