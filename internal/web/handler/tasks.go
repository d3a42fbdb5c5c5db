package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/model"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
	"github.com/mustafacapras/todoapp-frontend/internal/view"
)

// dueDateFormat matches the browser's datetime-local input.
const dueDateFormat = "2006-01-02T15:04"

// TasksHandler serves the my-tasks kanban page and the shared task
// create/update/delete mutations.
type TasksHandler struct {
	client   *api.Client
	sessions *session.Store
	renderer *Renderer
}

func NewTasksHandler(client *api.Client, sessions *session.Store, renderer *Renderer) *TasksHandler {
	return &TasksHandler{client: client, sessions: sessions, renderer: renderer}
}

type tasksPage struct {
	basePage
	Buckets    view.StatusBuckets
	Categories []model.Category
	Priorities []model.TaskPriority
	Statuses   []model.TaskStatus
}

func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.User()
	page := tasksPage{
		basePage:   basePage{Title: "My Tasks", User: user, Authenticated: true, Flash: PopFlash(w, r)},
		Priorities: []model.TaskPriority{model.TaskPriorityLow, model.TaskPriorityMedium, model.TaskPriorityHigh},
		Statuses:   []model.TaskStatus{model.TaskStatusTodo, model.TaskStatusInProgress, model.TaskStatusCompleted},
	}

	tasks := view.NewCollection(h.client.Tasks.List)
	if err := tasks.Load(r.Context()); err != nil {
		msg, done := fetchFailed(w, r, err)
		if done {
			return
		}
		page.Error = msg
		h.renderer.Render(w, http.StatusOK, "tasks", page)
		return
	}
	page.Buckets = view.BucketByStatus(tasks.Items())

	// The category list only feeds the form selector; losing it is not worth
	// failing the page.
	if categories, err := h.client.Categories.List(r.Context()); err == nil {
		page.Categories = categories
	}

	h.renderer.Render(w, http.StatusOK, "tasks", page)
}

func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	returnTo := safeReturn(r.PostFormValue("return"), "/tasks")

	input, msg := parseTaskForm(r)
	if msg != "" {
		SetFlash(w, "error", msg)
		http.Redirect(w, r, returnTo, http.StatusSeeOther)
		return
	}

	_, err := h.client.Tasks.Create(r.Context(), input)
	finishMutation(w, r, err, "Task created", "Failed to create task. Please try again.", returnTo)
}

func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	returnTo := safeReturn(r.PostFormValue("return"), "/tasks")

	input, msg := parseTaskForm(r)
	if msg != "" {
		SetFlash(w, "error", msg)
		http.Redirect(w, r, returnTo, http.StatusSeeOther)
		return
	}

	_, err := h.client.Tasks.Update(r.Context(), mux.Vars(r)["id"], input)
	finishMutation(w, r, err, "Task updated", "Failed to update task. Please try again.", returnTo)
}

func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	returnTo := safeReturn(r.PostFormValue("return"), "/tasks")
	err := h.client.Tasks.Delete(r.Context(), mux.Vars(r)["id"])
	finishMutation(w, r, err, "Task deleted", "Failed to delete task. Please try again.", returnTo)
}

// parseTaskForm validates and converts the task form. The returned message is
// empty when the input is acceptable; validation runs before any network call.
func parseTaskForm(r *http.Request) (api.TaskInput, string) {
	if err := r.ParseForm(); err != nil {
		return api.TaskInput{}, "Invalid form submission"
	}

	input := api.TaskInput{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Priority:    model.TaskPriority(r.PostFormValue("priority")),
		Status:      model.TaskStatus(r.PostFormValue("status")),
		Category:    r.PostFormValue("category"),
		IsVital:     r.PostFormValue("isVital") != "",
	}

	if input.Title == "" {
		return api.TaskInput{}, "Title is required"
	}
	if input.Priority == "" {
		input.Priority = model.TaskPriorityMedium
	}
	if !input.Priority.IsValid() {
		return api.TaskInput{}, "Invalid priority"
	}
	if input.Status == "" {
		input.Status = model.TaskStatusTodo
	}
	if !input.Status.IsValid() {
		return api.TaskInput{}, "Invalid status"
	}

	if raw := r.PostFormValue("dueDate"); raw != "" {
		due, err := time.Parse(dueDateFormat, raw)
		if err != nil {
			return api.TaskInput{}, "Invalid due date"
		}
		input.DueDate = &due
	}

	return input, ""
}
