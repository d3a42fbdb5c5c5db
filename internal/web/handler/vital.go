package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/model"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
	"github.com/mustafacapras/todoapp-frontend/internal/view"
)

// VitalHandler is the dedicated vital-tasks flow: it lists through the vital
// endpoint and forces the vital flag on every task created or updated here,
// whatever the form said.
type VitalHandler struct {
	client   *api.Client
	sessions *session.Store
	renderer *Renderer
}

func NewVitalHandler(client *api.Client, sessions *session.Store, renderer *Renderer) *VitalHandler {
	return &VitalHandler{client: client, sessions: sessions, renderer: renderer}
}

type vitalPage struct {
	basePage
	Tasks      []model.Task
	Categories []model.Category
	Priorities []model.TaskPriority
	Statuses   []model.TaskStatus
}

func (h *VitalHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.User()
	page := vitalPage{
		basePage:   basePage{Title: "Vital Tasks", User: user, Authenticated: true, Flash: PopFlash(w, r)},
		Priorities: []model.TaskPriority{model.TaskPriorityLow, model.TaskPriorityMedium, model.TaskPriorityHigh},
		Statuses:   []model.TaskStatus{model.TaskStatusTodo, model.TaskStatusInProgress, model.TaskStatusCompleted},
	}

	tasks := view.NewCollection(h.client.Tasks.ListVital)
	if err := tasks.Load(r.Context()); err != nil {
		msg, done := fetchFailed(w, r, err)
		if done {
			return
		}
		page.Error = msg
		h.renderer.Render(w, http.StatusOK, "vital", page)
		return
	}
	page.Tasks = tasks.Items()

	if categories, err := h.client.Categories.List(r.Context()); err == nil {
		page.Categories = categories
	}

	h.renderer.Render(w, http.StatusOK, "vital", page)
}

func (h *VitalHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, msg := parseTaskForm(r)
	if msg != "" {
		SetFlash(w, "error", msg)
		http.Redirect(w, r, "/vital", http.StatusSeeOther)
		return
	}
	input.IsVital = true

	_, err := h.client.Tasks.Create(r.Context(), input)
	finishMutation(w, r, err, "Vital task created", "Failed to create vital task. Please try again.", "/vital")
}

func (h *VitalHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, msg := parseTaskForm(r)
	if msg != "" {
		SetFlash(w, "error", msg)
		http.Redirect(w, r, "/vital", http.StatusSeeOther)
		return
	}
	// A task edited here stays vital.
	input.IsVital = true

	_, err := h.client.Tasks.Update(r.Context(), mux.Vars(r)["id"], input)
	finishMutation(w, r, err, "Vital task updated", "Failed to update vital task. Please try again.", "/vital")
}

func (h *VitalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.client.Tasks.Delete(r.Context(), mux.Vars(r)["id"])
	finishMutation(w, r, err, "Vital task deleted", "Failed to delete vital task. Please try again.", "/vital")
}
