package handler

import (
	"net/http"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/model"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
	"github.com/mustafacapras/todoapp-frontend/internal/view"
)

// DashboardHandler shows the stats overview and the outstanding/completed
// task split.
type DashboardHandler struct {
	client   *api.Client
	sessions *session.Store
	renderer *Renderer
}

func NewDashboardHandler(client *api.Client, sessions *session.Store, renderer *Renderer) *DashboardHandler {
	return &DashboardHandler{client: client, sessions: sessions, renderer: renderer}
}

type dashboardPage struct {
	basePage
	Stats       view.Stats
	Outstanding []model.Task
	Completed   []model.Task
	Categories  []model.Category
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.User()
	page := dashboardPage{
		basePage: basePage{Title: "Dashboard", User: user, Authenticated: true, Flash: PopFlash(w, r)},
	}

	tasks := view.NewCollection(h.client.Tasks.List)
	if err := tasks.Load(r.Context()); err != nil {
		msg, done := fetchFailed(w, r, err)
		if done {
			return
		}
		page.Error = msg
		h.renderer.Render(w, http.StatusOK, "dashboard", page)
		return
	}

	page.Stats = view.TaskStats(tasks.Items())
	page.Outstanding, page.Completed = view.SplitCompleted(tasks.Items())

	if categories, err := h.client.Categories.List(r.Context()); err == nil {
		page.Categories = categories
	}

	h.renderer.Render(w, http.StatusOK, "dashboard", page)
}
