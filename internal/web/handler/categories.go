package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/model"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
	"github.com/mustafacapras/todoapp-frontend/internal/view"
)

const defaultCategoryColor = "#FF6B6B"

// CategoriesHandler manages categories and shows how many tasks reference
// each one. Deleting a category never touches its tasks.
type CategoriesHandler struct {
	client   *api.Client
	sessions *session.Store
	renderer *Renderer
}

func NewCategoriesHandler(client *api.Client, sessions *session.Store, renderer *Renderer) *CategoriesHandler {
	return &CategoriesHandler{client: client, sessions: sessions, renderer: renderer}
}

type categoryRow struct {
	model.Category
	TaskCount int
}

type categoriesPage struct {
	basePage
	Categories []categoryRow
}

func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.User()
	page := categoriesPage{
		basePage: basePage{Title: "Task Categories", User: user, Authenticated: true, Flash: PopFlash(w, r)},
	}

	categories := view.NewCollection(h.client.Categories.List)
	if err := categories.Load(r.Context()); err != nil {
		msg, done := fetchFailed(w, r, err)
		if done {
			return
		}
		page.Error = msg
		h.renderer.Render(w, http.StatusOK, "categories", page)
		return
	}

	for _, category := range categories.Items() {
		row := categoryRow{Category: category}
		// Counts are best effort; a failed count shows as zero rather than
		// failing the page.
		if tasks, err := h.client.Tasks.ListByCategory(r.Context(), category.ID); err == nil {
			row.TaskCount = len(tasks)
		}
		page.Categories = append(page.Categories, row)
	}

	h.renderer.Render(w, http.StatusOK, "categories", page)
}

func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, msg := parseCategoryForm(r)
	if msg != "" {
		SetFlash(w, "error", msg)
		http.Redirect(w, r, "/categories", http.StatusSeeOther)
		return
	}

	_, err := h.client.Categories.Create(r.Context(), input)
	finishMutation(w, r, err, "Category created", "Failed to create category. Please try again.", "/categories")
}

func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, msg := parseCategoryForm(r)
	if msg != "" {
		SetFlash(w, "error", msg)
		http.Redirect(w, r, "/categories", http.StatusSeeOther)
		return
	}

	_, err := h.client.Categories.Update(r.Context(), mux.Vars(r)["id"], input)
	finishMutation(w, r, err, "Category updated", "Failed to update category. Please try again.", "/categories")
}

func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.client.Categories.Delete(r.Context(), mux.Vars(r)["id"])
	finishMutation(w, r, err, "Category deleted", "Failed to delete category. Please try again.", "/categories")
}

func parseCategoryForm(r *http.Request) (api.CategoryInput, string) {
	if err := r.ParseForm(); err != nil {
		return api.CategoryInput{}, "Invalid form submission"
	}

	input := api.CategoryInput{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Color:       strings.TrimSpace(r.PostFormValue("color")),
	}
	if input.Name == "" {
		return api.CategoryInput{}, "Name is required"
	}
	if input.Color == "" {
		input.Color = defaultCategoryColor
	}
	return input, ""
}
