package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/model"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
	"github.com/mustafacapras/todoapp-frontend/internal/view"
)

// CalendarHandler renders the month grid with tasks on their due days.
type CalendarHandler struct {
	client   *api.Client
	sessions *session.Store
	renderer *Renderer
	// now is swapped in tests to pin the default month.
	now func() time.Time
}

func NewCalendarHandler(client *api.Client, sessions *session.Store, renderer *Renderer) *CalendarHandler {
	return &CalendarHandler{client: client, sessions: sessions, renderer: renderer, now: time.Now}
}

type calendarPage struct {
	basePage
	Year       int
	Month      time.Month
	MonthName  string
	Weeks      [][]view.CalendarDay
	Categories []model.Category
	Selected   string
	PrevURL    string
	NextURL    string
	// NewTaskDate prefills the add-task form when a day cell was picked.
	NewTaskDate string
	ReturnTo    string
}

func (h *CalendarHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.User()

	year, month := h.monthFromQuery(r)
	selected := r.URL.Query().Get("category")

	page := calendarPage{
		basePage:  basePage{Title: "Calendar", User: user, Authenticated: true, Flash: PopFlash(w, r)},
		Year:      year,
		Month:     month,
		MonthName: month.String(),
		Selected:  selected,
	}

	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	page.PrevURL = calendarURL(prev.Year(), prev.Month(), selected)
	page.NextURL = calendarURL(next.Year(), next.Month(), selected)
	page.ReturnTo = calendarURL(year, month, selected)

	// A picked day cell prefills the add-task form, at a mid-morning default.
	if raw := r.URL.Query().Get("day"); raw != "" {
		if day, err := time.Parse("2006-01-02", raw); err == nil {
			page.NewTaskDate = day.Format("2006-01-02") + "T09:00"
		}
	}

	tasks := view.NewCollection(h.client.Tasks.List)
	if err := tasks.Load(r.Context()); err != nil {
		msg, done := fetchFailed(w, r, err)
		if done {
			return
		}
		page.Error = msg
		h.renderer.Render(w, http.StatusOK, "calendar", page)
		return
	}

	filtered := view.FilterByCategory(tasks.Items(), selected)
	page.Weeks = weeks(view.MonthGrid(year, month, filtered))

	if categories, err := h.client.Categories.List(r.Context()); err == nil {
		page.Categories = categories
	}

	h.renderer.Render(w, http.StatusOK, "calendar", page)
}

func (h *CalendarHandler) monthFromQuery(r *http.Request) (int, time.Month) {
	now := h.now()
	year, month := now.Year(), now.Month()

	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y >= 1970 && y <= 9999 {
		year = y
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}

func calendarURL(year int, month time.Month, category string) string {
	u := fmt.Sprintf("/calendar?year=%d&month=%d", year, int(month))
	if category != "" {
		u += "&category=" + url.QueryEscape(category)
	}
	return u
}

func weeks(days []view.CalendarDay) [][]view.CalendarDay {
	var out [][]view.CalendarDay
	for i := 0; i < len(days); i += 7 {
		out = append(out, days[i:i+7])
	}
	return out
}
