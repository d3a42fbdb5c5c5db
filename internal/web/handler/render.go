package handler

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mustafacapras/todoapp-frontend/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"signin", "signup", "dashboard", "tasks", "vital",
	"categories", "calendar", "settings",
}

var templateFuncs = template.FuncMap{
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"datetimeLocal": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02T15:04")
	},
	"dayNumber": func(t time.Time) int {
		return t.Day()
	},
	"isoDate": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
}

// Renderer holds one parsed template set per page, each page combined with
// the shared layout.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(
			templateFS,
			"templates/layout.html",
			fmt.Sprintf("templates/%s.html", name),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages, logger: logger}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.logger.Error("unknown template", "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		r.logger.Error("failed to render template", "page", page, "error", err)
	}
}

// Flash is a one-shot notification carried across the POST-redirect-GET hop
// in a cookie.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

const flashCookie = "flash"

func SetFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

// PopFlash reads and clears the pending flash, if any.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] == '|' {
			return &Flash{Kind: raw[:i], Message: raw[i+1:]}
		}
	}
	return &Flash{Kind: "success", Message: raw}
}

// basePage carries what the layout needs on every page.
type basePage struct {
	Title string
	User  model.User
	// Authenticated toggles the nav; sign-in and sign-up render without it.
	Authenticated bool
	Flash         *Flash
	// Error is the banner shown when the page's fetch failed. The page still
	// renders, with an empty collection.
	Error string
}
