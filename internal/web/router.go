package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	mw "github.com/mustafacapras/todoapp-frontend/internal/middleware"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
	"github.com/mustafacapras/todoapp-frontend/internal/web/handler"
)

// NewRouter wires every page behind the route guard except the sign-in and
// sign-up entry points.
func NewRouter(client *api.Client, sessions *session.Store, renderer *handler.Renderer, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	auth := handler.NewAuthHandler(client, sessions, renderer, logger)
	r.HandleFunc("/signin", auth.SignInForm).Methods(http.MethodGet)
	r.HandleFunc("/signin", auth.SignIn).Methods(http.MethodPost)
	r.HandleFunc("/signup", auth.SignUpForm).Methods(http.MethodGet)
	r.HandleFunc("/signup", auth.SignUp).Methods(http.MethodPost)
	r.HandleFunc("/signout", auth.SignOut).Methods(http.MethodPost)

	guarded := r.NewRoute().Subrouter()
	guarded.Use(mw.RequireSession(sessions))

	guarded.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/dashboard", http.StatusSeeOther)
	}).Methods(http.MethodGet)

	dashboard := handler.NewDashboardHandler(client, sessions, renderer)
	guarded.HandleFunc("/dashboard", dashboard.Show).Methods(http.MethodGet)

	tasks := handler.NewTasksHandler(client, sessions, renderer)
	guarded.HandleFunc("/tasks", tasks.List).Methods(http.MethodGet)
	guarded.HandleFunc("/tasks", tasks.Create).Methods(http.MethodPost)
	guarded.HandleFunc("/tasks/{id}", tasks.Update).Methods(http.MethodPost)
	guarded.HandleFunc("/tasks/{id}/delete", tasks.Delete).Methods(http.MethodPost)

	vital := handler.NewVitalHandler(client, sessions, renderer)
	guarded.HandleFunc("/vital", vital.List).Methods(http.MethodGet)
	guarded.HandleFunc("/vital", vital.Create).Methods(http.MethodPost)
	guarded.HandleFunc("/vital/{id}", vital.Update).Methods(http.MethodPost)
	guarded.HandleFunc("/vital/{id}/delete", vital.Delete).Methods(http.MethodPost)

	categories := handler.NewCategoriesHandler(client, sessions, renderer)
	guarded.HandleFunc("/categories", categories.List).Methods(http.MethodGet)
	guarded.HandleFunc("/categories", categories.Create).Methods(http.MethodPost)
	guarded.HandleFunc("/categories/{id}", categories.Update).Methods(http.MethodPost)
	guarded.HandleFunc("/categories/{id}/delete", categories.Delete).Methods(http.MethodPost)

	calendar := handler.NewCalendarHandler(client, sessions, renderer)
	guarded.HandleFunc("/calendar", calendar.Show).Methods(http.MethodGet)

	settings := handler.NewSettingsHandler(client, sessions, renderer)
	guarded.HandleFunc("/settings", settings.Show).Methods(http.MethodGet)
	guarded.HandleFunc("/settings/profile", settings.UpdateProfile).Methods(http.MethodPost)
	guarded.HandleFunc("/settings/password", settings.UpdatePassword).Methods(http.MethodPost)

	return r
}
