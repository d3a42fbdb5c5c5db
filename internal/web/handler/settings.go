package handler

import (
	"net/http"
	"strings"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/model"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
)

// SettingsHandler serves the profile and password forms. The profile is
// fetched fresh from the backend rather than trusted from the token claims.
type SettingsHandler struct {
	client   *api.Client
	sessions *session.Store
	renderer *Renderer
}

func NewSettingsHandler(client *api.Client, sessions *session.Store, renderer *Renderer) *SettingsHandler {
	return &SettingsHandler{client: client, sessions: sessions, renderer: renderer}
}

type settingsPage struct {
	basePage
	Profile model.User
}

func (h *SettingsHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.User()
	page := settingsPage{
		basePage: basePage{Title: "Settings", User: user, Authenticated: true, Flash: PopFlash(w, r)},
		Profile:  user,
	}

	profile, err := h.client.Users.CurrentUser(r.Context())
	if err != nil {
		msg, done := fetchFailed(w, r, err)
		if done {
			return
		}
		// Fall back to the session's claim-derived fields.
		page.Error = msg
	} else {
		page.Profile = profile
	}

	h.renderer.Render(w, http.StatusOK, "settings", page)
}

func (h *SettingsHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	input := api.UpdateUserInput{
		FirstName: strings.TrimSpace(r.PostFormValue("firstName")),
		LastName:  strings.TrimSpace(r.PostFormValue("lastName")),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
	}
	if input.FirstName == "" || input.LastName == "" {
		SetFlash(w, "error", "First and last name are required")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	_, err := h.client.Users.UpdateUser(r.Context(), input)
	finishMutation(w, r, err, "Profile updated", "Failed to update profile. Please try again.", "/settings")
}

func (h *SettingsHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	current := r.PostFormValue("currentPassword")
	newPassword := r.PostFormValue("newPassword")
	confirm := r.PostFormValue("confirmPassword")

	if msg := validatePasswordChange(current, newPassword, confirm); msg != "" {
		SetFlash(w, "error", msg)
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	err := h.client.Users.UpdatePassword(r.Context(), api.UpdatePasswordInput{
		CurrentPassword: current,
		NewPassword:     newPassword,
	})
	finishMutation(w, r, err, "Password updated", "Failed to update password. Please try again.", "/settings")
}

func validatePasswordChange(current, newPassword, confirm string) string {
	if current == "" || newPassword == "" || confirm == "" {
		return "Please fill in all password fields"
	}
	if newPassword != confirm {
		return "New passwords do not match"
	}
	if len(newPassword) < minPasswordLength {
		return "New password must be at least 6 characters long"
	}
	return ""
}
