package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
	"github.com/mustafacapras/todoapp-frontend/internal/session"
)

const minPasswordLength = 6

// AuthHandler serves the sign-in and sign-up screens and the sign-out action.
type AuthHandler struct {
	client   *api.Client
	sessions *session.Store
	renderer *Renderer
	logger   *slog.Logger
}

func NewAuthHandler(client *api.Client, sessions *session.Store, renderer *Renderer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{client: client, sessions: sessions, renderer: renderer, logger: logger}
}

type signInPage struct {
	basePage
	Email string
}

func (h *AuthHandler) SignInForm(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderer.Render(w, http.StatusOK, "signin", signInPage{
		basePage: basePage{Title: "Sign In", Flash: PopFlash(w, r)},
	})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	// Inline validation, before any network call.
	if email == "" || password == "" {
		h.renderer.Render(w, http.StatusOK, "signin", signInPage{
			basePage: basePage{Title: "Sign In", Error: "Email and password are required"},
			Email:    email,
		})
		return
	}

	token, err := h.client.Auth.SignIn(r.Context(), api.Credentials{Email: email, Password: password})
	if err != nil {
		h.renderer.Render(w, http.StatusOK, "signin", signInPage{
			basePage: basePage{
				Title: "Sign In",
				Error: api.DisplayMessage(err, "Sign in failed. Please check your credentials and try again."),
			},
			Email: email,
		})
		return
	}

	if err := h.sessions.Login(token); err != nil {
		h.logger.Error("failed to establish session", "error", err)
		h.renderer.Render(w, http.StatusOK, "signin", signInPage{
			basePage: basePage{Title: "Sign In", Error: "Sign in failed. Please try again."},
			Email:    email,
		})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

type signUpPage struct {
	basePage
	FirstName string
	LastName  string
	Email     string
}

func (h *AuthHandler) SignUpForm(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderer.Render(w, http.StatusOK, "signup", signUpPage{
		basePage: basePage{Title: "Sign Up", Flash: PopFlash(w, r)},
	})
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	page := signUpPage{
		basePage:  basePage{Title: "Sign Up"},
		FirstName: strings.TrimSpace(r.PostFormValue("firstName")),
		LastName:  strings.TrimSpace(r.PostFormValue("lastName")),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
	}
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirmPassword")

	if msg := validateRegistration(page.FirstName, page.LastName, page.Email, password, confirm); msg != "" {
		page.Error = msg
		h.renderer.Render(w, http.StatusOK, "signup", page)
		return
	}

	token, err := h.client.Auth.SignUp(r.Context(), api.Registration{
		FirstName: page.FirstName,
		LastName:  page.LastName,
		Email:     page.Email,
		Password:  password,
	})
	if err != nil {
		page.Error = api.DisplayMessage(err, "Registration failed. Please try again.")
		h.renderer.Render(w, http.StatusOK, "signup", page)
		return
	}

	if token != "" {
		if err := h.sessions.Login(token); err == nil {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		h.logger.Error("failed to establish session after signup")
	}

	SetFlash(w, "success", "Account created. Please sign in.")
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

func validateRegistration(firstName, lastName, email, password, confirm string) string {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return "All fields are required"
	}
	if len(password) < minPasswordLength {
		return "Password must be at least 6 characters long"
	}
	if password != confirm {
		return "Passwords do not match"
	}
	return ""
}
