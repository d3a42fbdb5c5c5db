package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mustafacapras/todoapp-frontend/internal/api"
)

// finishMutation ends every POST the same way: authorization failures go to
// sign-in (the session is already cleared by the client hook), other failures
// flash the backend's message and return to the page unchanged, and successes
// flash confirmation and redirect - the fresh GET is the post-mutation
// refetch.
func finishMutation(w http.ResponseWriter, r *http.Request, err error, successMsg, fallbackMsg, returnTo string) {
	if errors.Is(err, api.ErrUnauthorized) {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}
	if err != nil {
		SetFlash(w, "error", api.DisplayMessage(err, fallbackMsg))
	} else {
		SetFlash(w, "success", successMsg)
	}
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

// safeReturn keeps redirects on-site: only rooted local paths pass.
func safeReturn(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return fallback
	}
	return raw
}

// fetchFailed turns a failed page fetch into either a sign-in redirect or a
// banner message. Returns true when the response is already written.
func fetchFailed(w http.ResponseWriter, r *http.Request, err error) (string, bool) {
	if errors.Is(err, api.ErrUnauthorized) {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return "", true
	}
	return api.DisplayMessage(err, "Failed to load data. Please try again."), false
}
