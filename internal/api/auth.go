package api

import (
	"context"
	"net/url"
)

// AuthAPI covers the unauthenticated entry points. Both calls go out without
// a token requirement; an existing token is still attached if present.
type AuthAPI struct {
	c *Client
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"accessToken"`
}

// SignIn exchanges credentials for a bearer token. Persisting the token and
// deriving the user from it is the session store's job, not the client's.
func (a *AuthAPI) SignIn(ctx context.Context, creds Credentials) (string, error) {
	var resp authResponse
	if err := a.c.post(ctx, "/api/auth/signin", creds, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// SignUp registers a new account. Some deployments return a token straight
// away; others only confirm, in which case the returned token is empty and
// the caller sends the user to sign-in.
func (a *AuthAPI) SignUp(ctx context.Context, reg Registration) (string, error) {
	var resp authResponse
	if err := a.c.post(ctx, "/api/auth/signup", reg, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func pathEscape(s string) string {
	return url.PathEscape(s)
}
