package api

import (
	"context"

	"github.com/mustafacapras/todoapp-frontend/internal/model"
)

type UserAPI struct {
	c *Client
}

type UpdateUserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (u *UserAPI) CurrentUser(ctx context.Context) (model.User, error) {
	var user model.User
	if err := u.c.get(ctx, "/api/users/me", &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (u *UserAPI) UpdateUser(ctx context.Context, input UpdateUserInput) (model.User, error) {
	var user model.User
	if err := u.c.put(ctx, "/api/users/me", input, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (u *UserAPI) UpdatePassword(ctx context.Context, input UpdatePasswordInput) error {
	return u.c.put(ctx, "/api/users/me/password", input, nil)
}
