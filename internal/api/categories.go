package api

import (
	"context"

	"github.com/mustafacapras/todoapp-frontend/internal/model"
)

type CategoryAPI struct {
	c *Client
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (c *CategoryAPI) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.c.get(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *CategoryAPI) Get(ctx context.Context, id string) (model.Category, error) {
	var category model.Category
	if err := c.c.get(ctx, "/api/categories/"+pathEscape(id), &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (c *CategoryAPI) Create(ctx context.Context, input CategoryInput) (model.Category, error) {
	var category model.Category
	if err := c.c.post(ctx, "/api/categories", input, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (c *CategoryAPI) Update(ctx context.Context, id string, input CategoryInput) (model.Category, error) {
	var category model.Category
	if err := c.c.put(ctx, "/api/categories/"+pathEscape(id), input, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (c *CategoryAPI) Delete(ctx context.Context, id string) error {
	return c.c.delete(ctx, "/api/categories/"+pathEscape(id))
}
