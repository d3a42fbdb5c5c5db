package api

import (
	"context"
	"time"

	"github.com/mustafacapras/todoapp-frontend/internal/model"
)

type TaskAPI struct {
	c *Client
}

// TaskInput is the create/update payload. The vital flag goes over the wire
// as "isVital" on both operations.
type TaskInput struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
	Priority    model.TaskPriority `json:"priority"`
	Status      model.TaskStatus   `json:"status"`
	Category    string             `json:"category"`
	IsVital     bool               `json:"isVital"`
}

func (t *TaskAPI) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := t.c.get(ctx, "/api/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (t *TaskAPI) Get(ctx context.Context, id string) (model.Task, error) {
	var task model.Task
	if err := t.c.get(ctx, "/api/tasks/"+pathEscape(id), &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (t *TaskAPI) Create(ctx context.Context, input TaskInput) (model.Task, error) {
	var task model.Task
	if err := t.c.post(ctx, "/api/tasks", input, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (t *TaskAPI) Update(ctx context.Context, id string, input TaskInput) (model.Task, error) {
	var task model.Task
	if err := t.c.put(ctx, "/api/tasks/"+pathEscape(id), input, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (t *TaskAPI) Delete(ctx context.Context, id string) error {
	return t.c.delete(ctx, "/api/tasks/"+pathEscape(id))
}

// ListByCategory fetches the tasks referencing one category. The backend
// accepts the category identifier it handed out in the category list.
func (t *TaskAPI) ListByCategory(ctx context.Context, categoryID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := t.c.get(ctx, "/api/tasks/category/"+pathEscape(categoryID), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListVital fetches only vital-flagged tasks through the dedicated endpoint.
func (t *TaskAPI) ListVital(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := t.c.get(ctx, "/api/tasks/vital", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
