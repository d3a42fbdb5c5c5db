package model

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) IsValid() bool {
	return s == TaskStatusTodo || s == TaskStatusInProgress || s == TaskStatusCompleted
}

// Label returns the human-readable form shown in views ("IN_PROGRESS" -> "In Progress").
func (s TaskStatus) Label() string {
	switch s {
	case TaskStatusTodo:
		return "To Do"
	case TaskStatusInProgress:
		return "In Progress"
	case TaskStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) IsValid() bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

// Task mirrors the backend wire format. The backend owns the data; the client
// only holds a transient copy per page load.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Category    string       `json:"category"`
	IsVital     bool         `json:"isVital"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
