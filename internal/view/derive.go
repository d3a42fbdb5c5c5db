package view

import "github.com/mustafacapras/todoapp-frontend/internal/model"

// StatusBuckets are the kanban columns. Every task lands in exactly one
// bucket; unknown statuses go to Todo so nothing silently disappears.
type StatusBuckets struct {
	Todo       []model.Task
	InProgress []model.Task
	Completed  []model.Task
}

func (b StatusBuckets) Total() int {
	return len(b.Todo) + len(b.InProgress) + len(b.Completed)
}

func BucketByStatus(tasks []model.Task) StatusBuckets {
	var b StatusBuckets
	for _, task := range tasks {
		switch task.Status {
		case model.TaskStatusInProgress:
			b.InProgress = append(b.InProgress, task)
		case model.TaskStatusCompleted:
			b.Completed = append(b.Completed, task)
		default:
			b.Todo = append(b.Todo, task)
		}
	}
	return b
}

// Stats are whole percentages of the collection per status. Truncation may
// leave a remainder uncounted, so the three never sum past 100. An empty
// collection yields all zeros.
type Stats struct {
	Completed  int
	InProgress int
	NotStarted int
}

func TaskStats(tasks []model.Task) Stats {
	if len(tasks) == 0 {
		return Stats{}
	}
	b := BucketByStatus(tasks)
	total := len(tasks)
	return Stats{
		Completed:  len(b.Completed) * 100 / total,
		InProgress: len(b.InProgress) * 100 / total,
		NotStarted: len(b.Todo) * 100 / total,
	}
}

// SplitCompleted separates finished tasks from outstanding ones, preserving
// order, for the dashboard's two columns.
func SplitCompleted(tasks []model.Task) (outstanding, completed []model.Task) {
	for _, task := range tasks {
		if task.Status == model.TaskStatusCompleted {
			completed = append(completed, task)
		} else {
			outstanding = append(outstanding, task)
		}
	}
	return outstanding, completed
}

func FilterVital(tasks []model.Task) []model.Task {
	var vital []model.Task
	for _, task := range tasks {
		if task.IsVital {
			vital = append(vital, task)
		}
	}
	return vital
}

func FilterByCategory(tasks []model.Task, category string) []model.Task {
	if category == "" || category == "all" {
		return tasks
	}
	var filtered []model.Task
	for _, task := range tasks {
		if task.Category == category {
			filtered = append(filtered, task)
		}
	}
	return filtered
}
