package view

import (
	"time"

	"github.com/mustafacapras/todoapp-frontend/internal/model"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date    time.Time
	InMonth bool
	Tasks   []model.Task
}

// MonthGrid lays out the given month as full weeks, Sunday through Saturday,
// padding with leading and trailing days of the neighboring months. Tasks are
// bucketed onto the day their due date falls on; tasks without a due date
// appear nowhere on the calendar.
func MonthGrid(year int, month time.Month, tasks []model.Task) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var days []CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date:    d,
			InMonth: d.Month() == month,
			Tasks:   tasksOn(tasks, d),
		})
	}
	return days
}

func tasksOn(tasks []model.Task, day time.Time) []model.Task {
	var due []model.Task
	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		if sameDay(*task.DueDate, day) {
			due = append(due, task)
		}
	}
	return due
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
