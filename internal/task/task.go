// Package task holds the planner's task model, the persistent task
// store, and the filter/search evaluator that derives the visible set.
package task

import (
	"time"

	"github.com/puruvats57/google-calender/internal/dateutil"
)

// Category is one of the four fixed scheduling lanes.
type Category string

const (
	CategoryToDo       Category = "To Do"
	CategoryInProgress Category = "In Progress"
	CategoryReview     Category = "Review"
	CategoryCompleted  Category = "Completed"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryToDo, CategoryInProgress, CategoryReview, CategoryCompleted}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryToDo, CategoryInProgress, CategoryReview, CategoryCompleted:
		return true
	}
	return false
}

// Task is one scheduled item. Dates are inclusive local calendar dates
// stored as yyyy-MM-dd; StartDate <= EndDate is maintained by every
// mutator that touches the range.
type Task struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Color     string   `json:"color,omitempty"`
}

// Start parses the task's start date.
func (t Task) Start() (time.Time, error) {
	return dateutil.ParseYMD(t.StartDate)
}

// End parses the task's end date.
func (t Task) End() (time.Time, error) {
	return dateutil.ParseYMD(t.EndDate)
}

// DurationDays is the inclusive span length; a single-day task is 1.
func (t Task) DurationDays() int {
	start, err := t.Start()
	if err != nil {
		return 1
	}
	end, err := t.End()
	if err != nil {
		return 1
	}
	return dateutil.DaysBetweenInclusive(start, end)
}
