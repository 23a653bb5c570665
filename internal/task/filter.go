package task

import (
	"strings"
	"time"

	"github.com/puruvats57/google-calender/internal/dateutil"
)

// Filters is the transient filter state driven by the sidebar. An
// empty Categories slice means no category restriction. WeeksWindow is
// 0 (off) or 1-3, restricting to tasks overlapping the next N weeks.
type Filters struct {
	Categories  []Category
	WeeksWindow int
}

// HasCategory reports whether c is in the active category set.
func (f Filters) HasCategory(c Category) bool {
	for _, have := range f.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// ToggleCategory adds or removes c from the set.
func (f Filters) ToggleCategory(c Category) Filters {
	if !f.HasCategory(c) {
		f.Categories = append(append([]Category(nil), f.Categories...), c)
		return f
	}
	kept := make([]Category, 0, len(f.Categories)-1)
	for _, have := range f.Categories {
		if have != c {
			kept = append(kept, have)
		}
	}
	f.Categories = kept
	return f
}

// Visible derives the visible subset of tasks from the active filters
// and search text. Pure: the three predicates are independent and
// commute, so the application order is only a matter of taste.
func Visible(tasks []Task, f Filters, search string, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if len(f.Categories) > 0 && !f.HasCategory(t.Category) {
			continue
		}
		if f.WeeksWindow > 0 && !overlapsWindow(t, now, f.WeeksWindow) {
			continue
		}
		if !matchesSearch(t, search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// overlapsWindow tests the task's range against [now, now+weeks]. The
// three clauses (start inside, end inside, spans the whole window)
// together are a standard interval-overlap test.
func overlapsWindow(t Task, now time.Time, weeks int) bool {
	start, err := t.Start()
	if err != nil {
		return false
	}
	end, err := t.End()
	if err != nil {
		return false
	}
	winStart := dateutil.Normalize(now)
	winEnd := dateutil.AddWeeks(winStart, weeks)

	if dateutil.WithinInterval(start, winStart, winEnd) {
		return true
	}
	if dateutil.WithinInterval(end, winStart, winEnd) {
		return true
	}
	return !start.After(winStart) && !end.Before(winEnd)
}

func matchesSearch(t Task, search string) bool {
	q := strings.TrimSpace(search)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), strings.ToLower(q))
}
