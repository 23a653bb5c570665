// Package layout computes where a task's bar sits on the linear day
// axis and which tasks share each calendar day.
package layout

import (
	"time"

	"github.com/puruvats57/google-calender/internal/dateutil"
	"github.com/puruvats57/google-calender/internal/task"
)

const (
	// BarMargin is the offset from the day boundary to the bar edge.
	BarMargin = 10
	// BarInnerGap keeps adjacent bars from touching across a shared
	// day boundary.
	BarInnerGap = 18
)

// Bar is a task's computed placement, in the same unit as dayWidth.
type Bar struct {
	Left  int
	Width int

	OffsetDays   int
	DurationDays int
}

// BarFor places a task relative to the first grid date. The width
// never drops under 60% of a day cell, so even a one-day task on a
// narrow cell stays visible. ok is false when the task's dates do not
// parse.
func BarFor(t task.Task, gridStart time.Time, dayWidth int) (Bar, bool) {
	start, err := t.Start()
	if err != nil {
		return Bar{}, false
	}
	end, err := t.End()
	if err != nil {
		return Bar{}, false
	}

	offset := dateutil.DaysBetween(gridStart, start)
	duration := dateutil.DaysBetweenInclusive(start, end)

	width := duration*dayWidth - BarInnerGap
	if minWidth := dayWidth * 6 / 10; width < minWidth {
		width = minWidth
	}
	return Bar{
		Left:         offset*dayWidth + BarMargin,
		Width:        width,
		OffsetDays:   offset,
		DurationDays: duration,
	}, true
}

// Bucket is the set of tasks whose range covers one grid day, in the
// order the tasks were given.
type Bucket struct {
	Date  time.Time
	Tasks []task.Task
}

// Primary is the task shown in compact cell rendering.
func (b Bucket) Primary() (task.Task, bool) {
	if len(b.Tasks) == 0 {
		return task.Task{}, false
	}
	return b.Tasks[0], true
}

// Overflow counts the tasks hidden behind the primary.
func (b Bucket) Overflow() int {
	if len(b.Tasks) <= 1 {
		return 0
	}
	return len(b.Tasks) - 1
}

// Buckets groups tasks by every day they span, one bucket per grid
// cell. A multi-day task appears in each day it covers; tasks whose
// dates do not parse are skipped.
func Buckets(tasks []task.Task, gridDates []time.Time) []Bucket {
	buckets := make([]Bucket, len(gridDates))
	index := make(map[string]int, len(gridDates))
	for i, d := range gridDates {
		buckets[i] = Bucket{Date: d}
		index[dateutil.FormatYMD(d)] = i
	}

	for _, t := range tasks {
		start, err := t.Start()
		if err != nil {
			continue
		}
		end, err := t.End()
		if err != nil {
			continue
		}
		for d := start; !d.After(end); d = dateutil.AddDays(d, 1) {
			if i, ok := index[dateutil.FormatYMD(d)]; ok {
				buckets[i].Tasks = append(buckets[i].Tasks, t)
			}
		}
	}
	return buckets
}
