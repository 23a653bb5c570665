// Package interact turns live pointer movement on an existing task bar
// into an updated date range. Three gestures exist, decided by the
// zone the pointer went down in: resize the left edge, resize the
// right edge, or move the whole bar.
package interact

import (
	"errors"
	"math"
	"time"

	"github.com/puruvats57/google-calender/internal/dateutil"
	"github.com/puruvats57/google-calender/internal/task"
)

// Zone is where on the bar the gesture started.
type Zone int

const (
	ZoneBody Zone = iota
	ZoneLeftHandle
	ZoneRightHandle
)

// Resize tracks an edge drag. Proposals are derived from the original
// range captured at gesture start, not from intermediate commits, so a
// pointer that wanders and comes back lands where it started.
type Resize struct {
	TaskID string

	zone      Zone
	startX    int
	origStart time.Time
	origEnd   time.Time
	dayWidth  int
}

// StartResize opens an edge drag for t. zone must be one of the two
// handles.
func StartResize(t task.Task, zone Zone, startX, dayWidth int) (*Resize, error) {
	if zone != ZoneLeftHandle && zone != ZoneRightHandle {
		return nil, errors.New("interact: resize requires an edge zone")
	}
	if dayWidth <= 0 {
		return nil, errors.New("interact: day width must be positive")
	}
	start, err := t.Start()
	if err != nil {
		return nil, err
	}
	end, err := t.End()
	if err != nil {
		return nil, err
	}
	return &Resize{
		TaskID:    t.ID,
		zone:      zone,
		startX:    startX,
		origStart: start,
		origEnd:   end,
		dayWidth:  dayWidth,
	}, nil
}

// Propose converts the pointer's horizontal position into a candidate
// range. ok is false when the dragged edge would cross the opposite
// one; the caller simply skips that frame.
func (r *Resize) Propose(curX int) (startDate, endDate string, ok bool) {
	// Half-up rounding: a drag of exactly half a cell leftwards stays
	// put, rightwards moves a day.
	delta := int(math.Floor(float64(curX-r.startX)/float64(r.dayWidth) + 0.5))

	start, end := r.origStart, r.origEnd
	switch r.zone {
	case ZoneLeftHandle:
		start = dateutil.AddDays(r.origStart, delta)
		if start.After(end) {
			return "", "", false
		}
	case ZoneRightHandle:
		end = dateutil.AddDays(r.origEnd, delta)
		if end.Before(start) {
			return "", "", false
		}
	}
	return dateutil.FormatYMD(start), dateutil.FormatYMD(end), true
}

// Apply commits the current proposal through the store. Rejected
// frames are silent no-ops; committed reports whether an update went
// through.
func (r *Resize) Apply(store *task.Store, curX int) (committed bool, err error) {
	start, end, ok := r.Propose(curX)
	if !ok {
		return false, nil
	}
	err = store.Update(r.TaskID, task.Patch{StartDate: &start, EndDate: &end})
	return err == nil, err
}

// Move tracks a whole-bar drag. Nothing commits until the bar is
// dropped on a target day; the duration is preserved exactly.
type Move struct {
	TaskID string

	durationDays int // exclusive day distance between start and end
}

func StartMove(t task.Task) (*Move, error) {
	start, err := t.Start()
	if err != nil {
		return nil, err
	}
	end, err := t.End()
	if err != nil {
		return nil, err
	}
	return &Move{
		TaskID:       t.ID,
		durationDays: dateutil.DaysBetween(start, end),
	}, nil
}

// Drop computes the range after landing on target: the start snaps to
// the target day and the end follows at the original distance.
func (m *Move) Drop(target time.Time) (startDate, endDate string) {
	start := dateutil.Normalize(target)
	end := dateutil.AddDays(start, m.durationDays)
	return dateutil.FormatYMD(start), dateutil.FormatYMD(end)
}

// Commit applies the drop through the store, once, on release.
func (m *Move) Commit(store *task.Store, target time.Time) error {
	start, end := m.Drop(target)
	return store.Update(m.TaskID, task.Patch{StartDate: &start, EndDate: &end})
}
