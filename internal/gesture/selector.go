// Package gesture resolves a pointer drag across day cells into an
// inclusive start/end cell index pair.
package gesture

import "time"

// AbandonAfter bounds how long a drag may stay open without a release
// before its state is dropped. A safety net, not a feature: releases
// normally arrive long before this.
const AbandonAfter = 5 * time.Minute

// Selection is an inclusive cell index range, StartIdx <= EndIdx.
type Selection struct {
	StartIdx int
	EndIdx   int
}

// Selector tracks an in-progress drag selection over the day grid.
// It is an explicit Idle/Dragging state machine: Start arms it, Move
// feeds hovered cell indices, Release resolves the selection through
// the callback.
type Selector struct {
	onSelect func(Selection)

	dragging bool
	anchor   int
	current  int
	hasMoved bool
	deadline time.Time
}

func NewSelector(onSelect func(Selection)) *Selector {
	return &Selector{onSelect: onSelect}
}

// Dragging reports whether a selection drag is open.
func (s *Selector) Dragging() bool {
	return s.dragging
}

// Start opens a drag anchored at idx. Only the anchor cell is
// highlighted until the pointer reaches another cell.
func (s *Selector) Start(idx int, now time.Time) {
	s.dragging = true
	s.anchor = idx
	s.current = idx
	s.hasMoved = false
	s.deadline = now.Add(AbandonAfter)
}

// Move records the cell the pointer is currently over. Movement within
// the anchor cell does not count as having moved. A drag that outlived
// its deadline is abandoned instead, without resolving.
func (s *Selector) Move(idx int, now time.Time) {
	if !s.dragging {
		return
	}
	if now.After(s.deadline) {
		s.Abandon()
		return
	}
	if idx != s.anchor {
		s.hasMoved = true
	}
	s.current = idx
}

// Release resolves the drag. Without movement it is a single-cell
// click, anchor==start==end; otherwise the min/max of anchor and the
// last hovered cell. The callback runs exactly once per resolved drag.
func (s *Selector) Release() {
	if !s.dragging {
		return
	}
	sel := Selection{StartIdx: s.anchor, EndIdx: s.anchor}
	if s.hasMoved {
		sel.StartIdx = min(s.anchor, s.current)
		sel.EndIdx = max(s.anchor, s.current)
	}
	s.reset()
	if s.onSelect != nil {
		s.onSelect(sel)
	}
}

// Abandon drops the drag without invoking the callback.
func (s *Selector) Abandon() {
	s.reset()
}

// Highlight returns the inclusive cell range to mark as selecting, and
// whether any drag is live at all.
func (s *Selector) Highlight() (lo, hi int, active bool) {
	if !s.dragging {
		return 0, 0, false
	}
	return min(s.anchor, s.current), max(s.anchor, s.current), true
}

func (s *Selector) reset() {
	s.dragging = false
	s.anchor = 0
	s.current = 0
	s.hasMoved = false
	s.deadline = time.Time{}
}
