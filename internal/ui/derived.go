package ui

import (
	"strings"

	"github.com/puruvats57/google-calender/internal/dateutil"
	"github.com/puruvats57/google-calender/internal/layout"
	"github.com/puruvats57/google-calender/internal/task"
)

// The visible task set and its day grouping are pure derivations of
// store contents, filters, search and grid. They are recomputed only
// when one of those inputs changes, keyed by the store's version
// counter rather than by diffing the collection.

type derivedKey struct {
	version   uint64
	weeks     int
	cats      string
	search    string
	today     string
	gridStart string
	gridLen   int
}

type derivedState struct {
	visible []task.Task
	buckets []layout.Bucket
}

type derivedMemo struct {
	valid bool
	key   derivedKey
	state derivedState
}

func (m *Model) derivedStateKey() derivedKey {
	return derivedKey{
		version:   m.store.Version(),
		weeks:     m.filters.WeeksWindow,
		cats:      catsKey(m.filters.Categories),
		search:    strings.TrimSpace(strings.ToLower(m.search)),
		today:     dateutil.FormatYMD(m.now()),
		gridStart: dateutil.FormatYMD(m.grid[0]),
		gridLen:   len(m.grid),
	}
}

func (m *Model) derived() derivedState {
	key := m.derivedStateKey()
	if m.memo.valid && m.memo.key == key {
		return m.memo.state
	}
	visible := task.Visible(m.store.Tasks(), m.filters, m.search, m.now())
	state := derivedState{
		visible: visible,
		buckets: layout.Buckets(visible, m.grid),
	}
	m.memo = derivedMemo{valid: true, key: key, state: state}
	return state
}

func catsKey(cats []task.Category) string {
	if len(cats) == 0 {
		return ""
	}
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, "|")
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
