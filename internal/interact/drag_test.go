package interact

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puruvats57/google-calender/internal/dateutil"
	"github.com/puruvats57/google-calender/internal/storage"
	"github.com/puruvats57/google-calender/internal/task"
)

func newStore(t *testing.T, tasks ...task.Task) *task.Store {
	t.Helper()
	blobs, err := storage.Open(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { blobs.Close() })

	store := task.NewStore(blobs)
	store.Load()
	for _, tk := range tasks {
		require.NoError(t, store.Add(tk))
	}
	return store
}

func planTask(start, end string) task.Task {
	return task.Task{ID: "t1", Name: "plan", Category: task.CategoryToDo,
		StartDate: start, EndDate: end}
}

func TestResizeLeftShiftsStart(t *testing.T) {
	store := newStore(t, planTask("2024-02-10", "2024-02-12"))
	tk, _ := store.Get("t1")

	r, err := StartResize(tk, ZoneLeftHandle, 1000, 128)
	require.NoError(t, err)

	// Dragged three cells to the left.
	committed, err := r.Apply(store, 1000-3*128)
	require.NoError(t, err)
	assert.True(t, committed)

	got, _ := store.Get("t1")
	assert.Equal(t, "2024-02-07", got.StartDate)
	assert.Equal(t, "2024-02-12", got.EndDate)
}

func TestResizeLeftRejectsCrossingEnd(t *testing.T) {
	store := newStore(t, planTask("2024-02-07", "2024-02-08"))
	tk, _ := store.Get("t1")

	r, err := StartResize(tk, ZoneLeftHandle, 0, 128)
	require.NoError(t, err)

	// +2 days would put the start past the end: silent no-op frame.
	committed, err := r.Apply(store, 2*128)
	require.NoError(t, err)
	assert.False(t, committed)

	got, _ := store.Get("t1")
	assert.Equal(t, "2024-02-07", got.StartDate)
	assert.Equal(t, "2024-02-08", got.EndDate)

	// +1 day lands exactly on the end: a one-day task is allowed.
	committed, err = r.Apply(store, 1*128)
	require.NoError(t, err)
	assert.True(t, committed)
	got, _ = store.Get("t1")
	assert.Equal(t, "2024-02-08", got.StartDate)
	assert.Equal(t, "2024-02-08", got.EndDate)
}

func TestResizeRightSymmetric(t *testing.T) {
	store := newStore(t, planTask("2024-02-10", "2024-02-12"))
	tk, _ := store.Get("t1")

	r, err := StartResize(tk, ZoneRightHandle, 0, 128)
	require.NoError(t, err)

	committed, err := r.Apply(store, 2*128)
	require.NoError(t, err)
	assert.True(t, committed)
	got, _ := store.Get("t1")
	assert.Equal(t, "2024-02-14", got.EndDate)

	// Shrinking past the start is rejected.
	committed, _ = r.Apply(store, -3*128)
	assert.False(t, committed)
	got, _ = store.Get("t1")
	assert.Equal(t, "2024-02-14", got.EndDate)
}

func TestResizeProposalsDeriveFromOriginalRange(t *testing.T) {
	store := newStore(t, planTask("2024-02-10", "2024-02-12"))
	tk, _ := store.Get("t1")

	r, err := StartResize(tk, ZoneLeftHandle, 0, 128)
	require.NoError(t, err)

	_, err = r.Apply(store, -2*128)
	require.NoError(t, err)
	// Coming back to the start position restores the original date even
	// though an intermediate commit moved it.
	_, err = r.Apply(store, 0)
	require.NoError(t, err)

	got, _ := store.Get("t1")
	assert.Equal(t, "2024-02-10", got.StartDate)
}

func TestResizeRoundsToNearestDay(t *testing.T) {
	tk := planTask("2024-02-10", "2024-02-12")
	r, err := StartResize(tk, ZoneRightHandle, 0, 128)
	require.NoError(t, err)

	// Less than half a cell: no day change.
	_, end, ok := r.Propose(50)
	require.True(t, ok)
	assert.Equal(t, "2024-02-12", end)

	// Past half a cell: one day.
	_, end, ok = r.Propose(70)
	require.True(t, ok)
	assert.Equal(t, "2024-02-13", end)
}

func TestResizeHalfCellBoundary(t *testing.T) {
	tk := planTask("2024-02-10", "2024-02-12")
	r, err := StartResize(tk, ZoneRightHandle, 0, 128)
	require.NoError(t, err)

	// Exactly half a cell leftwards rounds toward zero.
	_, end, ok := r.Propose(-64)
	require.True(t, ok)
	assert.Equal(t, "2024-02-12", end)

	// Exactly half a cell rightwards rounds up.
	_, end, ok = r.Propose(64)
	require.True(t, ok)
	assert.Equal(t, "2024-02-13", end)
}

func TestStartResizeValidation(t *testing.T) {
	tk := planTask("2024-02-10", "2024-02-12")

	_, err := StartResize(tk, ZoneBody, 0, 128)
	assert.Error(t, err)

	_, err = StartResize(tk, ZoneLeftHandle, 0, 0)
	assert.Error(t, err)

	_, err = StartResize(task.Task{StartDate: "bad"}, ZoneLeftHandle, 0, 128)
	assert.Error(t, err)
}

func TestMovePreservesDuration(t *testing.T) {
	store := newStore(t, planTask("2024-02-10", "2024-02-12"))
	tk, _ := store.Get("t1")

	m, err := StartMove(tk)
	require.NoError(t, err)

	target, _ := dateutil.ParseYMD("2024-02-15")
	require.NoError(t, m.Commit(store, target))

	got, _ := store.Get("t1")
	assert.Equal(t, "2024-02-15", got.StartDate)
	assert.Equal(t, "2024-02-17", got.EndDate)
}

func TestMoveSingleDayTask(t *testing.T) {
	store := newStore(t, planTask("2024-02-10", "2024-02-10"))
	tk, _ := store.Get("t1")

	m, err := StartMove(tk)
	require.NoError(t, err)

	target, _ := dateutil.ParseYMD("2024-03-01")
	require.NoError(t, m.Commit(store, target))

	got, _ := store.Get("t1")
	assert.Equal(t, "2024-03-01", got.StartDate)
	assert.Equal(t, "2024-03-01", got.EndDate)
}

func TestInvariantHoldsAfterAnyCommit(t *testing.T) {
	store := newStore(t, planTask("2024-02-10", "2024-02-12"))
	tk, _ := store.Get("t1")

	r, _ := StartResize(tk, ZoneLeftHandle, 0, 128)
	for dx := -5 * 128; dx <= 5*128; dx += 64 {
		_, err := r.Apply(store, dx)
		require.NoError(t, err)
		got, _ := store.Get("t1")
		start, err := got.Start()
		require.NoError(t, err)
		end, err := got.End()
		require.NoError(t, err)
		assert.False(t, start.After(end), "dx=%d produced %s > %s", dx, got.StartDate, got.EndDate)
	}
}
