package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestGetMissingKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get("planner_tasks_v1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutGetRoundTrip(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("planner_tasks_v1", []byte(`[{"id":"a"}]`)))

	got, err := s.Get("planner_tasks_v1")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	// Overwrite under the same key.
	require.NoError(t, s.Put("planner_tasks_v1", []byte(`[]`)))
	got, err = s.Get("planner_tasks_v1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Put("planner_tasks_v1", []byte(`[1,2,3]`)))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get("planner_tasks_v1")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(got))
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("k", []byte("v")))
	require.NoError(t, s.Delete("k"))
	require.NoError(t, s.Delete("k"))

	_, err = s.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}
