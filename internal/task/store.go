package task

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/puruvats57/google-calender/internal/storage"
)

// BlobKey is the fixed key the serialized task collection lives under.
const BlobKey = "planner_tasks_v1"

// Store owns the task collection and is its single source of truth.
// Consumers read snapshots via Tasks and request changes through Add,
// Update and Delete; every mutation persists the whole collection.
type Store struct {
	blobs   *storage.Store
	tasks   []Task
	version uint64
}

func NewStore(blobs *storage.Store) *Store {
	return &Store{blobs: blobs}
}

// Load reads the persisted collection. A missing or unreadable blob is
// not an error: the planner starts empty rather than refusing to run.
func (s *Store) Load() {
	s.tasks = nil
	if s.blobs == nil {
		return
	}
	raw, err := s.blobs.Get(BlobKey)
	if err != nil {
		return
	}
	var tasks []Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return
	}
	s.tasks = tasks
}

// Tasks returns a snapshot copy of the collection.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id, if present.
func (s *Store) Get(id string) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Len reports the collection size.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Version increments on every mutation; derived views key their memo
// entries on it.
func (s *Store) Version() uint64 {
	return s.version
}

// Add appends a fully-formed task. The caller assigns the id and
// guarantees its uniqueness.
func (s *Store) Add(t Task) error {
	s.tasks = append(s.tasks, t)
	s.version++
	return s.persist()
}

// Patch carries the fields an Update replaces. Nil fields are left
// untouched. Date order is not re-checked here; the move/resize logic
// owns that invariant.
type Patch struct {
	Name      *string
	Category  *Category
	StartDate *string
	EndDate   *string
	Color     *string
}

// Update merges patch into the task with the given id. An unknown id
// is a silent no-op.
func (s *Store) Update(id string, p Patch) error {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if p.Name != nil {
			s.tasks[i].Name = *p.Name
		}
		if p.Category != nil {
			s.tasks[i].Category = *p.Category
		}
		if p.StartDate != nil {
			s.tasks[i].StartDate = *p.StartDate
		}
		if p.EndDate != nil {
			s.tasks[i].EndDate = *p.EndDate
		}
		if p.Color != nil {
			s.tasks[i].Color = *p.Color
		}
		s.version++
		return s.persist()
	}
	return nil
}

// Delete removes the task with the given id. An unknown id is a silent
// no-op. No UI action reaches this today; it is part of the store
// contract.
func (s *Store) Delete(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.version++
			return s.persist()
		}
	}
	return nil
}

func (s *Store) persist() error {
	if s.blobs == nil {
		return errors.New("task: no blob store attached")
	}
	data, err := json.Marshal(s.tasksOrEmpty())
	if err != nil {
		return fmt.Errorf("serialize tasks: %w", err)
	}
	if err := s.blobs.Put(BlobKey, data); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

// tasksOrEmpty keeps the persisted blob a JSON array even when the
// collection is empty.
func (s *Store) tasksOrEmpty() []Task {
	if s.tasks == nil {
		return []Task{}
	}
	return s.tasks
}
