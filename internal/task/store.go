package task

import "github.com/google/uuid"

// Store owns the task map. Access is single-threaded and single-writer,
// so there is no locking; all mutation happens on the loop goroutine.
type Store struct {
	tasks map[uuid.UUID]Task
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{tasks: make(map[uuid.UUID]Task)}
}

// Add inserts a task under a freshly generated id and returns the id.
func (s *Store) Add(t Task) uuid.UUID {
	id := uuid.New()
	s.tasks[id] = t
	return id
}

// Get returns the task for id. An unknown id is not an error.
func (s *Store) Get(id uuid.UUID) (Task, bool) {
	t, ok := s.tasks[id]
	return t, ok
}

// IDs returns all current ids in unspecified order.
func (s *Store) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	return ids
}

// All returns every (id, task) pair in unspecified order.
func (s *Store) All() []KeyedTask {
	all := make([]KeyedTask, 0, len(s.tasks))
	for id, t := range s.tasks {
		all = append(all, KeyedTask{ID: id, Task: t})
	}
	return all
}

// Remove deletes the entry matching kt's id. Removing an absent task
// is a no-op, not an error.
func (s *Store) Remove(kt KeyedTask) {
	delete(s.tasks, kt.ID)
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}
