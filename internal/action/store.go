package action

import "github.com/Basantrajshakti/taskboard/internal/task"

// ListStore is the in-memory snapshot of the task list for one session. It is
// seeded once from the initial list fetch and mutated only through the
// reconciliation methods after a confirmed remote result, never optimistically.
type ListStore struct {
	tasks []task.Task
}

// NewListStore seeds the store from the initial server snapshot. Entries with
// a duplicate id are discarded to uphold the id-uniqueness invariant.
func NewListStore(initial []task.Task) *ListStore {
	s := &ListStore{}
	for _, t := range initial {
		if _, ok := s.Get(t.ID); ok {
			continue
		}
		s.tasks = append(s.tasks, t)
	}
	return s
}

func (s *ListStore) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the current snapshot in display order.
func (s *ListStore) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *ListStore) Get(id string) (task.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

func (s *ListStore) Contains(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Append adds the confirmed created task at the end. Display order is
// insertion order; no client-side sort is applied.
func (s *ListStore) Append(t task.Task) {
	if s.Contains(t.ID) {
		return
	}
	s.tasks = append(s.tasks, t)
}

// Replace swaps the entry with t's id wholesale for the server's returned
// record. Reports whether an entry was replaced.
func (s *ListStore) Replace(t task.Task) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given id. Removing an absent id is a
// no-op, not an error.
func (s *ListStore) Remove(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
