package action

import (
	"testing"

	"github.com/Basantrajshakti/taskboard/internal/task"
)

func TestNewListStoreDropsDuplicateIDs(t *testing.T) {
	store := NewListStore([]task.Task{
		{ID: "1", Title: "first"},
		{ID: "2", Title: "second"},
		{ID: "1", Title: "dup"},
	})
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	got, ok := store.Get("1")
	if !ok || got.Title != "first" {
		t.Fatalf("Get(1) = %+v, %v; want the first entry kept", got, ok)
	}
}

func TestListStoreAppend(t *testing.T) {
	store := NewListStore(nil)
	store.Append(task.Task{ID: "1", Title: "a"})
	store.Append(task.Task{ID: "1", Title: "b"}) // duplicate id, no-op
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
	got, _ := store.Get("1")
	if got.Title != "a" {
		t.Fatalf("Get(1).Title = %q, want %q", got.Title, "a")
	}
}

func TestListStoreReplace(t *testing.T) {
	store := NewListStore([]task.Task{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}})
	if !store.Replace(task.Task{ID: "2", Title: "b2"}) {
		t.Fatal("Replace(2) = false, want true")
	}
	if store.Replace(task.Task{ID: "3", Title: "c"}) {
		t.Fatal("Replace(3) = true, want false")
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	got, _ := store.Get("2")
	if got.Title != "b2" {
		t.Fatalf("Get(2).Title = %q, want %q", got.Title, "b2")
	}
	// position is preserved
	if tasks := store.Tasks(); tasks[1].ID != "2" {
		t.Fatalf("Tasks()[1].ID = %q, want %q", tasks[1].ID, "2")
	}
}

func TestListStoreRemove(t *testing.T) {
	store := NewListStore([]task.Task{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	store.Remove("2")
	store.Remove("missing") // no-op
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	tasks := store.Tasks()
	if tasks[0].ID != "1" || tasks[1].ID != "3" {
		t.Fatalf("remaining order = [%s %s], want [1 3]", tasks[0].ID, tasks[1].ID)
	}
	if store.Contains("2") {
		t.Fatal("Contains(2) = true after Remove")
	}
}

func TestListStoreTasksReturnsCopy(t *testing.T) {
	store := NewListStore([]task.Task{{ID: "1", Title: "a"}})
	tasks := store.Tasks()
	tasks[0].Title = "mutated"
	got, _ := store.Get("1")
	if got.Title != "a" {
		t.Fatalf("Get(1).Title = %q after mutating the snapshot, want %q", got.Title, "a")
	}
}
