package formfield

import (
	"reflect"
	"testing"

	"github.com/Basantrajshakti/taskboard/internal/task"
)

func TestSplitAssignees(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		want   []string
	}{
		{"empty", "", []string{}},
		{"single", "Alice", []string{"Alice"}},
		{"spaced pair", "Alice, Bob", []string{"Alice", "Bob"}},
		{"surrounding whitespace", "  Alice ,Bob  ", []string{"Alice", "Bob"}},
		{"empty segments dropped", "Alice,,Bob,", []string{"Alice", "Bob"}},
		{"later duplicates dropped", "Alice,Bob,Alice", []string{"Alice", "Bob"}},
		{"only separators", ", ,,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAssignees(tt.joined)
			if got == nil {
				t.Fatal("SplitAssignees returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitAssignees(%q) = %v, want %v", tt.joined, got, tt.want)
			}
		})
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	names := []string{"Alice", "Bob", "Carol"}
	if got := SplitAssignees(JoinAssignees(names)); !reflect.DeepEqual(got, names) {
		t.Errorf("round trip = %v, want %v", got, names)
	}
}

func TestAddAssignee(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		add    string
		want   string
	}{
		{"append to empty", "", "Alice", "Alice"},
		{"append new", "Alice", "Bob", "Alice,Bob"},
		{"duplicate no-op", "Alice,Bob", "Bob", "Alice,Bob"},
		{"case sensitive", "Alice", "alice", "Alice,alice"},
		{"blank ignored", "Alice", "  ", "Alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddAssignee(tt.joined, tt.add); got != tt.want {
				t.Errorf("AddAssignee(%q, %q) = %q, want %q", tt.joined, tt.add, got, tt.want)
			}
		})
	}
}

func TestRemoveAssignee(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		remove string
		want   string
	}{
		{"middle", "Alice,Bob,Carol", "Bob", "Alice,Carol"},
		{"absent no-op", "Alice,Bob", "Carol", "Alice,Bob"},
		{"last remaining", "Alice", "Alice", ""},
		{"trimmed match", "Alice,Bob", " Bob ", "Alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveAssignee(tt.joined, tt.remove); got != tt.want {
				t.Errorf("RemoveAssignee(%q, %q) = %q, want %q", tt.joined, tt.remove, got, tt.want)
			}
		})
	}
}

func TestAddRemoveTag(t *testing.T) {
	tags := []task.Tag{task.TagBug}
	tags = AddTag(tags, task.TagFeature)
	tags = AddTag(tags, task.TagBug) // duplicate no-op
	want := []task.Tag{task.TagBug, task.TagFeature}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("after AddTag = %v, want %v", tags, want)
	}

	tags = RemoveTag(tags, task.TagBug)
	if !reflect.DeepEqual(tags, []task.Tag{task.TagFeature}) {
		t.Fatalf("after RemoveTag = %v, want [FEATURE]", tags)
	}
	if got := RemoveTag(tags, task.TagReview); !reflect.DeepEqual(got, tags) {
		t.Fatalf("RemoveTag of absent tag = %v, want unchanged %v", got, tags)
	}
}
