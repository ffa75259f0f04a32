// Package formfield bridges single-text-input form controls to the set-valued
// task fields. Assignees live in the form as one comma-joined string; tags as
// a slice. All conversions between the two shapes go through here.
package formfield

import (
	"strings"

	"github.com/Basantrajshakti/taskboard/internal/task"
)

const assigneeSeparator = ","

// SplitAssignees decodes the comma-joined form value into the ordered
// assignee sequence used for transport: each segment is trimmed, empty
// segments are dropped, later duplicates are discarded.
func SplitAssignees(joined string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, part := range strings.Split(joined, assigneeSeparator) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// JoinAssignees encodes the assignee sequence back into the single form
// value.
func JoinAssignees(assignees []string) string {
	return strings.Join(assignees, assigneeSeparator)
}

// AddAssignee appends name to the joined form value unless an exact
// (case-sensitive) match is already present.
func AddAssignee(joined, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return joined
	}
	current := SplitAssignees(joined)
	for _, a := range current {
		if a == name {
			return JoinAssignees(current)
		}
	}
	return JoinAssignees(append(current, name))
}

// RemoveAssignee filters exact matches of name out of the joined form value.
// The order of the remaining entries is preserved.
func RemoveAssignee(joined, name string) string {
	current := SplitAssignees(joined)
	out := current[:0]
	for _, a := range current {
		if a != strings.TrimSpace(name) {
			out = append(out, a)
		}
	}
	return JoinAssignees(out)
}

// AddTag appends tag at the end unless already present.
func AddTag(tags []task.Tag, tag task.Tag) []task.Tag {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// RemoveTag filters tag out, preserving the order of the remainder.
func RemoveTag(tags []task.Tag, tag task.Tag) []task.Tag {
	out := make([]task.Tag, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
