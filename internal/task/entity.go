package task

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Status string

const (
	StatusTodo    Status = "TODO"
	StatusDone    Status = "DONE"
	StatusPending Status = "PENDING"
	StatusOngoing Status = "ONGOING"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDone, StatusPending, StatusOngoing:
		return true
	}
	return false
}

type Tag string

const (
	TagDevelopment Tag = "DEVELOPMENT"
	TagDesign      Tag = "DESIGN"
	TagTesting     Tag = "TESTING"
	TagReview      Tag = "REVIEW"
	TagBug         Tag = "BUG"
	TagFeature     Tag = "FEATURE"
)

func (t Tag) Valid() bool {
	switch t {
	case TagDevelopment, TagDesign, TagTesting, TagReview, TagBug, TagFeature:
		return true
	}
	return false
}

// Creator is the denormalized creating user carried on each task.
type Creator struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

type Task struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Deadline    *time.Time `yaml:"deadline,omitempty" json:"deadline,omitempty"`
	Priority    Priority   `yaml:"priority" json:"priority"`
	Status      Status     `yaml:"status" json:"status"`
	Tags        []Tag      `yaml:"tags" json:"tags"`
	Assignees   []string   `yaml:"assignees" json:"assignees"`
	CreatedBy   Creator    `yaml:"created_by" json:"createdBy"`
	CreatedAt   time.Time  `yaml:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `yaml:"updated_at" json:"updatedAt"`
}

// Normalize deduplicates tags and assignees keeping first occurrence order,
// and replaces nil collections with empty slices so they serialize as [] and
// never as null.
func (t *Task) Normalize() {
	tags := make([]Tag, 0, len(t.Tags))
	seenTags := make(map[Tag]struct{}, len(t.Tags))
	for _, tag := range t.Tags {
		if _, ok := seenTags[tag]; ok {
			continue
		}
		seenTags[tag] = struct{}{}
		tags = append(tags, tag)
	}
	t.Tags = tags

	assignees := make([]string, 0, len(t.Assignees))
	seen := make(map[string]struct{}, len(t.Assignees))
	for _, a := range t.Assignees {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		assignees = append(assignees, a)
	}
	t.Assignees = assignees
}
