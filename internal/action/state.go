package action

// Mode identifies the user intent currently in flight against the task list.
type Mode string

const (
	ModeNone   Mode = ""
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
	ModeDelete Mode = "delete"
)

// Action is the single in-flight operation: a mode plus, for edit/view/delete,
// the id of the task it targets. The zero value means no operation is open.
type Action struct {
	Mode   Mode
	TaskID string
}

// RequiresTask reports whether the mode targets an existing task.
func (m Mode) RequiresTask() bool {
	return m == ModeEdit || m == ModeView || m == ModeDelete
}

func (a Action) IsNone() bool {
	return a.Mode == ModeNone
}
