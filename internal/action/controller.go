package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Basantrajshakti/taskboard/internal/formfield"
	"github.com/Basantrajshakti/taskboard/internal/task"
	"github.com/Basantrajshakti/taskboard/pkg/cerr"
)

// RemoteService is the narrow boundary to the server consumed by the
// Controller. Implementations must return the persisted record on success.
type RemoteService interface {
	CreateTask(ctx context.Context, req *task.UpsertTaskRequest) (*task.Task, error)
	UpdateTask(ctx context.Context, id string, req *task.UpsertTaskRequest) (*task.Task, error)
	DeleteTask(ctx context.Context, id string) (*task.DeleteTaskResponse, error)
}

// Notifier surfaces one-shot success/error notifications to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// FormData is the raw dialog form state before normalization. Deadline is the
// date string from the form control; Assignees is the comma-joined multi-value
// encoding.
type FormData struct {
	Title       string
	Description string
	Deadline    string
	Priority    task.Priority
	Status      task.Status
	Tags        []task.Tag
	Assignees   string
}

// Controller is the single authority for the create/edit/view/delete flows:
// it owns the action state, performs the remote call for submit/confirm, and
// reconciles the list store only after a confirmed result.
type Controller struct {
	state      Action
	store      *ListStore
	svc        RemoteService
	notifier   Notifier
	submitting bool
}

func NewController(store *ListStore, svc RemoteService, notifier Notifier) *Controller {
	return &Controller{
		store:    store,
		svc:      svc,
		notifier: notifier,
	}
}

func (c *Controller) Action() Action {
	return c.state
}

func (c *Controller) Store() *ListStore {
	return c.store
}

// UpsertDialogOpen reports whether the shared create/edit/view dialog should
// be visible; delete uses the separate confirmation dialog.
func (c *Controller) UpsertDialogOpen() bool {
	switch c.state.Mode {
	case ModeCreate, ModeEdit, ModeView:
		return true
	}
	return false
}

func (c *Controller) DeleteDialogOpen() bool {
	return c.state.Mode == ModeDelete
}

// BeginAction opens the given flow. edit/view/delete require taskID to exist
// in the list store; create requires no taskID. Starting a new action while
// one is open is rejected.
func (c *Controller) BeginAction(mode Mode, taskID string) error {
	if !c.state.IsNone() {
		return fmt.Errorf("action %q already in progress", c.state.Mode)
	}
	switch mode {
	case ModeCreate:
		if taskID != "" {
			return errors.New("create action takes no task id")
		}
	case ModeEdit, ModeView, ModeDelete:
		if !c.store.Contains(taskID) {
			return fmt.Errorf("task %q not in list", taskID)
		}
	default:
		return fmt.Errorf("unknown action mode %q", mode)
	}
	c.state = Action{Mode: mode, TaskID: taskID}
	return nil
}

// ClearAction resets to the no-op state. Idempotent; called on dialog
// dismissal, successful submit, or cancelled delete confirmation.
func (c *Controller) ClearAction() {
	c.state = Action{}
}

// SubmitUpsert normalizes the form and performs the create or update call
// depending on the open action. On success the store is reconciled, a success
// notification is shown and the action is cleared. On failure exactly one
// error notification is shown and the action is left open for retry.
func (c *Controller) SubmitUpsert(ctx context.Context, form FormData) error {
	mode := c.state.Mode
	if mode != ModeCreate && mode != ModeEdit {
		return fmt.Errorf("submit is not valid in mode %q", mode)
	}
	if c.submitting {
		return errors.New("a submission is already in flight")
	}

	req, err := normalizeForm(form)
	if err != nil {
		c.notifier.Error(displayMessage(err, upsertFallback(mode)))
		return err
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	var result *task.Task
	if mode == ModeCreate {
		result, err = c.svc.CreateTask(ctx, req)
	} else {
		result, err = c.svc.UpdateTask(ctx, c.state.TaskID, req)
	}
	if err == nil && (result == nil || result.ID == "") {
		// The transport reported success but the record is unusable; treat it
		// as a failure rather than corrupting the list.
		err = cerr.NewError(cerr.Unknown, upsertFallback(mode), nil)
	}
	if err != nil {
		c.notifier.Error(displayMessage(err, upsertFallback(mode)))
		return err
	}

	if mode == ModeCreate {
		c.store.Append(*result)
		c.notifier.Success("Task created successfully!")
	} else {
		c.store.Replace(*result)
		c.notifier.Success("Task updated successfully!")
	}
	c.ClearAction()
	return nil
}

// ConfirmDelete performs the delete call for the task held by the open delete
// action. On success the entry is removed from the store; on failure the
// action stays open so the user can retry or cancel.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	if c.state.Mode != ModeDelete {
		return fmt.Errorf("delete confirmation is not valid in mode %q", c.state.Mode)
	}
	if c.submitting {
		return errors.New("a submission is already in flight")
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	result, err := c.svc.DeleteTask(ctx, c.state.TaskID)
	if err == nil && (result == nil || result.ID == "") {
		err = cerr.NewError(cerr.Unknown, deleteFallback, nil)
	}
	if err != nil {
		c.notifier.Error(displayMessage(err, deleteFallback))
		return err
	}

	c.store.Remove(result.ID)
	c.notifier.Success("Task deleted successfully!")
	c.ClearAction()
	return nil
}

const deleteFallback = "Failed to delete task. Please try again."

func upsertFallback(mode Mode) string {
	if mode == ModeEdit {
		return "Failed to update task. Please try again."
	}
	return "Failed to create task. Please try again."
}

// displayMessage converts a failure into the one-shot notification text,
// falling back to a generic message when the error carries none.
func displayMessage(err error, fallback string) string {
	var cErr *cerr.Error
	if errors.As(err, &cErr) && cErr.Msg != "" {
		return cErr.Msg
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}

// normalizeForm converts the raw dialog state into the transport request:
// the assignee string is split on commas, the deadline date string becomes a
// timestamp or stays absent, tags pass through already deduplicated.
func normalizeForm(form FormData) (*task.UpsertTaskRequest, error) {
	if strings.TrimSpace(form.Title) == "" {
		return nil, cerr.NewError(cerr.InvalidArgument, "Title is required", nil)
	}
	if !form.Priority.Valid() {
		return nil, cerr.NewError(cerr.InvalidArgument, "unrecognized priority", nil)
	}
	if !form.Status.Valid() {
		return nil, cerr.NewError(cerr.InvalidArgument, "unrecognized status", nil)
	}
	req := &task.UpsertTaskRequest{
		Title:       form.Title,
		Description: form.Description,
		Priority:    form.Priority,
		Status:      form.Status,
		Tags:        form.Tags,
		Assignees:   formfield.SplitAssignees(form.Assignees),
	}
	if req.Tags == nil {
		req.Tags = []task.Tag{}
	}
	if form.Deadline != "" {
		deadline, err := parseDeadline(form.Deadline)
		if err != nil {
			return nil, cerr.NewError(cerr.InvalidArgument, "Invalid date format", err)
		}
		req.Deadline = &deadline
	}
	return req, nil
}

func parseDeadline(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}
