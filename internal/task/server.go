package task

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/Basantrajshakti/taskboard/internal/auth"
	"github.com/Basantrajshakti/taskboard/internal/eventbus"
	"github.com/Basantrajshakti/taskboard/pkg/cerr"
)

// Server exposes the task CRUD operations as JSON handlers. Handlers report
// results through cerr.SetJSONResponse/SetJSONError; the router middleware
// renders the body.
type Server struct {
	repo     Repository
	eventBus *eventbus.Bus
}

func NewServer(repo Repository, eventBus *eventbus.Bus) *Server {
	return &Server{
		repo:     repo,
		eventBus: eventBus,
	}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/tasks", s.ListTasks)
	r.Post("/tasks", s.CreateTask)
	r.Put("/tasks/{id}", s.UpdateTask)
	r.Delete("/tasks/{id}", s.DeleteTask)
}

type UpsertTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	Tags        []Tag      `json:"tags"`
	Assignees   []string   `json:"assignees"`
}

type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

type TaskResponse struct {
	Task *Task `json:"task"`
}

type DeleteTaskResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := s.repo.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	for _, t := range tasks {
		t.Normalize()
	}
	if tasks == nil {
		tasks = []*Task{}
	}
	cerr.SetJSONResponse(ctx, &ListTasksResponse{Tasks: tasks})
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpsertTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if err := validateUpsert(&req); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	user, ok := auth.UserFromContext(ctx)
	if !ok {
		cerr.SetNewJSONError(ctx, cerr.Unauthenticated, "authentication required", nil)
		return
	}

	now := time.Now()
	t := &Task{
		ID:          ulid.Make().String(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		Status:      req.Status,
		Tags:        req.Tags,
		Assignees:   req.Assignees,
		CreatedBy:   Creator{ID: user.ID, Name: user.Name},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.Normalize()

	if err := s.repo.Create(ctx, t); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	s.eventBus.PublishNew(eventbus.EventTypeTaskCreated, t.ID, map[string]string{
		"title":      t.Title,
		"created_by": t.CreatedBy.Name,
	})

	cerr.SetJSONResponse(ctx, &TaskResponse{Task: t})
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req UpsertTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if err := validateUpsert(&req); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	if t.Description != req.Description {
		diff, diffErr := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(t.Description),
			B:        difflib.SplitLines(req.Description),
			FromFile: "before",
			ToFile:   "after",
			Context:  1,
		})
		if diffErr == nil {
			slog.DebugContext(ctx, "task description changed", "task_id", id, "diff", diff)
		}
	}

	// Replace the editable fields wholesale; identity and provenance stay.
	t.Title = strings.TrimSpace(req.Title)
	t.Description = req.Description
	t.Deadline = req.Deadline
	t.Priority = req.Priority
	t.Status = req.Status
	t.Tags = req.Tags
	t.Assignees = req.Assignees
	t.UpdatedAt = time.Now()
	t.Normalize()

	if err := s.repo.Update(ctx, t); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	s.eventBus.PublishNew(eventbus.EventTypeTaskUpdated, t.ID, map[string]string{
		"title": t.Title,
	})

	cerr.SetJSONResponse(ctx, &TaskResponse{Task: t})
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	// Fetch first so a missing id is reported as not found, and the title is
	// available for the event.
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	s.eventBus.PublishNew(eventbus.EventTypeTaskDeleted, id, map[string]string{
		"title": t.Title,
	})

	cerr.SetJSONResponse(ctx, &DeleteTaskResponse{
		ID:      id,
		Message: "Task deleted successfully!",
	})
}

func validateUpsert(req *UpsertTaskRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return cerr.NewError(cerr.InvalidArgument, "Title is required", nil)
	}
	if !req.Priority.Valid() {
		return cerr.NewError(cerr.InvalidArgument, "unrecognized priority", nil)
	}
	if !req.Status.Valid() {
		return cerr.NewError(cerr.InvalidArgument, "unrecognized status", nil)
	}
	for _, tag := range req.Tags {
		if !tag.Valid() {
			return cerr.NewError(cerr.InvalidArgument, "unrecognized tag", nil)
		}
	}
	return nil
}
