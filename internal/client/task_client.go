package client

import (
	"context"
	"net/http"

	"github.com/Basantrajshakti/taskboard/internal/task"
	"github.com/Basantrajshakti/taskboard/internal/user"
)

// ListTasks fetches the full task list with creator info.
func (c *Client) ListTasks(ctx context.Context) ([]*task.Task, error) {
	var resp task.ListTasksResponse
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// ListUserNames fetches the display names of all registered users.
func (c *Client) ListUserNames(ctx context.Context) ([]string, error) {
	var resp user.ListUserNamesResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/names", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Names, nil
}

func (c *Client) CreateTask(ctx context.Context, req *task.UpsertTaskRequest) (*task.Task, error) {
	var resp task.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/api/tasks", req, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, req *task.UpsertTaskRequest) (*task.Task, error) {
	var resp task.TaskResponse
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) (*task.DeleteTaskResponse, error) {
	var resp task.DeleteTaskResponse
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
