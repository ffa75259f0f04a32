package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Basantrajshakti/taskboard/internal/task"
	"github.com/Basantrajshakti/taskboard/pkg/cerr"
)

func TestListTasks(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/tasks", r.URL.Path)
		_ = json.NewEncoder(w).Encode(task.ListTasksResponse{
			Tasks: []*task.Task{{ID: "1", Title: "a"}},
		})
	}))
	defer ts.Close()

	c := New(ts.URL, WithToken("tok123"))
	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestErrorBodyDecodedToCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"not_found","message":"Task not found"}`))
	}))
	defer ts.Close()

	c := New(ts.URL)
	_, err := c.UpdateTask(context.Background(), "missing", &task.UpsertTaskRequest{Title: "x"})
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, cerr.NotFound, cErr.Code)
	assert.Equal(t, "Task not found", cErr.Msg)
}

func TestErrorWithoutBodyFallsBackToStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := New(ts.URL)
	_, err := c.ListTasks(context.Background())
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, cerr.Unavailable, cErr.Code)
}

func TestUnreachableServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	c := New(ts.URL)
	_, err := c.ListTasks(context.Background())
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, cerr.Unavailable, cErr.Code)
	assert.Equal(t, "failed to reach server", cErr.Msg)
}

func TestMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	c := New(ts.URL)
	_, err := c.ListTasks(context.Background())
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, cerr.Unknown, cErr.Code)
}

func TestSignInStoresToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/signin":
			_, _ = w.Write([]byte(`{"token":"tok456","user":{"id":"u1","name":"Alice","email":"alice@example.com"}}`))
		case "/api/tasks":
			assert.Equal(t, "Bearer tok456", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"tasks":[]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	c := New(ts.URL)
	session, err := c.SignIn(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok456", session.Token)

	// subsequent calls carry the stored token
	_, err = c.ListTasks(context.Background())
	require.NoError(t, err)
}
