package repositoryimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Basantrajshakti/taskboard/internal/task"
	"github.com/Basantrajshakti/taskboard/pkg/cerr"
	"github.com/Basantrajshakti/taskboard/pkg/storage"
)

func newTestRepository(t *testing.T) *YAMLRepository {
	t.Helper()
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewYAMLRepository(s)
}

func sampleTask(id, title string) *task.Task {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &task.Task{
		ID:          id,
		Title:       title,
		Description: "desc",
		Priority:    task.PriorityMedium,
		Status:      task.StatusTodo,
		Tags:        []task.Tag{task.TagFeature},
		Assignees:   []string{"Alice"},
		CreatedBy:   task.Creator{ID: "u1", Name: "Alice"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestYAMLRepositoryCreateGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := sampleTask("01ARZ3NDEKTSV4RRFFQ69G5FAV", "write docs")
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.Get(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	// a second create for the same id is rejected
	err = repo.Create(ctx, in)
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, cerr.AlreadyExists, cErr.Code)
}

func TestYAMLRepositoryGetNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, cerr.NotFound, cErr.Code)
}

func TestYAMLRepositoryListOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// ULIDs assigned out of insertion order; List sorts by file name
	ids := []string{
		"01ARZ3NDEKTSV4RRFFQ69G5FAV",
		"01BX5ZZKBKACTAV9WEVGEMMVRZ",
		"01BX5ZZKBKACTAV9WEVGEMMVS0",
	}
	for _, id := range []string{ids[2], ids[0], ids[1]} {
		require.NoError(t, repo.Create(ctx, sampleTask(id, "t-"+id)))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, want := range ids {
		assert.Equal(t, want, all[i].ID)
	}
}

func TestYAMLRepositoryUpdate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := sampleTask("01ARZ3NDEKTSV4RRFFQ69G5FAV", "before")
	require.NoError(t, repo.Create(ctx, in))

	in.Title = "after"
	in.Status = task.StatusDone
	require.NoError(t, repo.Update(ctx, in))

	got, err := repo.Get(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, task.StatusDone, got.Status)
}

func TestYAMLRepositoryUpdateMissing(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Update(context.Background(), sampleTask("missing", "x"))
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, cerr.NotFound, cErr.Code)
	assert.Equal(t, "Task not found", cErr.Msg)
}

func TestYAMLRepositoryDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := sampleTask("01ARZ3NDEKTSV4RRFFQ69G5FAV", "x")
	require.NoError(t, repo.Create(ctx, in))
	require.NoError(t, repo.Delete(ctx, in.ID))

	_, err := repo.Get(ctx, in.ID)
	require.Error(t, err)

	err = repo.Delete(ctx, in.ID)
	var cErr *cerr.Error
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, cerr.NotFound, cErr.Code)
}
