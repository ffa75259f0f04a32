package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Basantrajshakti/taskboard/internal/user"
	"github.com/Basantrajshakti/taskboard/internal/user/repositoryimpl"
	"github.com/Basantrajshakti/taskboard/pkg/cerr"
	"github.com/Basantrajshakti/taskboard/pkg/storage"
)

func TestListUserNames(t *testing.T) {
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := repositoryimpl.NewYAMLRepository(s)

	ctx := context.Background()
	for i, name := range []string{"Alice", "Bob"} {
		require.NoError(t, repo.Create(ctx, &user.User{
			ID:        string(rune('a' + i)),
			Name:      name,
			Email:     name + "@example.com",
			CreatedAt: time.Now(),
		}))
	}

	r := chi.NewRouter()
	r.Use(cerr.NewJSONResponseChiMiddleware())
	user.NewServer(repo).RegisterRoutes(r)
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/users/names")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body user.ListUserNamesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.ElementsMatch(t, []string{"Alice", "Bob"}, body.Names)
}

func TestGetByEmail(t *testing.T) {
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := repositoryimpl.NewYAMLRepository(s)

	ctx := context.Background()
	in := &user.User{ID: "u1", Name: "Alice", Email: "alice@example.com", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, cerr.NotFound, cErr.Code)
}
