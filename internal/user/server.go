package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Basantrajshakti/taskboard/pkg/cerr"
)

type Server struct {
	repo Repository
}

func NewServer(repo Repository) *Server {
	return &Server{repo: repo}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/users/names", s.ListUserNames)
}

type ListUserNamesResponse struct {
	Names []string `json:"names"`
}

// ListUserNames returns the display names of all registered users, used to
// populate the assignee picker.
func (s *Server) ListUserNames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := s.repo.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	cerr.SetJSONResponse(ctx, &ListUserNamesResponse{Names: names})
}
