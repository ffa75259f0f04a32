package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/Basantrajshakti/taskboard/internal/user"
	"github.com/Basantrajshakti/taskboard/pkg/cerr"
)

// Server exposes credential sign-up/sign-in and session inspection.
type Server struct {
	users    user.Repository
	sessions *SessionStore
}

func NewServer(users user.Repository, sessions *SessionStore) *Server {
	return &Server{
		users:    users,
		sessions: sessions,
	}
}

// RegisterPublicRoutes mounts the routes reachable without a session.
func (s *Server) RegisterPublicRoutes(r chi.Router) {
	r.Post("/auth/signup", s.SignUp)
	r.Post("/auth/signin", s.SignIn)
}

// RegisterProtectedRoutes mounts the routes behind the session middleware.
func (s *Server) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/auth/signout", s.SignOut)
	r.Get("/auth/session", s.Session)
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token string   `json:"token,omitempty"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if err := validateSignUp(&req); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		cerr.SetNewJSONError(ctx, cerr.AlreadyExists, "User already exists! Please signin", nil)
		return
	} else if !cerr.IsCode(err, cerr.NotFound) {
		cerr.SetJSONError(ctx, err)
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		cerr.SetNewJSONError(ctx, cerr.Internal, "server error", err)
		return
	}

	u := &user.User{
		ID:           ulid.Make().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	s.respondWithSession(w, ctx, u)
}

func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Email == "" || req.Password == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "Email and password are required", nil)
		return
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if cerr.IsCode(err, cerr.NotFound) {
			cerr.SetNewJSONError(ctx, cerr.NotFound, "User not found! Please signup", nil)
			return
		}
		cerr.SetJSONError(ctx, err)
		return
	}
	if !VerifyPassword(req.Password, u.PasswordHash) {
		cerr.SetNewJSONError(ctx, cerr.Unauthenticated, "Invalid credentials!", nil)
		return
	}

	s.respondWithSession(w, ctx, u)
}

func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if token := TokenFromRequest(r); token != "" {
		s.sessions.Revoke(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	cerr.SetJSONResponse(ctx, map[string]bool{"ok": true})
}

func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := UserFromContext(ctx)
	if !ok {
		cerr.SetNewJSONError(ctx, cerr.Unauthenticated, "authentication required", nil)
		return
	}
	cerr.SetJSONResponse(ctx, &SessionResponse{
		User: UserInfo{ID: identity.ID, Name: identity.Name, Email: identity.Email},
	})
}

func (s *Server) respondWithSession(w http.ResponseWriter, ctx context.Context, u *user.User) {
	token := s.sessions.Issue(Identity{ID: u.ID, Name: u.Name, Email: u.Email})
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	cerr.SetJSONResponse(ctx, &SessionResponse{
		Token: token,
		User:  UserInfo{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}

func validateSignUp(req *SignUpRequest) error {
	if len(strings.TrimSpace(req.Name)) < 3 {
		return cerr.NewError(cerr.InvalidArgument, "Name is required", nil)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return cerr.NewError(cerr.InvalidArgument, "Invalid email address", err)
	}
	if len(req.Password) < 6 {
		return cerr.NewError(cerr.InvalidArgument, "Password is required", nil)
	}
	return nil
}
