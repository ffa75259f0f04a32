package internal

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Basantrajshakti/taskboard/internal/auth"
	"github.com/Basantrajshakti/taskboard/internal/config"
	"github.com/Basantrajshakti/taskboard/internal/pushnotification"
	"github.com/Basantrajshakti/taskboard/internal/task"
	"github.com/Basantrajshakti/taskboard/internal/user"
	"github.com/Basantrajshakti/taskboard/pkg/cerr"
	"github.com/Basantrajshakti/taskboard/pkg/clog"
)

type Server struct {
	server     *http.Server
	env        *config.Env
	sessions   *auth.SessionStore
	authServer *auth.Server
	taskServer *task.Server
	userServer *user.Server
	pushServer *pushnotification.Server
}

func NewServer(
	env *config.Env,
	sessions *auth.SessionStore,
	authServer *auth.Server,
	taskServer *task.Server,
	userServer *user.Server,
	pushServer *pushnotification.Server,
) *Server {
	return &Server{
		env:        env,
		sessions:   sessions,
		authServer: authServer,
		taskServer: taskServer,
		userServer: userServer,
		pushServer: pushServer,
	}
}

// ListenAndServe starts the HTTP server. The provided context is used as the
// base context for all incoming requests via http.Server.BaseContext, so
// cancelling it (e.g. on shutdown signal) also cancels in-flight handlers.
func (s *Server) ListenAndServe(ctx context.Context) error {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(
			clog.SlogChiMiddleware(),
			cerr.NewJSONResponseChiMiddleware(),
		)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			cerr.SetNewJSONError(r.Context(), cerr.NotFound, "not found", nil)
		})

		s.authServer.RegisterPublicRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(s.sessions.Middleware())
			s.authServer.RegisterProtectedRoutes(r)
			s.taskServer.RegisterRoutes(r)
			s.userServer.RegisterRoutes(r)
			s.pushServer.RegisterRoutes(r)
		})
	})

	mux := http.NewServeMux()
	mux.Handle("/health", &HealthChecker{})
	mux.Handle("/api/", r)

	addr := net.JoinHostPort(s.env.HTTPHost, s.env.HTTPPort)
	slog.Info("starting server", "addr", addr)

	s.server = &http.Server{
		Addr: addr,
		Handler: h2c.NewHandler(cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}).Handler(mux), &http2.Server{}),
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type HealthChecker struct{}

func (hc *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
