package pushnotification

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/Basantrajshakti/taskboard/internal/config"
	"github.com/Basantrajshakti/taskboard/internal/pushsubscription"
	"github.com/Basantrajshakti/taskboard/pkg/cerr"
)

type Server struct {
	vapidEnv *config.VAPIDEnv
	repo     pushsubscription.Repository
}

func NewServer(vapidEnv *config.VAPIDEnv, repo pushsubscription.Repository) *Server {
	return &Server{
		vapidEnv: vapidEnv,
		repo:     repo,
	}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/push/vapid-key", s.GetVapidPublicKey)
	r.Post("/push/subscriptions", s.RegisterSubscription)
}

type VapidPublicKeyResponse struct {
	PublicKey string `json:"publicKey"`
}

type RegisterSubscriptionRequest struct {
	Endpoint  string `json:"endpoint"`
	P256dhKey string `json:"p256dhKey"`
	AuthKey   string `json:"authKey"`
}

type RegisterSubscriptionResponse struct {
	ID string `json:"id"`
}

func (s *Server) GetVapidPublicKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s.vapidEnv.VAPIDPublicKey == "" {
		cerr.SetNewJSONError(ctx, cerr.FailedPrecondition, "VAPID keys not configured", nil)
		return
	}
	cerr.SetJSONResponse(ctx, &VapidPublicKeyResponse{PublicKey: s.vapidEnv.VAPIDPublicKey})
}

func (s *Server) RegisterSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Endpoint == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "endpoint is required", nil)
		return
	}
	if req.P256dhKey == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "p256dhKey is required", nil)
		return
	}
	if req.AuthKey == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "authKey is required", nil)
		return
	}

	// Idempotent for a given endpoint: re-registering replaces the old entry.
	existing, err := s.repo.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	for _, sub := range existing {
		if sub.Endpoint == req.Endpoint {
			if err := s.repo.Delete(ctx, sub.ID); err != nil {
				cerr.SetJSONError(ctx, err)
				return
			}
		}
	}

	sub := &pushsubscription.Subscription{
		ID:        ulid.Make().String(),
		Endpoint:  req.Endpoint,
		P256dhKey: req.P256dhKey,
		AuthKey:   req.AuthKey,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, &RegisterSubscriptionResponse{ID: sub.ID})
}
