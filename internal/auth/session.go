package auth

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Basantrajshakti/taskboard/pkg/cerr"
)

// SessionCookie is the cookie name used by browser clients; CLI and API
// clients send the token as a bearer Authorization header instead.
const SessionCookie = "taskboard_session"

// Identity is the authenticated user attached to the request context.
type Identity struct {
	ID    string
	Name  string
	Email string
}

type session struct {
	identity  Identity
	expiresAt time.Time
}

// SessionStore keeps sessions in memory. Sessions do not survive a server
// restart; users sign in again.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session),
		ttl:      ttl,
	}
}

// Issue creates a session for the identity and returns its token.
func (s *SessionStore) Issue(identity Identity) string {
	token := ulid.Make().String()
	s.mu.Lock()
	s.sessions[token] = session{
		identity:  identity,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

// Get resolves a token to its identity. Expired sessions are dropped.
func (s *SessionStore) Get(token string) (Identity, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Identity{}, false
	}
	if time.Now().After(sess.expiresAt) {
		s.Revoke(token)
		return Identity{}, false
	}
	return sess.identity, true
}

func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

type identityKey struct{}

func ContextWithUser(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func UserFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

// TokenFromRequest extracts the session token from the Authorization header
// (Bearer scheme) or the session cookie.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimPrefix(h, "Bearer ")
		}
		return h
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// Middleware rejects requests without a valid session. Protected operations
// fail with an auth error rather than returning empty results.
func (s *SessionStore) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				cerr.SetNewJSONError(r.Context(), cerr.Unauthenticated, "authentication required", nil)
				return
			}
			identity, ok := s.Get(token)
			if !ok {
				cerr.SetNewJSONError(r.Context(), cerr.Unauthenticated, "session expired or invalid", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), identity)))
		})
	}
}
