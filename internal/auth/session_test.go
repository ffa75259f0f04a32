package auth

import (
	"net/http"
	"testing"
	"time"
)

func TestSessionStoreIssueGet(t *testing.T) {
	store := NewSessionStore(time.Hour)
	identity := Identity{ID: "u1", Name: "Alice", Email: "alice@example.com"}

	token := store.Issue(identity)
	if token == "" {
		t.Fatal("Issue returned an empty token")
	}
	got, ok := store.Get(token)
	if !ok || got != identity {
		t.Fatalf("Get(token) = %+v, %v; want %+v, true", got, ok, identity)
	}
	if _, ok := store.Get("bogus"); ok {
		t.Fatal("Get(bogus) = true, want false")
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(-time.Minute) // already expired at issue
	token := store.Issue(Identity{ID: "u1"})
	if _, ok := store.Get(token); ok {
		t.Fatal("Get returned an expired session")
	}
}

func TestSessionStoreRevoke(t *testing.T) {
	store := NewSessionStore(time.Hour)
	token := store.Issue(Identity{ID: "u1"})
	store.Revoke(token)
	if _, ok := store.Get(token); ok {
		t.Fatal("Get returned a revoked session")
	}
	store.Revoke(token) // second revoke is a no-op
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  string
	}{
		{
			name:  "bearer header",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok123") },
			want:  "tok123",
		},
		{
			name:  "bare header",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "tok123") },
			want:  "tok123",
		},
		{
			name:  "cookie",
			setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok456"}) },
			want:  "tok456",
		},
		{
			name: "header wins over cookie",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer tok123")
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok456"})
			},
			want: "tok123",
		},
		{
			name:  "absent",
			setup: func(r *http.Request) {},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodGet, "http://example.com/", nil)
			if err != nil {
				t.Fatal(err)
			}
			tt.setup(r)
			if got := TokenFromRequest(r); got != tt.want {
				t.Errorf("TokenFromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals the plaintext password")
	}
	if !VerifyPassword("secret123", hash) {
		t.Fatal("VerifyPassword rejected the correct password")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatal("VerifyPassword accepted a wrong password")
	}
}
