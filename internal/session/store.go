package session

import (
	"context"
	"time"
)

// Session binds a client-presented token to an authenticated identity.
// It carries only the public projection of the identity (id + email),
// never the credential hash.
type Session struct {
	SessionID string    // unique session identifier
	UserID    string    // references users.id
	Email     string    // identity email at login time
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
