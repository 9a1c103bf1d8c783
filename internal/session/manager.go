package session

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Manager owns the session lifecycle: Anonymous -> Authenticated on
// Establish, Authenticated -> Anonymous on Destroy. An established
// session is never re-validated against the credential store.
type Manager struct {
	store Store
	ttl   time.Duration
	opts  CookieOptions
}

func NewManager(store Store, ttl time.Duration, opts CookieOptions) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
		opts:  opts,
	}
}

// Establish creates a server-side session for the identity projection
// and issues the cookie. Must only be called after a successful
// verification.
func (m *Manager) Establish(ctx context.Context, w http.ResponseWriter, userID, email string) error {
	sessionID, err := GenerateID()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(m.ttl)

	err = m.store.Create(ctx, Session{
		SessionID: sessionID,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return fmt.Errorf("session: establish: %w", err)
	}

	SetCookie(w, sessionID, expiresAt, m.opts)
	return nil
}

// Current resolves the request's session. (nil, nil) means Anonymous:
// no cookie, unknown token, or an expired record (which is deleted
// best-effort on sight).
func (m *Manager) Current(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	sess, err := m.store.Get(ctx, cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("session: load: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = m.store.Delete(ctx, sess.SessionID)
		return nil, nil
	}

	return sess, nil
}

// Destroy tears down the request's session and clears the cookie.
// A store fault is returned, not swallowed; destroying while Anonymous
// is a no-op beyond clearing the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		if err := m.store.Delete(ctx, cookie.Value); err != nil {
			return fmt.Errorf("session: logout: %w", err)
		}
	}

	ClearCookie(w, m.opts)
	return nil
}
