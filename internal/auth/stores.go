package auth

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by stores when no record exists for the key.
	ErrNotFound = errors.New("auth: record not found")
	// ErrEmailTaken is returned by UserStore.Create when the unique
	// email index rejects the insert.
	ErrEmailTaken = errors.New("auth: email already registered")
)

// UserStore is the credential store for identities. Create must be
// insert-if-absent: a duplicate email surfaces as ErrEmailTaken rather
// than a second row.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	Create(ctx context.Context, identity *Identity) error
}

// OTPRecord is a transient one-time code bound to an email. At most one
// live record exists per email; issuance overwrites.
type OTPRecord struct {
	Email      string
	Code       string
	IdentityID string
}

// OTPStore holds transient one-time codes. A record that is absent is
// expired; there is no separate timestamp-based expiry at this layer.
type OTPStore interface {
	Put(ctx context.Context, rec OTPRecord) error
	Get(ctx context.Context, email string) (*OTPRecord, error)
	// ConsumeIfMatch atomically deletes the record if its code equals
	// the submitted one, returning whether the delete happened. Two
	// concurrent correct submissions cannot both consume.
	ConsumeIfMatch(ctx context.Context, email, code string) (bool, error)
}
