package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth/credentials"
)

// PasswordVerifier checks a submitted email/password pair against the
// credential store.
type PasswordVerifier struct {
	users UserStore
}

func NewPasswordVerifier(users UserStore) *PasswordVerifier {
	return &PasswordVerifier{users: users}
}

func (v *PasswordVerifier) Verify(ctx context.Context, email, password string) (Outcome, error) {
	identity, err := v.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Outcome{Status: StatusNoSuchUser}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("password verify: lookup: %w", err)
	}

	// A federated identity has no local password, so any submitted
	// password fails the same way a wrong one does.
	if identity.Credential.Kind != CredentialLocal {
		return Outcome{Status: StatusBadPassword}, nil
	}

	ok, err := credentials.Verify(identity.Credential.Hash, password)
	if err != nil {
		return Outcome{}, fmt.Errorf("password verify: %w", err)
	}
	if !ok {
		return Outcome{Status: StatusBadPassword}, nil
	}

	return Outcome{Status: StatusSuccess, Principal: identity.Principal()}, nil
}
