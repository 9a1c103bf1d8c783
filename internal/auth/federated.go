package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// FederatedVerifier exchanges a provider-asserted profile for a local
// identity, provisioning one on first sight. The assertion itself is
// trusted; there is no "invalid" outcome, only store faults.
type FederatedVerifier struct {
	users UserStore
}

func NewFederatedVerifier(users UserStore) *FederatedVerifier {
	return &FederatedVerifier{users: users}
}

func (v *FederatedVerifier) Verify(ctx context.Context, profile *Profile) (Outcome, error) {
	if profile == nil || profile.Email == "" {
		return Outcome{}, errors.New("federated verify: profile missing email")
	}

	identity, err := v.users.FindByEmail(ctx, profile.Email)
	if err == nil {
		return Outcome{Status: StatusSuccess, Principal: identity.Principal()}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Outcome{}, fmt.Errorf("federated verify: lookup: %w", err)
	}

	identity = &Identity{
		ID:         uuid.NewString(),
		Email:      profile.Email,
		Credential: Credential{Kind: CredentialFederated},
	}

	err = v.users.Create(ctx, identity)
	if errors.Is(err, ErrEmailTaken) {
		// Lost a first-login race; the winner's row is ours to use.
		identity, err = v.users.FindByEmail(ctx, profile.Email)
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("federated verify: provision: %w", err)
	}

	return Outcome{Status: StatusSuccess, Principal: identity.Principal()}, nil
}
