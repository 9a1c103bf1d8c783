package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth/credentials"
	"github.com/google/uuid"
)

// Orchestrator dispatches an inbound login attempt to exactly one
// verifier and owns registration. Which method runs is decided by the
// transport endpoint that received the request, not by runtime dispatch.
type Orchestrator struct {
	users     UserStore
	password  *PasswordVerifier
	federated *FederatedVerifier
	otp       *OTPVerifier
}

func NewOrchestrator(users UserStore, otps OTPStore) *Orchestrator {
	return &Orchestrator{
		users:     users,
		password:  NewPasswordVerifier(users),
		federated: NewFederatedVerifier(users),
		otp:       NewOTPVerifier(otps),
	}
}

func (o *Orchestrator) LoginWithPassword(ctx context.Context, email, password string) (Outcome, error) {
	return o.password.Verify(ctx, email, password)
}

func (o *Orchestrator) LoginWithFederatedProfile(ctx context.Context, profile *Profile) (Outcome, error) {
	return o.federated.Verify(ctx, profile)
}

func (o *Orchestrator) LoginWithOTP(ctx context.Context, email, code string) (Outcome, error) {
	return o.otp.Verify(ctx, email, code)
}

// Register creates a local identity and, on success, returns a Success
// outcome so the caller can establish a session immediately.
// Registration and login are fused, not separate steps.
func (o *Orchestrator) Register(ctx context.Context, email, password string) (Outcome, error) {
	_, err := o.users.FindByEmail(ctx, email)
	if err == nil {
		return Outcome{Status: StatusAlreadyExists}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Outcome{}, fmt.Errorf("register: lookup: %w", err)
	}

	hash, err := credentials.Hash(password)
	if err != nil {
		return Outcome{}, fmt.Errorf("register: %w", err)
	}

	identity := &Identity{
		ID:         uuid.NewString(),
		Email:      email,
		Credential: Credential{Kind: CredentialLocal, Hash: hash},
	}

	if err := o.users.Create(ctx, identity); err != nil {
		// The unique index is the real uniqueness check; the lookup
		// above only avoids hashing work in the common case.
		if errors.Is(err, ErrEmailTaken) {
			return Outcome{Status: StatusAlreadyExists}, nil
		}
		return Outcome{}, fmt.Errorf("register: insert: %w", err)
	}

	return Outcome{Status: StatusSuccess, Principal: identity.Principal()}, nil
}
