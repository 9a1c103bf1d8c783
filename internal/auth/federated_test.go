package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFederatedVerifyProvisionsOnFirstSight(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	v := NewFederatedVerifier(users)

	outcome, err := v.Verify(ctx, &Profile{
		Provider:      "google",
		Subject:       "sub-1",
		Email:         "new@x.com",
		EmailVerified: true,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, outcome.Status)
	require.NotNil(t, outcome.Principal)
	assert.Equal(t, "new@x.com", outcome.Principal.Email)

	stored, err := users.FindByEmail(ctx, "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, CredentialFederated, stored.Credential.Kind)
	assert.Empty(t, stored.Credential.Hash)
}

func TestFederatedVerifyReusesExistingIdentity(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	v := NewFederatedVerifier(users)
	profile := &Profile{Provider: "google", Subject: "sub-1", Email: "a@x.com"}

	first, err := v.Verify(ctx, profile)
	require.NoError(t, err)
	second, err := v.Verify(ctx, profile)
	require.NoError(t, err)

	assert.Equal(t, first.Principal.ID, second.Principal.ID)
	assert.Equal(t, 1, users.count())
}

func TestFederatedVerifyMatchesLocalIdentity(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	local := &Identity{
		ID:         uuid.NewString(),
		Email:      "a@x.com",
		Credential: Credential{Kind: CredentialLocal, Hash: "$2a$10$stub"},
	}
	require.NoError(t, users.Create(ctx, local))
	v := NewFederatedVerifier(users)

	outcome, err := v.Verify(ctx, &Profile{Provider: "google", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, local.ID, outcome.Principal.ID)
	assert.Equal(t, 1, users.count())
}

// racingUserStore answers not-found on the first lookup and rejects the
// insert, as if a concurrent first login committed in between.
type racingUserStore struct {
	*fakeUserStore
	missedFirstLookup bool
}

func (s *racingUserStore) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	if !s.missedFirstLookup {
		s.missedFirstLookup = true
		return nil, ErrNotFound
	}
	return s.fakeUserStore.FindByEmail(ctx, email)
}

func TestFederatedVerifyLostProvisionRace(t *testing.T) {
	ctx := context.Background()
	inner := newFakeUserStore()
	winner := &Identity{
		ID:         uuid.NewString(),
		Email:      "a@x.com",
		Credential: Credential{Kind: CredentialFederated},
	}
	require.NoError(t, inner.Create(ctx, winner))
	v := NewFederatedVerifier(&racingUserStore{fakeUserStore: inner})

	outcome, err := v.Verify(ctx, &Profile{Provider: "google", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, winner.ID, outcome.Principal.ID)
	assert.Equal(t, 1, inner.count())
}

func TestFederatedVerifyRejectsEmptyProfile(t *testing.T) {
	v := NewFederatedVerifier(newFakeUserStore())

	_, err := v.Verify(context.Background(), nil)
	assert.Error(t, err)

	_, err = v.Verify(context.Background(), &Profile{Provider: "google"})
	assert.Error(t, err)
}
