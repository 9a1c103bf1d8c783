package auth

import (
	"context"
	"testing"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth/credentials"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerLocalUser(t *testing.T, users *fakeUserStore, email, password string) *Identity {
	t.Helper()
	hash, err := credentials.Hash(password)
	require.NoError(t, err)
	identity := &Identity{
		ID:         uuid.NewString(),
		Email:      email,
		Credential: Credential{Kind: CredentialLocal, Hash: hash},
	}
	require.NoError(t, users.Create(context.Background(), identity))
	return identity
}

func TestPasswordVerifyUnknownEmail(t *testing.T) {
	users := newFakeUserStore()
	v := NewPasswordVerifier(users)

	for _, email := range []string{"nobody@x.com", "", "a@x.com"} {
		outcome, err := v.Verify(context.Background(), email, "anything")
		require.NoError(t, err)
		assert.Equal(t, StatusNoSuchUser, outcome.Status)
		assert.Nil(t, outcome.Principal)
	}
}

func TestPasswordVerifyCorrectPassword(t *testing.T) {
	users := newFakeUserStore()
	registered := registerLocalUser(t, users, "a@x.com", "pw1")
	v := NewPasswordVerifier(users)

	outcome, err := v.Verify(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, outcome.Status)
	require.NotNil(t, outcome.Principal)
	assert.Equal(t, "a@x.com", outcome.Principal.Email)
	assert.Equal(t, registered.ID, outcome.Principal.ID)
}

func TestPasswordVerifyWrongPassword(t *testing.T) {
	users := newFakeUserStore()
	registerLocalUser(t, users, "a@x.com", "pw1")
	v := NewPasswordVerifier(users)

	for _, wrong := range []string{"pw2", "", "PW1", "pw1 "} {
		outcome, err := v.Verify(context.Background(), "a@x.com", wrong)
		require.NoError(t, err)
		assert.Equal(t, StatusBadPassword, outcome.Status)
		assert.Nil(t, outcome.Principal)
	}
}

func TestPasswordVerifyEmailIsCaseSensitive(t *testing.T) {
	users := newFakeUserStore()
	registerLocalUser(t, users, "a@x.com", "pw1")
	v := NewPasswordVerifier(users)

	outcome, err := v.Verify(context.Background(), "A@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, StatusNoSuchUser, outcome.Status)
}

func TestPasswordVerifyFederatedIdentity(t *testing.T) {
	users := newFakeUserStore()
	require.NoError(t, users.Create(context.Background(), &Identity{
		ID:         uuid.NewString(),
		Email:      "fed@x.com",
		Credential: Credential{Kind: CredentialFederated},
	}))
	v := NewPasswordVerifier(users)

	// A federated identity has no password; any attempt fails the same
	// way a wrong password does.
	outcome, err := v.Verify(context.Background(), "fed@x.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, StatusBadPassword, outcome.Status)
}
