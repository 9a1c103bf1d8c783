package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/TahaRamkda/resourceBucketOr/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresUserStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewPostgresUserStore(&db.DB{DB: sqlDB}), mock
}

func TestFindByEmailLocal(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "email", "credential_type", "password_hash"}).
		AddRow("id-1", "a@x.com", "local", "$2a$10$hash")
	mock.ExpectQuery("SELECT id, email, credential_type, password_hash").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	identity, err := s.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "id-1", identity.ID)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.Equal(t, auth.CredentialLocal, identity.Credential.Kind)
	assert.Equal(t, "$2a$10$hash", identity.Credential.Hash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailFederatedNullHash(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "email", "credential_type", "password_hash"}).
		AddRow("id-2", "fed@x.com", "federated", nil)
	mock.ExpectQuery("SELECT id, email, credential_type, password_hash").
		WithArgs("fed@x.com").
		WillReturnRows(rows)

	identity, err := s.FindByEmail(context.Background(), "fed@x.com")
	require.NoError(t, err)
	assert.Equal(t, auth.CredentialFederated, identity.Credential.Kind)
	assert.Empty(t, identity.Credential.Hash)
}

func TestFindByEmailNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, email, credential_type, password_hash").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := s.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestCreateLocalIdentity(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("id-1", "a@x.com", "local", "$2a$10$hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Create(context.Background(), &auth.Identity{
		ID:         "id-1",
		Email:      "a@x.com",
		Credential: auth.Credential{Kind: auth.CredentialLocal, Hash: "$2a$10$hash"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFederatedIdentityStoresNullHash(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("id-2", "fed@x.com", "federated", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Create(context.Background(), &auth.Identity{
		ID:         "id-2",
		Email:      "fed@x.com",
		Credential: auth.Credential{Kind: auth.CredentialFederated},
	})
	require.NoError(t, err)
}

func TestCreateDuplicateEmail(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("id-3", "a@x.com", "local", "$2a$10$hash").
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := s.Create(context.Background(), &auth.Identity{
		ID:         "id-3",
		Email:      "a@x.com",
		Credential: auth.Credential{Kind: auth.CredentialLocal, Hash: "$2a$10$hash"},
	})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestCreateInfrastructureFault(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	err := s.Create(context.Background(), &auth.Identity{
		ID:         "id-4",
		Email:      "a@x.com",
		Credential: auth.Credential{Kind: auth.CredentialLocal, Hash: "h"},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrEmailTaken)
}
