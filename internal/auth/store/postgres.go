package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/TahaRamkda/resourceBucketOr/internal/db"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// PostgresUserStore implements auth.UserStore over the users table.
type PostgresUserStore struct {
	db *db.DB
}

func NewPostgresUserStore(db *db.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*auth.Identity, error) {
	var (
		identity auth.Identity
		kind     string
		hash     sql.NullString
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, credential_type, password_hash
		FROM users
		WHERE email = $1
	`, email).Scan(&identity.ID, &identity.Email, &kind, &hash)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user store: find by email: %w", err)
	}

	identity.Credential = auth.Credential{
		Kind: auth.CredentialKind(kind),
		Hash: hash.String,
	}
	return &identity, nil
}

func (s *PostgresUserStore) Create(ctx context.Context, identity *auth.Identity) error {
	var hash sql.NullString
	if identity.Credential.Kind == auth.CredentialLocal {
		hash = sql.NullString{String: identity.Credential.Hash, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, credential_type, password_hash)
		VALUES ($1, $2, $3, $4)
	`,
		identity.ID,
		identity.Email,
		string(identity.Credential.Kind),
		hash,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return auth.ErrEmailTaken
		}
		return fmt.Errorf("user store: create: %w", err)
	}
	return nil
}
