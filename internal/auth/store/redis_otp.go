package store

import (
	"context"
	"fmt"
	"time"

	"github.com/TahaRamkda/resourceBucketOr/internal/auth"
	"github.com/redis/go-redis/v9"
)

// Compare-and-delete in one round trip so two concurrent correct
// submissions cannot both consume the code.
var consumeScript = redis.NewScript(`
local code = redis.call("HGET", KEYS[1], "code")
if code == ARGV[1] then
	redis.call("DEL", KEYS[1])
	return 1
end
return 0
`)

// RedisOTPStore implements auth.OTPStore keyed by email. Expiry is the
// key TTL: an absent key is an expired code.
type RedisOTPStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisOTPStore(client *redis.Client, ttl time.Duration) *RedisOTPStore {
	return &RedisOTPStore{
		client: client,
		prefix: "otp:",
		ttl:    ttl,
	}
}

func (s *RedisOTPStore) key(email string) string {
	return s.prefix + email
}

func (s *RedisOTPStore) Put(ctx context.Context, rec auth.OTPRecord) error {
	if rec.Email == "" || rec.Code == "" {
		return fmt.Errorf("otp store: missing email or code")
	}

	key := s.key(rec.Email)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, "code", rec.Code, "identity_id", rec.IdentityID)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("otp store: put: %w", err)
	}
	return nil
}

func (s *RedisOTPStore) Get(ctx context.Context, email string) (*auth.OTPRecord, error) {
	fields, err := s.client.HGetAll(ctx, s.key(email)).Result()
	if err != nil {
		return nil, fmt.Errorf("otp store: get: %w", err)
	}
	if len(fields) == 0 {
		return nil, auth.ErrNotFound
	}

	return &auth.OTPRecord{
		Email:      email,
		Code:       fields["code"],
		IdentityID: fields["identity_id"],
	}, nil
}

func (s *RedisOTPStore) ConsumeIfMatch(ctx context.Context, email, code string) (bool, error) {
	n, err := consumeScript.Run(ctx, s.client, []string{s.key(email)}, code).Int()
	if err != nil {
		return false, fmt.Errorf("otp store: consume: %w", err)
	}
	return n == 1, nil
}
