package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"raider-registry-backend/internal/features/twitterauth/repository"
)

const keyPrefix = "twitter:handshake:"

type store struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewHandshakeStore хранит секреты в Redis, поэтому колбэк может прийти на любой инстанс
func NewHandshakeStore(client redis.UniversalClient, ttl time.Duration) repository.HandshakeStore {
	return &store{client: client, ttl: ttl}
}

func (s *store) Save(ctx context.Context, requestToken, secret string) error {
	if err := s.client.Set(ctx, keyPrefix+requestToken, secret, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save handshake: %w", err)
	}
	return nil
}

// Take использует GETDEL, чтобы два параллельных колбэка не получили один секрет
func (s *store) Take(ctx context.Context, requestToken string) (string, bool, error) {
	secret, err := s.client.GetDel(ctx, keyPrefix+requestToken).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to take handshake: %w", err)
	}
	return secret, true, nil
}
