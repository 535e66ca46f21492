package memory

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"raider-registry-backend/internal/features/twitterauth/repository"
)

type store struct {
	mu    sync.Mutex
	cache *gocache.Cache
	ttl   time.Duration
}

// NewHandshakeStore хранит секреты в памяти процесса. Просроченные записи
// недоступны сразу после истечения ttl, janitor вычищает их раз в ttl.
func NewHandshakeStore(ttl time.Duration) repository.HandshakeStore {
	return &store{
		cache: gocache.New(ttl, ttl),
		ttl:   ttl,
	}
}

func (s *store) Save(_ context.Context, requestToken, secret string) error {
	s.cache.Set(requestToken, secret, s.ttl)
	return nil
}

func (s *store) Take(_ context.Context, requestToken string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, found := s.cache.Get(requestToken)
	s.cache.Delete(requestToken)
	if !found {
		return "", false, nil
	}

	secret, ok := v.(string)
	return secret, ok, nil
}
