package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"raider-registry-backend/internal/features/registration/models"
	"raider-registry-backend/internal/features/registration/repository"
)

// memoryRepository повторяет ограничения таблицы user_profiles в памяти.
// Используется в тестах сервисов и HTTP-слоя.
type memoryRepository struct {
	mu       sync.RWMutex
	profiles []*models.UserProfile
	nextID   int64
	now      func() time.Time
}

func NewMemoryRepository() repository.ProfileRepository {
	return &memoryRepository{nextID: 1, now: time.Now}
}

// NewMemoryRepositoryWithClock позволяет задать время создания записей
func NewMemoryRepositoryWithClock(now func() time.Time) repository.ProfileRepository {
	return &memoryRepository{nextID: 1, now: now}
}

func (r *memoryRepository) ExistsAny(_ context.Context, twitterID, telegramUsername, walletAddress string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.conflicts(twitterID, telegramUsername, walletAddress), nil
}

func (r *memoryRepository) Create(_ context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflicts(profile.TwitterID, profile.TelegramUsername, profile.WalletAddress) {
		return nil, repository.ErrDuplicate
	}

	created := *profile
	created.ID = r.nextID
	created.CreatedAt = r.now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.nextID++

	r.profiles = append(r.profiles, &created)

	out := created
	return &out, nil
}

func (r *memoryRepository) ListAll(_ context.Context) ([]*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.UserProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		cp := *p
		out = append(out, &cp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepository) conflicts(twitterID, telegramUsername, walletAddress string) bool {
	for _, p := range r.profiles {
		if p.TwitterID == twitterID || p.TelegramUsername == telegramUsername || p.WalletAddress == walletAddress {
			return true
		}
	}
	return false
}
