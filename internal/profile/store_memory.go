package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests and the sync
// pipeline's fixtures. Safe for concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	profile *Profile
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

// SetClock overrides the timestamp source.
func (repository *MemoryRepository) SetClock(now func() time.Time) {
	repository.now = now
}

func (repository *MemoryRepository) GetFirst(_ context.Context) (*Profile, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	if repository.profile == nil {
		return nil, nil
	}
	copied := *repository.profile
	return &copied, nil
}

func (repository *MemoryRepository) Create(_ context.Context, p *Profile) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	p.ID = uuid.NewString()
	p.UpdatedAt = repository.now()
	copied := *p
	repository.profile = &copied
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, p *Profile) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	p.UpdatedAt = repository.now()
	copied := *p
	repository.profile = &copied
	return nil
}
