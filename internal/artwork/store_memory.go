package artwork

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/haileyart/portfolio/internal/platform/dberr"
)

// MemoryRepository is an in-memory [Repository] used by tests and local
// development. It applies the same ordering and pick-clearing rules as the
// Postgres implementation.
type MemoryRepository struct {
	mu       sync.Mutex
	rows     map[string]*Artwork
	inserted []string // insertion order, for stable iteration

	// now is swappable so tests can control createdAt values.
	now func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows: make(map[string]*Artwork),
		now:  time.Now,
	}
}

// SetClock replaces the time source used for createdAt assignment.
func (m *MemoryRepository) SetClock(now func() time.Time) { m.now = now }

func (m *MemoryRepository) List(_ context.Context, f Filter) ([]*Artwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Artwork
	for _, id := range m.inserted {
		a := m.rows[id]
		if f.Collection != nil && a.Collection != *f.Collection {
			continue
		}
		out = append(out, copyArtwork(a))
	}

	sortDefault(out)
	return out, nil
}

func (m *MemoryRepository) ListForExport(_ context.Context) ([]*Artwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Artwork, 0, len(m.inserted))
	for _, id := range m.inserted {
		out = append(out, copyArtwork(m.rows[id]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Collection != out[j].Collection {
			return out[i].Collection < out[j].Collection
		}
		return defaultLess(out[i], out[j])
	})
	return out, nil
}

func (m *MemoryRepository) Get(_ context.Context, id string) (*Artwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.rows[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return copyArtwork(a), nil
}

func (m *MemoryRepository) GetArtistPick(_ context.Context) (*Artwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.inserted {
		if m.rows[id].IsArtistPick {
			return copyArtwork(m.rows[id]), nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) GetCollectionPick(_ context.Context, collection string) (*Artwork, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.inserted {
		a := m.rows[id]
		if a.IsCollectionPick && a.Collection == collection {
			return copyArtwork(a), nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) Create(_ context.Context, a *Artwork) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearCompetingPicks(a, "")

	a.ID = uuid.NewString()
	a.CreatedAt = m.now()
	m.rows[a.ID] = copyArtwork(a)
	m.inserted = append(m.inserted, a.ID)
	return nil
}

func (m *MemoryRepository) Update(_ context.Context, a *Artwork) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.rows[a.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	m.clearCompetingPicks(a, a.ID)

	a.CreatedAt = existing.CreatedAt
	m.rows[a.ID] = copyArtwork(a)
	return nil
}

func (m *MemoryRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return dberr.ErrNotFound
	}

	delete(m.rows, id)
	for i, inserted := range m.inserted {
		if inserted == id {
			m.inserted = append(m.inserted[:i], m.inserted[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepository) clearCompetingPicks(a *Artwork, excludeID string) {
	for id, row := range m.rows {
		if id == excludeID {
			continue
		}
		if a.IsArtistPick && row.IsArtistPick {
			row.IsArtistPick = false
		}
		if a.IsCollectionPick && row.IsCollectionPick && row.Collection == a.Collection {
			row.IsCollectionPick = false
		}
	}
}

// defaultLess is the List ordering: viewOrder ascending with nulls last,
// then createdAt descending.
func defaultLess(a, b *Artwork) bool {
	switch {
	case a.ViewOrder != nil && b.ViewOrder != nil:
		if *a.ViewOrder != *b.ViewOrder {
			return *a.ViewOrder < *b.ViewOrder
		}
	case a.ViewOrder != nil:
		return true
	case b.ViewOrder != nil:
		return false
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func sortDefault(items []*Artwork) {
	sort.SliceStable(items, func(i, j int) bool {
		return defaultLess(items[i], items[j])
	})
}

func copyArtwork(a *Artwork) *Artwork {
	dup := *a
	if a.Description != nil {
		d := *a.Description
		dup.Description = &d
	}
	if a.ViewOrder != nil {
		v := *a.ViewOrder
		dup.ViewOrder = &v
	}
	return &dup
}
