package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
)

type LiveMatchRepository struct {
	mu     sync.RWMutex
	now    func() time.Time
	row    livematch.LiveMatch
	exists bool
}

func NewLiveMatchRepository() *LiveMatchRepository {
	return &LiveMatchRepository{now: time.Now}
}

func (r *LiveMatchRepository) Get(_ context.Context) (livematch.LiveMatch, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.row, r.exists, nil
}

func (r *LiveMatchRepository) Upsert(_ context.Context, m livematch.LiveMatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = livematch.CurrentID
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = r.now().UTC()
	}
	r.row = m
	r.exists = true
	return nil
}

func (r *LiveMatchRepository) UpdateStatus(_ context.Context, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.exists {
		return false, nil
	}
	r.row.Status = status
	r.row.UpdatedAt = r.now().UTC()
	return true, nil
}
