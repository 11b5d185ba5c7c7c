package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/standing"
)

type StandingRepository struct {
	mu      sync.RWMutex
	teams   *TeamRepository
	entries []standing.Entry
}

func NewStandingRepository(teams *TeamRepository) *StandingRepository {
	return &StandingRepository{teams: teams}
}

func (r *StandingRepository) ListRanked(_ context.Context) ([]standing.Entry, error) {
	r.mu.RLock()
	out := append([]standing.Entry(nil), r.entries...)
	r.mu.RUnlock()

	teams := r.teams.byID()
	for i := range out {
		out[i].Team = teams[out[i].TeamID]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return standing.Less(out[i], out[j])
	})
	return out, nil
}

func (r *StandingRepository) UpsertByTeam(_ context.Context, entry standing.Entry) error {
	if entry.TeamID == "" || entry.ID == "" {
		return fmt.Errorf("points table row requires id and team id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.entries {
		if r.entries[idx].TeamID == entry.TeamID {
			entry.ID = r.entries[idx].ID
			r.entries[idx] = entry
			return nil
		}
	}
	r.entries = append(r.entries, entry)
	return nil
}
