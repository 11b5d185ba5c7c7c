package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	teams   *TeamRepository
	matches map[string]match.Match
}

func NewMatchRepository(teams *TeamRepository) *MatchRepository {
	return &MatchRepository{teams: teams, matches: make(map[string]match.Match)}
}

func (r *MatchRepository) Upsert(_ context.Context, m match.Match) error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if !match.IsValidStatus(m.Status) {
		return fmt.Errorf("invalid match status %q", m.Status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[m.ID] = m
	return nil
}

func (r *MatchRepository) ListByDate(_ context.Context) ([]match.Match, error) {
	return r.sorted(func(match.Match) bool { return true }), nil
}

func (r *MatchRepository) ListUpcoming(_ context.Context, limit int) ([]match.Match, error) {
	if limit <= 0 {
		return []match.Match{}, nil
	}
	out := r.sorted(func(m match.Match) bool { return m.Status == match.StatusUpcoming })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	m, ok := r.matches[id]
	r.mu.RUnlock()
	if !ok {
		return match.Match{}, false, nil
	}
	return r.withTeams(m), true, nil
}

func (r *MatchRepository) FindByTeams(_ context.Context, homeTeamID, awayTeamID, status string) (match.Match, bool, error) {
	out := r.sorted(func(m match.Match) bool {
		return m.HomeTeamID == homeTeamID && m.AwayTeamID == awayTeamID && m.Status == status
	})
	if len(out) == 0 {
		return match.Match{}, false, nil
	}
	return out[0], true, nil
}

func (r *MatchRepository) sorted(keep func(match.Match) bool) []match.Match {
	r.mu.RLock()
	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if keep(m) {
			out = append(out, m)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].MatchNumber < out[j].MatchNumber
	})
	for i := range out {
		out[i] = r.withTeams(out[i])
	}
	return out
}

func (r *MatchRepository) withTeams(m match.Match) match.Match {
	teams := r.teams.byID()
	m.HomeTeam = teams[m.HomeTeamID]
	m.AwayTeam = teams[m.AwayTeamID]
	return m
}
