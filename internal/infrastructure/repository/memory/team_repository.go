package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{teams: append([]team.Team(nil), teams...)}
}

// List orders by name like the SQL store does.
func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]team.Team(nil), r.teams...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *TeamRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.teams), nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	if err := t.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.teams {
		if item.ID == t.ID {
			return fmt.Errorf("team id=%s already exists", t.ID)
		}
	}
	r.teams = append(r.teams, t)
	return nil
}

func (r *TeamRepository) byID() map[string]team.Team {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return team.IndexByID(r.teams)
}
