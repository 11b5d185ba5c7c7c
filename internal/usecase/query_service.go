package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	"github.com/riskibarqy/ipl-dashboard/internal/fallback"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
)

const DefaultUpcomingLimit = 3

// Store groups the persistent repositories. A nil *Store means no store is configured.
type Store struct {
	Teams     team.Repository
	Standings standing.Repository
	Matches   match.Repository
	Live      livematch.Repository
}

// StoreSource resolves the store for a single request. A nil store with a nil error
// means no store exists right now; an error means it exists but cannot be reached.
type StoreSource interface {
	Acquire(ctx context.Context) (*Store, error)
}

// Acquire makes a fixed *Store usable as a StoreSource. A nil receiver reports no store.
func (s *Store) Acquire(context.Context) (*Store, error) {
	return s, nil
}

// QueryService serves read models from the store, or from the static snapshot whenever
// the store is absent, has no teams or cannot be reached. The choice is made per call.
type QueryService struct {
	stores   StoreSource
	fallback FallbackSource
	logger   *logging.Logger
	now      func() time.Time
}

func NewQueryService(stores StoreSource, fallbackSource FallbackSource, logger *logging.Logger) *QueryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &QueryService{
		stores:   stores,
		fallback: fallbackSource,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock overrides the time stamped on snapshot live matches.
func (s *QueryService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *QueryService) Teams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.Teams")
	defer span.End()

	store, doc, useFallback, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	if useFallback {
		return doc.TeamList(), nil
	}

	items, err := store.Teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *QueryService) PointsTable(ctx context.Context) ([]standing.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.PointsTable")
	defer span.End()

	store, doc, useFallback, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	if useFallback {
		return doc.Standings(), nil
	}

	items, err := store.Standings.ListRanked(ctx)
	if err != nil {
		return nil, fmt.Errorf("list points table: %w", err)
	}
	return items, nil
}

func (s *QueryService) Schedule(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.Schedule")
	defer span.End()

	store, doc, useFallback, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	if useFallback {
		return doc.Schedule(), nil
	}

	items, err := store.Matches.ListByDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	return items, nil
}

// Upcoming returns at most limit UPCOMING matches, earliest first. limit <= 0 uses
// DefaultUpcomingLimit.
func (s *QueryService) Upcoming(ctx context.Context, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.Upcoming")
	defer span.End()

	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	store, doc, useFallback, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	if useFallback {
		return upcomingFrom(doc.Schedule(), limit), nil
	}

	items, err := store.Matches.ListUpcoming(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}
	return items, nil
}

// Live returns nil unless the current snapshot has status LIVE.
func (s *QueryService) Live(ctx context.Context) (*livematch.LiveMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.Live")
	defer span.End()

	store, doc, useFallback, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	if useFallback {
		item, ok := doc.Live()
		if !ok || !item.IsLive() {
			return nil, nil
		}
		item.UpdatedAt = s.now().UTC()
		return &item, nil
	}

	item, ok, err := store.Live.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get live match: %w", err)
	}
	if !ok || !item.IsLive() {
		return nil, nil
	}
	return &item, nil
}

func (s *QueryService) MatchByID(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryService.MatchByID")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: empty match id", ErrNotFound)
	}

	store, doc, useFallback, err := s.source(ctx)
	if err != nil {
		return match.Match{}, err
	}
	if useFallback {
		item, ok := doc.MatchByID(matchID)
		if !ok {
			return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}
		return item, nil
	}

	item, ok, err := store.Matches.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

// source decides per call whether to read the snapshot. A store that cannot be acquired
// or fails to count its teams is treated as unavailable.
func (s *QueryService) source(ctx context.Context) (*Store, fallback.Document, bool, error) {
	if store := s.acquire(ctx); store != nil && store.Teams != nil {
		count, err := store.Teams.Count(ctx)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "store unavailable, serving static data", "error", err)
		case count > 0:
			return store, fallback.Document{}, false, nil
		}
	}

	if s.fallback == nil {
		return nil, fallback.Document{}, false, fmt.Errorf("%w: no store data and no static data configured", ErrDependencyUnavailable)
	}
	doc, err := s.fallback.Load(ctx)
	if err != nil {
		return nil, fallback.Document{}, false, fmt.Errorf("load static data: %w", err)
	}
	return nil, doc, true, nil
}

func (s *QueryService) acquire(ctx context.Context) *Store {
	if s.stores == nil {
		return nil
	}
	store, err := s.stores.Acquire(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "store unavailable, serving static data", "error", err)
		return nil
	}
	return store
}

func upcomingFrom(items []match.Match, limit int) []match.Match {
	out := make([]match.Match, 0, limit)
	for _, item := range items {
		if item.Status == match.StatusUpcoming {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
