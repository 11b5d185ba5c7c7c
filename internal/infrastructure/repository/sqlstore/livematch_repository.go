package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	qb "github.com/riskibarqy/ipl-dashboard/internal/platform/querybuilder"
)

type LiveMatchRepository struct {
	db *sqlx.DB
}

func NewLiveMatchRepository(db *sqlx.DB) *LiveMatchRepository {
	return &LiveMatchRepository{db: db}
}

func (r *LiveMatchRepository) Get(ctx context.Context) (livematch.LiveMatch, bool, error) {
	query, args, err := qb.Select(
		"id",
		"match_id",
		"status",
		"home_team",
		"away_team",
		"home_score",
		"away_score",
		"venue",
		"overs",
		"current_batsmen",
		"current_bowler",
		"last_wicket",
		"recent_overs",
		"required_rate",
		"updated_at",
	).
		From("live_match").
		Where(qb.Eq("id", livematch.CurrentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return livematch.LiveMatch{}, false, fmt.Errorf("build select live match query: %w", err)
	}

	var row liveMatchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return livematch.LiveMatch{}, false, nil
		}
		return livematch.LiveMatch{}, false, fmt.Errorf("select live match: %w", err)
	}

	return livematch.LiveMatch{
		ID:             row.ID,
		MatchID:        row.MatchID.String,
		Status:         row.Status,
		HomeTeam:       row.HomeTeam,
		AwayTeam:       row.AwayTeam,
		HomeScore:      row.HomeScore.String,
		AwayScore:      row.AwayScore.String,
		Venue:          row.Venue,
		Overs:          row.Overs.String,
		CurrentBatsmen: row.CurrentBatsmen.String,
		CurrentBowler:  row.CurrentBowler.String,
		LastWicket:     row.LastWicket.String,
		RecentOvers:    row.RecentOvers.String,
		RequiredRate:   row.RequiredRate.String,
		UpdatedAt:      row.UpdatedAt.UTC(),
	}, true, nil
}

func (r *LiveMatchRepository) Upsert(ctx context.Context, m livematch.LiveMatch) error {
	updatedAt := m.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = nowUTC()
	}

	query, args, err := qb.UpsertModel("live_match", liveMatchTableModel{
		ID:             livematch.CurrentID,
		MatchID:        nullString(m.MatchID),
		Status:         m.Status,
		HomeTeam:       m.HomeTeam,
		AwayTeam:       m.AwayTeam,
		HomeScore:      nullString(m.HomeScore),
		AwayScore:      nullString(m.AwayScore),
		Venue:          m.Venue,
		Overs:          nullString(m.Overs),
		CurrentBatsmen: nullString(m.CurrentBatsmen),
		CurrentBowler:  nullString(m.CurrentBowler),
		LastWicket:     nullString(m.LastWicket),
		RecentOvers:    nullString(m.RecentOvers),
		RequiredRate:   nullString(m.RequiredRate),
		UpdatedAt:      updatedAt.UTC(),
	}, []string{"id"})
	if err != nil {
		return fmt.Errorf("build upsert live match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert live match: %w", err)
	}
	return nil
}

func (r *LiveMatchRepository) UpdateStatus(ctx context.Context, status string) (bool, error) {
	query, args, err := qb.Update("live_match").
		Set("status", status).
		Set("updated_at", nowUTC()).
		Where(qb.Eq("id", livematch.CurrentID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update live match status query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update live match status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read affected rows: %w", err)
	}
	return affected > 0, nil
}
