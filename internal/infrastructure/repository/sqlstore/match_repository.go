package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	qb "github.com/riskibarqy/ipl-dashboard/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func selectMatches() *qb.SelectBuilder {
	return qb.Select(
		"m.id",
		"m.match_number",
		"m.match_date",
		"m.match_time",
		"m.venue",
		"m.home_team_id",
		"m.away_team_id",
		"m.home_team_score",
		"m.away_team_score",
		"m.result",
		"m.status",
		"h.name AS home_team_name",
		"h.short_name AS home_team_short_name",
		"h.logo_url AS home_team_logo_url",
		"a.name AS away_team_name",
		"a.short_name AS away_team_short_name",
		"a.logo_url AS away_team_logo_url",
	).
		From("matches m").
		Join("teams h", "h.id = m.home_team_id").
		Join("teams a", "a.id = m.away_team_id")
}

func (r *MatchRepository) ListByDate(ctx context.Context) ([]match.Match, error) {
	query, args, err := selectMatches().
		OrderBy("m.match_date", "m.match_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, limit int) ([]match.Match, error) {
	if limit <= 0 {
		return []match.Match{}, nil
	}
	query, args, err := selectMatches().
		Where(qb.Eq("m.status", match.StatusUpcoming)).
		OrderBy("m.match_date", "m.match_number").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select upcoming matches query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := selectMatches().
		Where(qb.Eq("m.id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}
	return r.get(ctx, query, args)
}

func (r *MatchRepository) FindByTeams(ctx context.Context, homeTeamID, awayTeamID, status string) (match.Match, bool, error) {
	query, args, err := selectMatches().
		Where(
			qb.Eq("m.home_team_id", homeTeamID),
			qb.Eq("m.away_team_id", awayTeamID),
			qb.Eq("m.status", status),
		).
		OrderBy("m.match_date", "m.match_number").
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by teams query: %w", err)
	}
	return r.get(ctx, query, args)
}

func (r *MatchRepository) Upsert(ctx context.Context, m match.Match) error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if !match.IsValidStatus(m.Status) {
		return fmt.Errorf("invalid match status %q", m.Status)
	}

	query, args, err := qb.UpsertModel("matches", matchUpsertModel{
		ID:            m.ID,
		MatchNumber:   m.MatchNumber,
		MatchDate:     m.Date.UTC(),
		MatchTime:     m.Time,
		Venue:         m.Venue,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeTeamScore: nullString(m.HomeTeamScore),
		AwayTeamScore: nullString(m.AwayTeamScore),
		Result:        nullString(m.Result),
		Status:        m.Status,
		UpdatedAt:     nowUTC(),
	}, []string{"id"})
	if err != nil {
		return fmt.Errorf("build upsert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match id=%s: %w", m.ID, err)
	}
	return nil
}

func (r *MatchRepository) list(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) get(ctx context.Context, query string, args []any) (match.Match, bool, error) {
	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (row matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:          row.ID,
		MatchNumber: row.MatchNumber,
		Date:        row.MatchDate.UTC(),
		Time:        row.MatchTime,
		Venue:       row.Venue,
		HomeTeamID:  row.HomeTeamID,
		AwayTeamID:  row.AwayTeamID,
		HomeTeam: team.Team{
			ID:        row.HomeTeamID,
			Name:      row.HomeTeamName,
			ShortName: row.HomeTeamShortName,
			LogoURL:   row.HomeTeamLogoURL.String,
		},
		AwayTeam: team.Team{
			ID:        row.AwayTeamID,
			Name:      row.AwayTeamName,
			ShortName: row.AwayTeamShortName,
			LogoURL:   row.AwayTeamLogoURL.String,
		},
		HomeTeamScore: row.HomeTeamScore.String,
		AwayTeamScore: row.AwayTeamScore.String,
		Result:        row.Result.String,
		Status:        row.Status,
	}
}
