package sqlstore

import (
	"database/sql"
	"time"
)

type liveMatchTableModel struct {
	ID             string         `db:"id"`
	MatchID        sql.NullString `db:"match_id"`
	Status         string         `db:"status"`
	HomeTeam       string         `db:"home_team"`
	AwayTeam       string         `db:"away_team"`
	HomeScore      sql.NullString `db:"home_score"`
	AwayScore      sql.NullString `db:"away_score"`
	Venue          string         `db:"venue"`
	Overs          sql.NullString `db:"overs"`
	CurrentBatsmen sql.NullString `db:"current_batsmen"`
	CurrentBowler  sql.NullString `db:"current_bowler"`
	LastWicket     sql.NullString `db:"last_wicket"`
	RecentOvers    sql.NullString `db:"recent_overs"`
	RequiredRate   sql.NullString `db:"required_rate"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
