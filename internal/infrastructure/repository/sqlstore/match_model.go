package sqlstore

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID                string         `db:"id"`
	MatchNumber       int            `db:"match_number"`
	MatchDate         time.Time      `db:"match_date"`
	MatchTime         string         `db:"match_time"`
	Venue             string         `db:"venue"`
	HomeTeamID        string         `db:"home_team_id"`
	AwayTeamID        string         `db:"away_team_id"`
	HomeTeamScore     sql.NullString `db:"home_team_score"`
	AwayTeamScore     sql.NullString `db:"away_team_score"`
	Result            sql.NullString `db:"result"`
	Status            string         `db:"status"`
	HomeTeamName      string         `db:"home_team_name"`
	HomeTeamShortName string         `db:"home_team_short_name"`
	HomeTeamLogoURL   sql.NullString `db:"home_team_logo_url"`
	AwayTeamName      string         `db:"away_team_name"`
	AwayTeamShortName string         `db:"away_team_short_name"`
	AwayTeamLogoURL   sql.NullString `db:"away_team_logo_url"`
}

type matchUpsertModel struct {
	ID            string         `db:"id"`
	MatchNumber   int            `db:"match_number"`
	MatchDate     time.Time      `db:"match_date"`
	MatchTime     string         `db:"match_time"`
	Venue         string         `db:"venue"`
	HomeTeamID    string         `db:"home_team_id"`
	AwayTeamID    string         `db:"away_team_id"`
	HomeTeamScore sql.NullString `db:"home_team_score"`
	AwayTeamScore sql.NullString `db:"away_team_score"`
	Result        sql.NullString `db:"result"`
	Status        string         `db:"status"`
	UpdatedAt     time.Time      `db:"updated_at"`
}
