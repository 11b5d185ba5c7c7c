// Package dashboard is the terminal presentation layer: an API client, a live-match
// poller, client-side sort/filter/group helpers and table renderers.
package dashboard

import "time"

const (
	StatusUpcoming  = "UPCOMING"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
)

type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

type PointsTableEntry struct {
	ID         string  `json:"id"`
	TeamID     string  `json:"teamId"`
	Team       Team    `json:"team"`
	Played     int     `json:"played"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	Tied       int     `json:"tied"`
	NoResult   int     `json:"noResult"`
	Points     int     `json:"points"`
	NetRunRate float64 `json:"netRunRate"`
}

type Match struct {
	ID            string    `json:"id"`
	MatchNumber   int       `json:"matchNumber"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Venue         string    `json:"venue"`
	HomeTeamID    string    `json:"homeTeamId"`
	AwayTeamID    string    `json:"awayTeamId"`
	HomeTeam      Team      `json:"homeTeam"`
	AwayTeam      Team      `json:"awayTeam"`
	HomeTeamScore string    `json:"homeTeamScore,omitempty"`
	AwayTeamScore string    `json:"awayTeamScore,omitempty"`
	Result        string    `json:"result,omitempty"`
	Status        string    `json:"status"`
}

type LiveMatch struct {
	ID             string    `json:"id"`
	MatchID        string    `json:"matchId,omitempty"`
	Status         string    `json:"status"`
	HomeTeam       string    `json:"homeTeam"`
	AwayTeam       string    `json:"awayTeam"`
	HomeScore      string    `json:"homeScore,omitempty"`
	AwayScore      string    `json:"awayScore,omitempty"`
	Venue          string    `json:"venue"`
	Overs          string    `json:"overs,omitempty"`
	CurrentBatsmen string    `json:"currentBatsmen,omitempty"`
	CurrentBowler  string    `json:"currentBowler,omitempty"`
	LastWicket     string    `json:"lastWicket,omitempty"`
	RecentOvers    string    `json:"recentOvers,omitempty"`
	RequiredRate   string    `json:"requiredRate,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
