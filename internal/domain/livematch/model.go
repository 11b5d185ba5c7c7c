package livematch

import "time"

const (
	// CurrentID is the identity of the single live-match row.
	CurrentID = "current"

	StatusLive        = "LIVE"
	StatusNoLiveMatch = "NO_LIVE_MATCH"
)

// LiveMatch is a denormalized snapshot of the match in progress. Team names are
// free text; MatchID is set only when a stored LIVE match with the same teams exists.
type LiveMatch struct {
	ID             string
	MatchID        string
	Status         string
	HomeTeam       string
	AwayTeam       string
	HomeScore      string
	AwayScore      string
	Venue          string
	Overs          string
	CurrentBatsmen string
	CurrentBowler  string
	LastWicket     string
	RecentOvers    string
	RequiredRate   string
	UpdatedAt      time.Time
}

func (m LiveMatch) IsLive() bool {
	return m.Status == StatusLive
}
