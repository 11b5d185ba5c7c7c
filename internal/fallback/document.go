package fallback

import (
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	"github.com/shopspring/decimal"
)

// Document is the on-disk fallback snapshot. Points-table rows and matches reference
// teams by id.
type Document struct {
	Teams       []TeamRecord     `json:"teams" validate:"dive"`
	PointsTable []PointsRecord   `json:"pointsTable" validate:"dive"`
	Matches     []MatchRecord    `json:"matches" validate:"dive"`
	LiveMatch   *LiveMatchRecord `json:"liveMatch"`
}

type TeamRecord struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"shortName"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

type PointsRecord struct {
	ID         string          `json:"id"`
	TeamID     string          `json:"teamId" validate:"required"`
	Played     int             `json:"played"`
	Won        int             `json:"won"`
	Lost       int             `json:"lost"`
	Tied       int             `json:"tied"`
	NoResult   int             `json:"noResult"`
	Points     int             `json:"points"`
	NetRunRate decimal.Decimal `json:"netRunRate"`
}

type MatchRecord struct {
	ID            string    `json:"id" validate:"required"`
	MatchNumber   int       `json:"matchNumber"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Venue         string    `json:"venue"`
	HomeTeamID    string    `json:"homeTeamId" validate:"required"`
	AwayTeamID    string    `json:"awayTeamId" validate:"required"`
	HomeTeamScore string    `json:"homeTeamScore,omitempty"`
	AwayTeamScore string    `json:"awayTeamScore,omitempty"`
	Result        string    `json:"result,omitempty"`
	Status        string    `json:"status" validate:"oneof=UPCOMING LIVE COMPLETED"`
}

type LiveMatchRecord struct {
	ID             string `json:"id"`
	MatchID        string `json:"matchId,omitempty"`
	Status         string `json:"status"`
	HomeTeam       string `json:"homeTeam"`
	AwayTeam       string `json:"awayTeam"`
	HomeScore      string `json:"homeScore,omitempty"`
	AwayScore      string `json:"awayScore,omitempty"`
	Venue          string `json:"venue"`
	Overs          string `json:"overs,omitempty"`
	CurrentBatsmen string `json:"currentBatsmen,omitempty"`
	CurrentBowler  string `json:"currentBowler,omitempty"`
	LastWicket     string `json:"lastWicket,omitempty"`
	RecentOvers    string `json:"recentOvers,omitempty"`
	RequiredRate   string `json:"requiredRate,omitempty"`
}

func (d Document) TeamList() []team.Team {
	out := make([]team.Team, 0, len(d.Teams))
	for _, t := range d.Teams {
		out = append(out, t.toDomain())
	}
	return out
}

// Standings returns the points table in document order with teams joined by id.
func (d Document) Standings() []standing.Entry {
	teams := team.IndexByID(d.TeamList())
	out := make([]standing.Entry, 0, len(d.PointsTable))
	for _, p := range d.PointsTable {
		out = append(out, standing.Entry{
			ID:         p.ID,
			TeamID:     p.TeamID,
			Team:       teams[p.TeamID],
			Played:     p.Played,
			Won:        p.Won,
			Lost:       p.Lost,
			Tied:       p.Tied,
			NoResult:   p.NoResult,
			Points:     p.Points,
			NetRunRate: p.NetRunRate,
		})
	}
	return out
}

// Schedule returns matches in document order with home and away teams joined by id.
func (d Document) Schedule() []match.Match {
	teams := team.IndexByID(d.TeamList())
	out := make([]match.Match, 0, len(d.Matches))
	for _, m := range d.Matches {
		out = append(out, m.toDomain(teams))
	}
	return out
}

func (d Document) MatchByID(id string) (match.Match, bool) {
	for _, m := range d.Matches {
		if m.ID == id {
			return m.toDomain(team.IndexByID(d.TeamList())), true
		}
	}
	return match.Match{}, false
}

func (d Document) Live() (livematch.LiveMatch, bool) {
	if d.LiveMatch == nil {
		return livematch.LiveMatch{}, false
	}
	l := d.LiveMatch
	id := l.ID
	if id == "" {
		id = livematch.CurrentID
	}
	return livematch.LiveMatch{
		ID:             id,
		MatchID:        l.MatchID,
		Status:         l.Status,
		HomeTeam:       l.HomeTeam,
		AwayTeam:       l.AwayTeam,
		HomeScore:      l.HomeScore,
		AwayScore:      l.AwayScore,
		Venue:          l.Venue,
		Overs:          l.Overs,
		CurrentBatsmen: l.CurrentBatsmen,
		CurrentBowler:  l.CurrentBowler,
		LastWicket:     l.LastWicket,
		RecentOvers:    l.RecentOvers,
		RequiredRate:   l.RequiredRate,
	}, true
}

func (t TeamRecord) toDomain() team.Team {
	short := t.ShortName
	if short == "" {
		short = team.DeriveShortName(t.Name)
	}
	return team.Team{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: short,
		LogoURL:   t.LogoURL,
	}
}

func (m MatchRecord) toDomain(teams map[string]team.Team) match.Match {
	return match.Match{
		ID:            m.ID,
		MatchNumber:   m.MatchNumber,
		Date:          m.Date,
		Time:          m.Time,
		Venue:         m.Venue,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeTeam:      teams[m.HomeTeamID],
		AwayTeam:      teams[m.AwayTeamID],
		HomeTeamScore: m.HomeTeamScore,
		AwayTeamScore: m.AwayTeamScore,
		Result:        m.Result,
		Status:        m.Status,
	}
}
