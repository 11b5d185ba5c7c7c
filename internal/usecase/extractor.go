package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/fallback"
	"github.com/shopspring/decimal"
)

// Origin tells where an extraction result came from.
type Origin string

const (
	OriginPage     Origin = "page"
	OriginFallback Origin = "fallback"
)

// Extractor fetches one section of the league site. Every method falls back to the static
// snapshot when the page cannot be fetched or yields no records; the returned error is
// reserved for the case where the snapshot itself cannot be read.
type Extractor interface {
	FetchTeams(ctx context.Context) (TeamsResult, error)
	FetchStandings(ctx context.Context) (StandingsResult, error)
	FetchSchedule(ctx context.Context) (ScheduleResult, error)
	// FetchLiveMatch returns a nil Live when the page has no live match element. Only a
	// failed fetch falls back.
	FetchLiveMatch(ctx context.Context) (LiveResult, error)
}

// FallbackSource loads the static snapshot.
type FallbackSource interface {
	Load(ctx context.Context) (fallback.Document, error)
}

type ExternalTeam struct {
	Name      string `validate:"required"`
	ShortName string
	LogoURL   string
}

type ExternalStanding struct {
	TeamName   string `validate:"required"`
	Played     int
	Won        int
	Lost       int
	Tied       int
	NoResult   int
	Points     int
	NetRunRate decimal.Decimal
}

type ExternalMatch struct {
	MatchNumber   int       `validate:"required"`
	Date          time.Time `validate:"required"`
	Time          string
	Venue         string
	HomeTeamName  string `validate:"required"`
	AwayTeamName  string `validate:"required"`
	HomeTeamScore string
	AwayTeamScore string
	Result        string
	Status        string
}

type ExternalLiveMatch struct {
	Status         string
	HomeTeamName   string `validate:"required"`
	AwayTeamName   string `validate:"required"`
	HomeScore      string
	AwayScore      string
	Venue          string
	Overs          string
	CurrentBatsmen string
	CurrentBowler  string
	LastWicket     string
	RecentOvers    string
	RequiredRate   string
}

// TeamsResult and its siblings carry FallbackCause only when Origin is OriginFallback.
type TeamsResult struct {
	Teams         []ExternalTeam
	Origin        Origin
	FallbackCause error
}

type StandingsResult struct {
	Standings     []ExternalStanding
	Origin        Origin
	FallbackCause error
}

type ScheduleResult struct {
	Matches       []ExternalMatch
	Origin        Origin
	FallbackCause error
}

type LiveResult struct {
	Live          *ExternalLiveMatch
	Origin        Origin
	FallbackCause error
}
