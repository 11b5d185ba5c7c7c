package httpapi

import (
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
)

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

type pointsTableEntryDTO struct {
	ID         string  `json:"id"`
	TeamID     string  `json:"teamId"`
	Team       teamDTO `json:"team"`
	Played     int     `json:"played"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	Tied       int     `json:"tied"`
	NoResult   int     `json:"noResult"`
	Points     int     `json:"points"`
	NetRunRate float64 `json:"netRunRate"`
}

type matchDTO struct {
	ID            string    `json:"id"`
	MatchNumber   int       `json:"matchNumber"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Venue         string    `json:"venue"`
	HomeTeamID    string    `json:"homeTeamId"`
	AwayTeamID    string    `json:"awayTeamId"`
	HomeTeam      teamDTO   `json:"homeTeam"`
	AwayTeam      teamDTO   `json:"awayTeam"`
	HomeTeamScore string    `json:"homeTeamScore,omitempty"`
	AwayTeamScore string    `json:"awayTeamScore,omitempty"`
	Result        string    `json:"result,omitempty"`
	Status        string    `json:"status"`
}

type liveMatchDTO struct {
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

func toTeamDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:        item.ID,
		Name:      item.Name,
		ShortName: item.ShortName,
		LogoURL:   item.LogoURL,
	}
}

func toPointsTableEntryDTO(item standing.Entry) pointsTableEntryDTO {
	return pointsTableEntryDTO{
		ID:         item.ID,
		TeamID:     item.TeamID,
		Team:       toTeamDTO(item.Team),
		Played:     item.Played,
		Won:        item.Won,
		Lost:       item.Lost,
		Tied:       item.Tied,
		NoResult:   item.NoResult,
		Points:     item.Points,
		NetRunRate: item.NetRunRate.InexactFloat64(),
	}
}

func toMatchDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:            item.ID,
		MatchNumber:   item.MatchNumber,
		Date:          item.Date.UTC(),
		Time:          item.Time,
		Venue:         item.Venue,
		HomeTeamID:    item.HomeTeamID,
		AwayTeamID:    item.AwayTeamID,
		HomeTeam:      toTeamDTO(item.HomeTeam),
		AwayTeam:      toTeamDTO(item.AwayTeam),
		HomeTeamScore: item.HomeTeamScore,
		AwayTeamScore: item.AwayTeamScore,
		Result:        item.Result,
		Status:        item.Status,
	}
}

func toMatchDTOs(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toMatchDTO(item))
	}
	return out
}

func toLiveMatchDTO(item livematch.LiveMatch) liveMatchDTO {
	return liveMatchDTO{
		ID:             item.ID,
		MatchID:        item.MatchID,
		Status:         item.Status,
		HomeTeam:       item.HomeTeam,
		AwayTeam:       item.AwayTeam,
		HomeScore:      item.HomeScore,
		AwayScore:      item.AwayScore,
		Venue:          item.Venue,
		Overs:          item.Overs,
		CurrentBatsmen: item.CurrentBatsmen,
		CurrentBowler:  item.CurrentBowler,
		LastWicket:     item.LastWicket,
		RecentOvers:    item.RecentOvers,
		RequiredRate:   item.RequiredRate,
		UpdatedAt:      item.UpdatedAt.UTC(),
	}
}
