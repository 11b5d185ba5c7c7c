package scraper

import (
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	"github.com/riskibarqy/ipl-dashboard/internal/fallback"
	"github.com/riskibarqy/ipl-dashboard/internal/usecase"
)

// The snapshot references teams by id; extraction results carry names, so every
// conversion resolves ids through the document's own team list.

func fallbackTeams(doc fallback.Document) []usecase.ExternalTeam {
	teams := doc.TeamList()
	out := make([]usecase.ExternalTeam, 0, len(teams))
	for _, t := range teams {
		out = append(out, usecase.ExternalTeam{
			Name:      t.Name,
			ShortName: t.ShortName,
			LogoURL:   t.LogoURL,
		})
	}
	return out
}

func fallbackStandings(doc fallback.Document) []usecase.ExternalStanding {
	teams := team.IndexByID(doc.TeamList())
	out := make([]usecase.ExternalStanding, 0, len(doc.PointsTable))
	for _, p := range doc.PointsTable {
		out = append(out, usecase.ExternalStanding{
			TeamName:   teams[p.TeamID].Name,
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

func fallbackSchedule(doc fallback.Document) []usecase.ExternalMatch {
	teams := team.IndexByID(doc.TeamList())
	out := make([]usecase.ExternalMatch, 0, len(doc.Matches))
	for _, m := range doc.Matches {
		out = append(out, usecase.ExternalMatch{
			MatchNumber:   m.MatchNumber,
			Date:          m.Date.UTC(),
			Time:          m.Time,
			Venue:         m.Venue,
			HomeTeamName:  teams[m.HomeTeamID].Name,
			AwayTeamName:  teams[m.AwayTeamID].Name,
			HomeTeamScore: m.HomeTeamScore,
			AwayTeamScore: m.AwayTeamScore,
			Result:        m.Result,
			Status:        m.Status,
		})
	}
	return out
}

func fallbackLive(doc fallback.Document) *usecase.ExternalLiveMatch {
	live, ok := doc.Live()
	if !ok {
		return nil
	}
	return &usecase.ExternalLiveMatch{
		Status:         live.Status,
		HomeTeamName:   live.HomeTeam,
		AwayTeamName:   live.AwayTeam,
		HomeScore:      live.HomeScore,
		AwayScore:      live.AwayScore,
		Venue:          live.Venue,
		Overs:          live.Overs,
		CurrentBatsmen: live.CurrentBatsmen,
		CurrentBowler:  live.CurrentBowler,
		LastWicket:     live.LastWicket,
		RecentOvers:    live.RecentOvers,
		RequiredRate:   live.RequiredRate,
	}
}
