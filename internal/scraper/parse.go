package scraper

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	"github.com/riskibarqy/ipl-dashboard/internal/usecase"
	"github.com/shopspring/decimal"
)

const (
	PathTeams     = "/teams"
	PathStandings = "/points-table"
	PathSchedule  = "/matches"
	PathLive      = "/"
)

var (
	leadingIntRegex     = regexp.MustCompile(`^[+-]?\d+`)
	leadingDecimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
	innerWhitespace     = regexp.MustCompile(`\s\s+`)
)

var matchDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"Mon, Jan 2, 2006",
	"Mon, 2 Jan 2006",
	"Monday, January 2, 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02/01/2006",
}

func parseTeams(doc *goquery.Document, base *url.URL) []usecase.ExternalTeam {
	out := make([]usecase.ExternalTeam, 0)
	doc.Find(".team-card").Each(func(_ int, card *goquery.Selection) {
		name := text(card.Find(".team-name"))
		short := text(card.Find(".team-short-name"))
		if short == "" {
			short = team.DeriveShortName(name)
		}

		var logo string
		if src, ok := card.Find("img").First().Attr("src"); ok {
			logo = resolveURL(base, src)
		}

		out = append(out, usecase.ExternalTeam{
			Name:      name,
			ShortName: short,
			LogoURL:   logo,
		})
	})
	return out
}

func parseStandings(doc *goquery.Document) []usecase.ExternalStanding {
	out := make([]usecase.ExternalStanding, 0)
	doc.Find(".points-table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cell := func(n int) string {
			return text(row.Find("td:nth-child(" + strconv.Itoa(n) + ")"))
		}

		out = append(out, usecase.ExternalStanding{
			TeamName:   cell(1),
			Played:     leadingInt(cell(2)),
			Won:        leadingInt(cell(3)),
			Lost:       leadingInt(cell(4)),
			Tied:       leadingInt(cell(5)),
			NoResult:   leadingInt(cell(6)),
			Points:     leadingInt(cell(7)),
			NetRunRate: leadingDecimal(cell(8)),
		})
	})
	return out
}

func parseSchedule(doc *goquery.Document) []usecase.ExternalMatch {
	out := make([]usecase.ExternalMatch, 0)
	doc.Find(".match-card").Each(func(_ int, card *goquery.Selection) {
		status := match.ClassifyStatus(text(card.Find(".match-status")))
		date, _ := parseMatchDate(text(card.Find(".match-date")))

		item := usecase.ExternalMatch{
			MatchNumber:  leadingInt(strings.TrimSpace(strings.ReplaceAll(text(card.Find(".match-number")), "Match", ""))),
			Date:         date,
			Time:         text(card.Find(".match-time")),
			Venue:        text(card.Find(".match-venue")),
			HomeTeamName: text(card.Find(".home-team")),
			AwayTeamName: text(card.Find(".away-team")),
			Status:       status,
		}
		if status == match.StatusCompleted {
			item.HomeTeamScore = text(card.Find(".home-team-score"))
			item.AwayTeamScore = text(card.Find(".away-team-score"))
			item.Result = text(card.Find(".match-result"))
		}
		out = append(out, item)
	})
	return out
}

// parseLive returns nil when the page has no live match element.
func parseLive(doc *goquery.Document) *usecase.ExternalLiveMatch {
	el := doc.Find(".live-match").First()
	if el.Length() == 0 {
		return nil
	}

	return &usecase.ExternalLiveMatch{
		Status:         livematch.StatusLive,
		HomeTeamName:   text(el.Find(".home-team")),
		AwayTeamName:   text(el.Find(".away-team")),
		HomeScore:      text(el.Find(".home-team-score")),
		AwayScore:      text(el.Find(".away-team-score")),
		Overs:          text(el.Find(".overs")),
		CurrentBatsmen: text(el.Find(".current-batsmen")),
		CurrentBowler:  text(el.Find(".current-bowler")),
		LastWicket:     text(el.Find(".last-wicket")),
		RecentOvers:    text(el.Find(".recent-overs")),
		RequiredRate:   text(el.Find(".required-rate")),
		Venue:          text(el.Find(".venue")),
	}
}

func text(sel *goquery.Selection) string {
	return innerWhitespace.ReplaceAllString(strings.TrimSpace(sel.Text()), " ")
}

// leadingInt parses the integer prefix of raw; anything unparseable is 0.
func leadingInt(raw string) int {
	v, err := strconv.Atoi(leadingIntRegex.FindString(strings.TrimSpace(raw)))
	if err != nil {
		return 0
	}
	return v
}

// leadingDecimal parses the signed decimal prefix of raw, so "+0.512" is 0.512.
func leadingDecimal(raw string) decimal.Decimal {
	prefix := strings.TrimPrefix(leadingDecimalRegex.FindString(strings.TrimSpace(raw)), "+")
	if prefix == "" || prefix == "-" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return v
}

func parseMatchDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range matchDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if base == nil {
		return parsed.String()
	}
	return base.ResolveReference(parsed).String()
}
