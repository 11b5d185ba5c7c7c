package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/valyala/bytebufferpool"
)

const noLiveMatchMessage = "No live matches at the moment."

// Renderer writes views as rounded tables. Each view reaches w in a single write.
type Renderer struct {
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func flush(w io.Writer, fill func(buf *bytebufferpool.ByteBuffer)) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fill(buf)
	_, err := w.Write(buf.B)
	return err
}

func (r *Renderer) Standings(w io.Writer, entries []PointsTableEntry, state SortState) error {
	sorted := SortStandings(entries, state)

	t := newTable()
	t.SetTitle(fmt.Sprintf("Points Table (sorted by %s %s)", state.Field, state.Direction))
	t.AppendHeader(table.Row{"", "#", "Team", "P", "W", "L", "T", "NR", "Pts", "NRR"})
	for i, entry := range sorted {
		marker := ""
		if i < PlayoffPositions {
			marker = "Q"
		}
		t.AppendRow(table.Row{
			marker,
			i + 1,
			entry.Team.Name,
			entry.Played,
			entry.Won,
			entry.Lost,
			entry.Tied,
			entry.NoResult,
			entry.Points,
			formatNRR(entry.NetRunRate),
		})
	}
	t.SetCaption("Q = playoff position")

	return flush(w, func(buf *bytebufferpool.ByteBuffer) {
		buf.WriteString(t.Render())
		buf.WriteString("\n")
	})
}

func (r *Renderer) Schedule(w io.Writer, matches []Match, filter ScheduleFilter) error {
	groups := GroupByDate(FilterSchedule(matches, filter))

	return flush(w, func(buf *bytebufferpool.ByteBuffer) {
		if len(groups) == 0 {
			buf.WriteString("No matches found.\n")
			return
		}
		for _, group := range groups {
			t := newTable()
			t.SetTitle(group.Heading())
			t.AppendHeader(table.Row{"Match", "Time", "Fixture", "Venue", "Status", "Result"})
			for _, m := range group.Matches {
				t.AppendRow(table.Row{
					m.MatchNumber,
					m.Time,
					fixtureLine(m),
					m.Venue,
					m.Status,
					m.Result,
				})
			}
			buf.WriteString(t.Render())
			buf.WriteString("\n")
		}
	})
}

func (r *Renderer) Upcoming(w io.Writer, matches []Match) error {
	return flush(w, func(buf *bytebufferpool.ByteBuffer) {
		if len(matches) == 0 {
			buf.WriteString("No upcoming matches.\n")
			return
		}
		t := newTable()
		t.SetTitle("Upcoming Matches")
		t.AppendHeader(table.Row{"Match", "Date", "Time", "Fixture", "Venue"})
		for _, m := range matches {
			t.AppendRow(table.Row{
				m.MatchNumber,
				m.Date.UTC().Format("Mon, Jan 2"),
				m.Time,
				m.HomeTeam.ShortName + " vs " + m.AwayTeam.ShortName,
				m.Venue,
			})
		}
		buf.WriteString(t.Render())
		buf.WriteString("\n")
	})
}

func (r *Renderer) Live(w io.Writer, live *LiveMatch) error {
	return flush(w, func(buf *bytebufferpool.ByteBuffer) {
		if live == nil {
			buf.WriteString(noLiveMatchMessage)
			buf.WriteString("\n")
			return
		}

		t := newTable()
		t.SetTitle(fmt.Sprintf("%s  %s vs %s", live.Status, teamAbbrev(live.HomeTeam), teamAbbrev(live.AwayTeam)))
		t.AppendRow(table.Row{live.HomeTeam, orDash(live.HomeScore)})
		t.AppendRow(table.Row{live.AwayTeam, orDash(live.AwayScore)})
		t.AppendSeparator()
		appendIfSet(t, "Overs", live.Overs)
		appendIfSet(t, "Batting", live.CurrentBatsmen)
		appendIfSet(t, "Bowling", live.CurrentBowler)
		appendIfSet(t, "Required rate", live.RequiredRate)
		appendIfSet(t, "Last wicket", live.LastWicket)
		appendIfSet(t, "Recent overs", live.RecentOvers)
		appendIfSet(t, "Venue", live.Venue)
		t.SetCaption("Updated " + timeAgo(r.now().Sub(live.UpdatedAt)))

		buf.WriteString(t.Render())
		buf.WriteString("\n")
	})
}

func (r *Renderer) Match(w io.Writer, m Match) error {
	t := newTable()
	t.SetTitle(fmt.Sprintf("Match %d", m.MatchNumber))
	t.AppendRow(table.Row{"Date", m.Date.UTC().Format("Monday, January 2, 2006")})
	t.AppendRow(table.Row{"Time", m.Time})
	t.AppendRow(table.Row{"Venue", m.Venue})
	t.AppendRow(table.Row{"Status", m.Status})
	t.AppendSeparator()
	t.AppendRow(table.Row{m.HomeTeam.Name, orDash(m.HomeTeamScore)})
	t.AppendRow(table.Row{m.AwayTeam.Name, orDash(m.AwayTeamScore)})
	appendIfSet(t, "Result", m.Result)

	return flush(w, func(buf *bytebufferpool.ByteBuffer) {
		buf.WriteString(t.Render())
		buf.WriteString("\n")
	})
}

func (r *Renderer) Teams(w io.Writer, teams []Team) error {
	t := newTable()
	t.SetTitle("Teams")
	t.AppendHeader(table.Row{"Short", "Name", "Logo"})
	for _, team := range teams {
		t.AppendRow(table.Row{team.ShortName, team.Name, team.LogoURL})
	}

	return flush(w, func(buf *bytebufferpool.ByteBuffer) {
		buf.WriteString(t.Render())
		buf.WriteString("\n")
	})
}

func fixtureLine(m Match) string {
	home := m.HomeTeam.ShortName
	away := m.AwayTeam.ShortName
	if m.HomeTeamScore != "" || m.AwayTeamScore != "" {
		return fmt.Sprintf("%s %s vs %s %s", home, m.HomeTeamScore, away, m.AwayTeamScore)
	}
	return home + " vs " + away
}

func appendIfSet(t table.Writer, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	t.AppendRow(table.Row{label, value})
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func teamAbbrev(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

func formatNRR(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if v > 0 {
		return "+" + s
	}
	return s
}

func timeAgo(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return "less than a minute ago"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return "about " + plural(int(d/time.Hour), "hour") + " ago"
	default:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
