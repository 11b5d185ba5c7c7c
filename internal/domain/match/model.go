package match

import (
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
)

const (
	StatusUpcoming  = "UPCOMING"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
)

// Match is one fixture. ID is the match number as a string and stays stable across scrapes.
type Match struct {
	ID            string
	MatchNumber   int
	Date          time.Time
	Time          string
	Venue         string
	HomeTeamID    string
	AwayTeamID    string
	HomeTeam      team.Team
	AwayTeam      team.Team
	HomeTeamScore string
	AwayTeamScore string
	Result        string
	Status        string
}

func IDFromNumber(number int) string {
	return strconv.Itoa(number)
}

// ClassifyStatus maps scraped status text. "Live" is checked before "Result".
func ClassifyStatus(text string) string {
	switch {
	case strings.Contains(text, "Live"):
		return StatusLive
	case strings.Contains(text, "Result"):
		return StatusCompleted
	default:
		return StatusUpcoming
	}
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return true
	default:
		return false
	}
}
