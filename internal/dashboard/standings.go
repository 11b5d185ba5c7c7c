package dashboard

import (
	"fmt"
	"sort"
	"strings"
)

type SortField string

const (
	SortByPlayed     SortField = "played"
	SortByWon        SortField = "won"
	SortByLost       SortField = "lost"
	SortByTied       SortField = "tied"
	SortByNoResult   SortField = "noResult"
	SortByPoints     SortField = "points"
	SortByNetRunRate SortField = "netRunRate"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// PlayoffPositions is how many top rows are highlighted as qualifying.
const PlayoffPositions = 4

type SortState struct {
	Field     SortField
	Direction SortDirection
}

func DefaultSortState() SortState {
	return SortState{Field: SortByPoints, Direction: Descending}
}

// Toggle flips the direction when field is already selected, otherwise selects
// field in descending order.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == Descending {
			return SortState{Field: field, Direction: Ascending}
		}
		return SortState{Field: field, Direction: Descending}
	}
	return SortState{Field: field, Direction: Descending}
}

func ParseSortField(raw string) (SortField, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, field := range []SortField{SortByPlayed, SortByWon, SortByLost, SortByTied, SortByNoResult, SortByPoints, SortByNetRunRate} {
		if strings.ToLower(string(field)) == normalized {
			return field, nil
		}
	}
	switch normalized {
	case "", "pts":
		return SortByPoints, nil
	case "nrr":
		return SortByNetRunRate, nil
	case "nr":
		return SortByNoResult, nil
	}
	return "", fmt.Errorf("unknown sort field %q", raw)
}

func ParseSortDirection(raw string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "desc":
		return Descending, nil
	case "asc":
		return Ascending, nil
	}
	return "", fmt.Errorf("unknown sort order %q", raw)
}

// SortStandings returns a sorted copy. Ties on points fall back to net run rate,
// highest first, whatever the selected direction.
func SortStandings(entries []PointsTableEntry, state SortState) []PointsTableEntry {
	out := make([]PointsTableEntry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := standingValue(out[i], state.Field), standingValue(out[j], state.Field)
		if a != b {
			if state.Direction == Ascending {
				return a < b
			}
			return a > b
		}
		if state.Field == SortByPoints {
			return out[i].NetRunRate > out[j].NetRunRate
		}
		return false
	})
	return out
}

func standingValue(entry PointsTableEntry, field SortField) float64 {
	switch field {
	case SortByPlayed:
		return float64(entry.Played)
	case SortByWon:
		return float64(entry.Won)
	case SortByLost:
		return float64(entry.Lost)
	case SortByTied:
		return float64(entry.Tied)
	case SortByNoResult:
		return float64(entry.NoResult)
	case SortByNetRunRate:
		return entry.NetRunRate
	default:
		return float64(entry.Points)
	}
}
