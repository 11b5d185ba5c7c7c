package dashboard

import (
	"fmt"
	"strings"
	"time"
)

type ScheduleFilter string

const (
	FilterAll       ScheduleFilter = "all"
	FilterUpcoming  ScheduleFilter = "upcoming"
	FilterCompleted ScheduleFilter = "completed"
)

func ParseScheduleFilter(raw string) (ScheduleFilter, error) {
	switch ScheduleFilter(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterUpcoming:
		return FilterUpcoming, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("unknown schedule filter %q", raw)
}

// FilterSchedule keeps input order. Live matches only show under FilterAll.
func FilterSchedule(matches []Match, filter ScheduleFilter) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		switch filter {
		case FilterUpcoming:
			if m.Status != StatusUpcoming {
				continue
			}
		case FilterCompleted:
			if m.Status != StatusCompleted {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

type DateGroup struct {
	Key     string
	Date    time.Time
	Matches []Match
}

func (g DateGroup) Heading() string {
	return g.Date.Format("Monday, January 2, 2006")
}

// GroupByDate buckets matches by UTC calendar day, groups ordered by first appearance.
func GroupByDate(matches []Match) []DateGroup {
	groups := make([]DateGroup, 0)
	index := make(map[string]int)
	for _, m := range matches {
		day := m.Date.UTC()
		key := day.Format(time.DateOnly)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{
				Key:  key,
				Date: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			})
		}
		groups[i].Matches = append(groups[i].Matches, m)
	}
	return groups
}
