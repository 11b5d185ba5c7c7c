package dashboard

import (
	"testing"
	"time"
)

func scheduleFixture() []Match {
	day := func(d, h int) time.Time { return time.Date(2025, 4, d, h, 0, 0, 0, time.UTC) }
	return []Match{
		{ID: "1", Date: day(2, 14), Status: StatusCompleted},
		{ID: "2", Date: day(1, 10), Status: StatusCompleted},
		{ID: "3", Date: day(2, 18), Status: StatusLive},
		{ID: "4", Date: day(3, 14), Status: StatusUpcoming},
	}
}

func matchIDs(matches []Match) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestFilterSchedule(t *testing.T) {
	t.Parallel()

	matches := scheduleFixture()
	assertIDs(t, matchIDs(FilterSchedule(matches, FilterAll)), []string{"1", "2", "3", "4"})
	assertIDs(t, matchIDs(FilterSchedule(matches, FilterUpcoming)), []string{"4"})
	assertIDs(t, matchIDs(FilterSchedule(matches, FilterCompleted)), []string{"1", "2"})
}

func TestGroupByDate_FirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	groups := GroupByDate(scheduleFixture())
	if len(groups) != 3 {
		t.Fatalf("unexpected group count: %d", len(groups))
	}

	wantKeys := []string{"2025-04-02", "2025-04-01", "2025-04-03"}
	for i, key := range wantKeys {
		if groups[i].Key != key {
			t.Fatalf("group %d: got=%s want=%s", i, groups[i].Key, key)
		}
	}
	assertIDs(t, matchIDs(groups[0].Matches), []string{"1", "3"})

	if got := groups[0].Heading(); got != "Wednesday, April 2, 2025" {
		t.Fatalf("unexpected heading: %s", got)
	}
}

func TestParseScheduleFilter(t *testing.T) {
	t.Parallel()

	if got, err := ParseScheduleFilter(""); err != nil || got != FilterAll {
		t.Fatalf("expected default all, got=%s err=%v", got, err)
	}
	if got, err := ParseScheduleFilter("Completed"); err != nil || got != FilterCompleted {
		t.Fatalf("expected completed, got=%s err=%v", got, err)
	}
	if _, err := ParseScheduleFilter("live"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}
