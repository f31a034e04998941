package calendar

import "time"

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ValidGranularities is the canonical set of accepted view mode strings.
var ValidGranularities = map[string]bool{
	"day": true, "week": true, "month": true, "year": true,
}

// ViewState holds the anchor date and granularity the visible range is
// computed from. It is the only mutable piece of the calendar engine and is
// only ever changed through the navigation methods below.
type ViewState struct {
	Anchor      time.Time
	Granularity Granularity
}

// NewViewState returns the default state: anchored at now, week view.
func NewViewState(now time.Time) ViewState {
	return ViewState{Anchor: now, Granularity: GranularityWeek}
}

// Next advances the anchor by one unit of the active granularity.
func (s *ViewState) Next() {
	s.step(1)
}

// Previous moves the anchor back by one unit of the active granularity.
func (s *ViewState) Previous() {
	s.step(-1)
}

// Today resets the anchor to now without touching the granularity.
func (s *ViewState) Today(now time.Time) {
	s.Anchor = now
}

// SetGranularity switches the view mode. The anchor is untouched; the visible
// range recomputes around it.
func (s *ViewState) SetGranularity(g Granularity) {
	s.Granularity = g
}

func (s *ViewState) step(dir int) {
	switch s.Granularity {
	case GranularityDay:
		s.Anchor = s.Anchor.AddDate(0, 0, dir)
	case GranularityWeek:
		s.Anchor = s.Anchor.AddDate(0, 0, 7*dir)
	case GranularityMonth:
		s.Anchor = addMonthsClamped(s.Anchor, dir)
	case GranularityYear:
		s.Anchor = addYearsClamped(s.Anchor, dir)
	}
}

// addMonthsClamped adds calendar months, clamping the day-of-month to the
// target month's length instead of letting it overflow (Jan 31 + 1 month is
// Feb 28/29, not Mar 2).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	shifted := first.AddDate(0, months, 0)
	if last := daysIn(shifted.Year(), shifted.Month()); d > last {
		d = last
	}
	return time.Date(shifted.Year(), shifted.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func addYearsClamped(t time.Time, years int) time.Time {
	y, m, d := t.Date()
	if last := daysIn(y+years, m); d > last {
		d = last
	}
	return time.Date(y+years, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
