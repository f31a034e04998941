package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewState_Defaults(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 30, 0, 0, time.UTC)
	s := NewViewState(now)
	assert.Equal(t, now, s.Anchor)
	assert.Equal(t, GranularityWeek, s.Granularity)
}

func TestViewState_NextPreviousRoundTrip(t *testing.T) {
	anchors := []time.Time{
		time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, g := range []Granularity{GranularityDay, GranularityWeek, GranularityMonth, GranularityYear} {
		for _, anchor := range anchors {
			// Feb 29 cannot survive a month/year step in either direction.
			if anchor.Day() == 29 && anchor.Month() == time.February && g != GranularityDay && g != GranularityWeek {
				continue
			}
			s := ViewState{Anchor: anchor, Granularity: g}
			s.Next()
			s.Previous()
			assert.Equal(t, anchor, s.Anchor, "granularity %s anchor %s", g, anchor)
		}
	}
}

func TestViewState_MonthRollsOverYearBoundary(t *testing.T) {
	s := ViewState{
		Anchor:      time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		Granularity: GranularityMonth,
	}
	s.Previous()
	assert.Equal(t, time.December, s.Anchor.Month())
	assert.Equal(t, 2023, s.Anchor.Year())

	s.Next()
	assert.Equal(t, time.January, s.Anchor.Month())
	assert.Equal(t, 2024, s.Anchor.Year())
}

func TestViewState_MonthStepClampsEndOfMonth(t *testing.T) {
	s := ViewState{
		Anchor:      time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC),
		Granularity: GranularityMonth,
	}
	s.Next()
	// 2024 is a leap year: Jan 31 clamps to Feb 29, never Mar 2.
	assert.Equal(t, time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC), s.Anchor)
}

func TestViewState_Dec31MonthRoundTrip(t *testing.T) {
	anchor := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	s := ViewState{Anchor: anchor, Granularity: GranularityMonth}
	s.Next()
	require.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), s.Anchor)
	s.Previous()
	assert.Equal(t, anchor, s.Anchor)
}

func TestViewState_YearTripleStepRoundTrip(t *testing.T) {
	anchor := time.Date(2024, 7, 4, 15, 0, 0, 0, time.UTC)
	s := ViewState{Anchor: anchor, Granularity: GranularityYear}
	for i := 0; i < 3; i++ {
		s.Next()
	}
	for i := 0; i < 3; i++ {
		s.Previous()
	}
	assert.Equal(t, anchor, s.Anchor)
}

func TestViewState_TodayIgnoresPriorNavigation(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	s := NewViewState(now)
	s.SetGranularity(GranularityMonth)
	for i := 0; i < 5; i++ {
		s.Next()
	}
	s.SetGranularity(GranularityDay)
	s.Previous()
	s.Previous()

	s.Today(now)
	assert.Equal(t, now, s.Anchor)
	assert.Equal(t, GranularityDay, s.Granularity, "today must not touch granularity")
}

func TestViewState_SetGranularityKeepsAnchor(t *testing.T) {
	anchor := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	s := ViewState{Anchor: anchor, Granularity: GranularityWeek}
	s.SetGranularity(GranularityYear)
	assert.Equal(t, anchor, s.Anchor)
	assert.Equal(t, GranularityYear, s.Granularity)
}
