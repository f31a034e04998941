package formatter

import (
	"testing"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/calendar"
	"github.com/izayahhudnut/detailerpro/internal/contract"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/stretchr/testify/assert"
)

func scheduleResponse(t *testing.T, jobs []domain.Job, g calendar.Granularity, anchor time.Time) *contract.ScheduleResponse {
	t.Helper()
	clean, skipped := calendar.Ingest(jobs)
	plan := calendar.Build(clean, calendar.ViewState{Anchor: anchor, Granularity: g}, anchor, calendar.DefaultOptions())
	return &contract.ScheduleResponse{Plan: plan, Details: map[string]*domain.JobDetail{}, Skipped: skipped}
}

func TestFormatSchedule_WeekShowsJobAndEmptyDays(t *testing.T) {
	anchor := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{ID: "j1", Title: "Full detail", StartTime: time.Date(2024, 3, 19, 9, 0, 0, 0, time.UTC), DurationHours: 2},
	}

	out := FormatSchedule(scheduleResponse(t, jobs, calendar.GranularityWeek, anchor), anchor)

	assert.Contains(t, out, "WEEK OF MARCH 17, 2024")
	assert.Contains(t, out, "Tue Mar 19")
	assert.Contains(t, out, "Full detail")
	assert.Contains(t, out, "2h")
	// Days without jobs render as a dash, not 24 empty hour rows.
	assert.Contains(t, out, "-")
}

func TestFormatSchedule_DayMarksTruncatedSpans(t *testing.T) {
	anchor := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	// Starts the prior evening and runs into the anchor day.
	jobs := []domain.Job{
		{ID: "j1", Title: "Overnight wrap", StartTime: time.Date(2024, 3, 19, 22, 0, 0, 0, time.UTC), DurationHours: 6},
	}

	out := FormatSchedule(scheduleResponse(t, jobs, calendar.GranularityDay, anchor), anchor)

	assert.Contains(t, out, "WEDNESDAY, MARCH 20, 2024")
	assert.Contains(t, out, "Overnight wrap")
	assert.Contains(t, out, "↑")
}

func TestFormatSchedule_MonthListsBusyDaysOnly(t *testing.T) {
	anchor := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{ID: "j1", Title: "Ceramic coat", StartTime: time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC), DurationHours: 3},
	}

	out := FormatSchedule(scheduleResponse(t, jobs, calendar.GranularityMonth, anchor), anchor)

	assert.Contains(t, out, "MARCH 2024")
	assert.Contains(t, out, "Ceramic coat")
	assert.Contains(t, out, "10:00 AM")
}

func TestFormatSchedule_MonthEmpty(t *testing.T) {
	anchor := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	out := FormatSchedule(scheduleResponse(t, nil, calendar.GranularityMonth, anchor), anchor)

	assert.Contains(t, out, "No jobs this month.")
}

func TestFormatSchedule_SkippedJobsSurfaceAsWarnings(t *testing.T) {
	anchor := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{ID: "bad", Title: "No duration", StartTime: time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), DurationHours: 0},
	}

	out := FormatSchedule(scheduleResponse(t, jobs, calendar.GranularityWeek, anchor), anchor)

	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "No duration")
}
