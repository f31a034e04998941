package service

import (
	"context"
	"fmt"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/calendar"
	"github.com/izayahhudnut/detailerpro/internal/contract"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/izayahhudnut/detailerpro/internal/repository"
)

type scheduleService struct {
	jobs repository.JobRepo
	opts calendar.Options
	now  func() time.Time
}

func NewScheduleService(jobs repository.JobRepo, opts calendar.Options) ScheduleService {
	return &scheduleService{jobs: jobs, opts: opts, now: func() time.Time { return time.Now() }}
}

func (s *scheduleService) GetSchedule(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error) {
	if req.Anchor.IsZero() {
		return nil, fmt.Errorf("schedule anchor is required")
	}
	if !calendar.ValidGranularities[string(req.Granularity)] {
		return nil, fmt.Errorf("invalid granularity %q", req.Granularity)
	}

	from, to := visibleRange(req.Anchor, req.Granularity)
	details, err := s.jobs.ListDetailsWindow(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading schedule window: %w", err)
	}

	snapshot := make([]domain.Job, 0, len(details))
	byID := make(map[string]*domain.JobDetail, len(details))
	for _, d := range details {
		snapshot = append(snapshot, d.Job)
		byID[d.ID] = d
	}

	jobs, skipped := calendar.Ingest(snapshot)
	plan := calendar.Build(jobs, calendar.ViewState{Anchor: req.Anchor, Granularity: req.Granularity}, s.now(), s.opts)

	return &contract.ScheduleResponse{Plan: plan, Details: byID, Skipped: skipped}, nil
}

// GetSnapshot loads the full job list with display context. The interactive
// calendar loads once and recomputes layouts client-side as the user
// navigates; GetSnapshot is the refresh boundary.
func (s *scheduleService) GetSnapshot(ctx context.Context) (*contract.ScheduleSnapshot, error) {
	details, err := s.jobs.ListDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading schedule snapshot: %w", err)
	}

	raw := make([]domain.Job, 0, len(details))
	byID := make(map[string]*domain.JobDetail, len(details))
	for _, d := range details {
		raw = append(raw, d.Job)
		byID[d.ID] = d
	}

	jobs, skipped := calendar.Ingest(raw)
	return &contract.ScheduleSnapshot{Jobs: jobs, Details: byID, Skipped: skipped}, nil
}

// Layout positions an already-loaded snapshot for one view state. Pure
// recompute, no I/O; navigation calls this without touching the database.
func (s *scheduleService) Layout(snap *contract.ScheduleSnapshot, state calendar.ViewState) *contract.ScheduleResponse {
	plan := calendar.Build(snap.Jobs, state, s.now(), s.opts)
	return &contract.ScheduleResponse{Plan: plan, Details: snap.Details, Skipped: snap.Skipped}
}

// visibleRange is the half-open [from, to) interval the view can display.
// Month views cover whole grid weeks, so days bleeding in from adjacent
// months are included in the load.
func visibleRange(anchor time.Time, g calendar.Granularity) (time.Time, time.Time) {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	switch g {
	case calendar.GranularityDay:
		return day, day.AddDate(0, 0, 1)
	case calendar.GranularityWeek:
		start := calendar.WeekStart(day)
		return start, start.AddDate(0, 0, 7)
	case calendar.GranularityMonth:
		start := calendar.MonthGridStart(anchor)
		return start, calendar.MonthGridEnd(anchor).AddDate(0, 0, 1)
	case calendar.GranularityYear:
		start := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		return start, start.AddDate(1, 0, 0)
	default:
		return day, day.AddDate(0, 0, 1)
	}
}
