// Package contract defines the request/response shapes exchanged between the
// service layer and its callers (CLI commands and the interactive calendar).
package contract

import (
	"time"

	"github.com/izayahhudnut/detailerpro/internal/calendar"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// ScheduleRequest asks for a laid-out calendar around an anchor date.
type ScheduleRequest struct {
	Anchor      time.Time
	Granularity calendar.Granularity
}

// ScheduleSnapshot is a fully loaded job list ready for client-side layout.
// The interactive calendar holds one and recomputes plans over it as the
// user navigates; replacing the snapshot is the only way its data changes.
type ScheduleSnapshot struct {
	// Jobs have already passed ingestion: validated and chronologically
	// sorted.
	Jobs    []domain.Job
	Details map[string]*domain.JobDetail
	Skipped []calendar.SkippedJob
}

// ScheduleResponse carries the positioned plan plus everything the renderer
// needs that the layout engine itself doesn't know about.
type ScheduleResponse struct {
	Plan calendar.Plan

	// Details maps job ID to its display context (vehicle, client, assignee).
	Details map[string]*domain.JobDetail

	// Skipped lists jobs excluded at the validation boundary; the CLI
	// surfaces them as warnings rather than aborting the render.
	Skipped []calendar.SkippedJob
}
