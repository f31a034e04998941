package calendar

import (
	"errors"
	"sort"

	"github.com/izayahhudnut/detailerpro/internal/domain"
)

var (
	ErrNonPositiveDuration = errors.New("job duration must be positive")
	ErrZeroStartTime       = errors.New("job start time is unset")
)

// SkippedJob reports a job excluded from layout at the ingestion boundary.
type SkippedJob struct {
	JobID  string
	Title  string
	Reason error
}

// Ingest validates a raw job snapshot for layout. Jobs with a non-positive
// duration or an unset start time are skipped and reported rather than
// producing degenerate geometry downstream. Survivors are returned sorted
// chronologically (start time, then ID for stability) so every later pass
// over the snapshot visits jobs in a fixed order.
func Ingest(jobs []domain.Job) ([]domain.Job, []SkippedJob) {
	valid := make([]domain.Job, 0, len(jobs))
	var skipped []SkippedJob
	for _, j := range jobs {
		switch {
		case j.DurationHours <= 0:
			skipped = append(skipped, SkippedJob{JobID: j.ID, Title: j.Title, Reason: ErrNonPositiveDuration})
		case j.StartTime.IsZero():
			skipped = append(skipped, SkippedJob{JobID: j.ID, Title: j.Title, Reason: ErrZeroStartTime})
		default:
			valid = append(valid, j)
		}
	}
	sort.SliceStable(valid, func(a, b int) bool {
		if valid[a].StartTime.Equal(valid[b].StartTime) {
			return valid[a].ID < valid[b].ID
		}
		return valid[a].StartTime.Before(valid[b].StartTime)
	})
	return valid, skipped
}
