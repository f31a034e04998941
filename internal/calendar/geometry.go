package calendar

import (
	"time"

	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// hoursPerDay is the vertical extent of one day column, in hour units.
const hoursPerDay = 24

// Fragment is the visual extent of a job within a single rendered day column.
// Offsets and heights are in hour units (one hour = one unit); the renderer
// scales them to whatever a row is worth on screen.
type Fragment struct {
	TopOffset float64
	Height    float64

	// TruncatedStart marks a fragment whose job began on an earlier day;
	// TruncatedEnd marks one whose job runs past this day's midnight.
	TruncatedStart bool
	TruncatedEnd   bool
}

// dayFragment computes the clipped extent of a job within one day column.
// Three cases: the job began on an earlier day (pinned to the top, height is
// whatever of it falls in this day), it runs past midnight (extends to the
// bottom), or it is fully contained. Height never exceeds the hours remaining
// below the top offset.
func dayFragment(j domain.Job, day time.Time) Fragment {
	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	end := j.End()

	var f Fragment
	switch {
	case j.StartTime.Before(dayStart):
		f.TopOffset = 0
		f.Height = end.Sub(dayStart).Hours()
		f.TruncatedStart = true
		f.TruncatedEnd = end.After(dayEnd)
	case end.After(dayEnd):
		f.TopOffset = float64(j.StartTime.Hour())
		f.Height = hoursPerDay - f.TopOffset
		f.TruncatedEnd = true
	default:
		f.TopOffset = float64(j.StartTime.Hour())
		f.Height = j.DurationHours
	}

	if max := hoursPerDay - f.TopOffset; f.Height > max {
		f.Height = max
		f.TruncatedEnd = true
	}
	return f
}
