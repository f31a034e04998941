package calendar

import (
	"time"

	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// startOfDay returns midnight of t's calendar day, in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// overlapsHour reports whether the job belongs to the (day, hour) bucket:
// either it starts in exactly that hour on that day, or its [start, end)
// interval spans across the hour. Spanning jobs legitimately match every hour
// they cover; that is what produces continuation bars in the hour grid.
func overlapsHour(j domain.Job, day time.Time, hour int) bool {
	slot := startOfDay(day).Add(time.Duration(hour) * time.Hour)
	if sameDay(j.StartTime, day) && j.StartTime.Hour() == hour {
		return true
	}
	return j.StartTime.Before(slot) && j.End().After(slot)
}

// jobsForHour filters the snapshot down to the (day, hour) bucket.
func jobsForHour(jobs []domain.Job, day time.Time, hour int) []domain.Job {
	var out []domain.Job
	for _, j := range jobs {
		if overlapsHour(j, day, hour) {
			out = append(out, j)
		}
	}
	return out
}

// jobsStartingOn filters to jobs whose start falls on the given calendar day.
// Month (and coarser) views deliberately show a multi-day job only on its
// start day; there is no spanning logic at day resolution.
func jobsStartingOn(jobs []domain.Job, day time.Time) []domain.Job {
	var out []domain.Job
	for _, j := range jobs {
		if sameDay(j.StartTime, day) {
			out = append(out, j)
		}
	}
	return out
}

// jobsInMonth filters to jobs starting in the given month.
func jobsInMonth(jobs []domain.Job, year int, month time.Month) []domain.Job {
	var out []domain.Job
	for _, j := range jobs {
		if j.StartTime.Year() == year && j.StartTime.Month() == month {
			out = append(out, j)
		}
	}
	return out
}

// touchesDay reports whether any part of the job's [start, end) interval
// falls on the given calendar day. Used by the hour views to place each
// job once per day column it crosses.
func touchesDay(j domain.Job, day time.Time) bool {
	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	return j.StartTime.Before(dayEnd) && j.End().After(dayStart)
}
