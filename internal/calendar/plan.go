package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// Options are display tuning knobs, not structural invariants. Cell caps
// bound how many jobs a month/year cell lists before collapsing the rest
// into an overflow count.
type Options struct {
	MonthCellCap int
	YearCellCap  int
}

func DefaultOptions() Options {
	return Options{MonthCellCap: 3, YearCellCap: 5}
}

// PositionedJob is one job reference placed in a bucket. Fragment geometry is
// only meaningful for hour-resolution (day/week) buckets.
type PositionedJob struct {
	Job      domain.Job
	Fragment Fragment
}

// Bucket is a single time slot of the plan: an hour of a day column, a day
// cell of the month grid, or a month cell of the year grid.
type Bucket struct {
	Label string
	Date  time.Time // start of the slot
	Hour  int       // hour of day for day/week buckets, -1 otherwise

	// InAnchorMonth is false for the adjacent-month padding days the month
	// grid needs to stay whole-week aligned; renderers dim those cells.
	InAnchorMonth bool
	IsToday       bool

	Jobs []PositionedJob
	More int // jobs hidden past the cell cap
}

// Plan is the fully positioned output of one layout pass. It is recomputed
// from scratch on every navigation or snapshot change; nothing in it is
// retained between passes.
type Plan struct {
	Granularity Granularity
	Buckets     []Bucket
}

// Build lays out the job snapshot for the given view state. The jobs slice is
// expected to have passed through Ingest; Build itself is a pure function and
// will happily lay out whatever it is given. now is only used to flag today's
// cells.
func Build(jobs []domain.Job, state ViewState, now time.Time, opts Options) Plan {
	switch state.Granularity {
	case GranularityDay:
		return buildDay(jobs, state.Anchor, now)
	case GranularityWeek:
		return buildWeek(jobs, state.Anchor, now)
	case GranularityMonth:
		return buildMonth(jobs, state.Anchor, now, opts)
	case GranularityYear:
		return buildYear(jobs, state.Anchor, now, opts)
	default:
		return Plan{Granularity: state.Granularity}
	}
}

// WeekStart returns the Sunday on or before t, at midnight.
func WeekStart(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// MonthGridStart returns the Sunday on or before the 1st of t's month.
func MonthGridStart(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// MonthGridEnd returns the Saturday on or after the last day of t's month,
// so the grid is always a whole number of weeks.
func MonthGridEnd(t time.Time) time.Time {
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
	return last.AddDate(0, 0, 6-int(last.Weekday()))
}

func buildDay(jobs []domain.Job, anchor, now time.Time) Plan {
	plan := Plan{Granularity: GranularityDay}
	plan.Buckets = hourBuckets(jobs, startOfDay(anchor), now)
	return plan
}

func buildWeek(jobs []domain.Job, anchor, now time.Time) Plan {
	plan := Plan{Granularity: GranularityWeek}
	day := WeekStart(anchor)
	for i := 0; i < 7; i++ {
		plan.Buckets = append(plan.Buckets, hourBuckets(jobs, day, now)...)
		day = day.AddDate(0, 0, 1)
	}
	return plan
}

// hourBuckets lays out one day column as 24 hour buckets. Each job touching
// the day is placed exactly once, in the bucket of its clipped start hour;
// the fragment's geometry is relative to the whole day, so a two-hour job
// occupies hour buckets below it by extent, not by duplication.
func hourBuckets(jobs []domain.Job, day, now time.Time) []Bucket {
	buckets := make([]Bucket, hoursPerDay)
	for h := range buckets {
		buckets[h] = Bucket{
			Label:         hourLabel(h),
			Date:          day,
			Hour:          h,
			InAnchorMonth: true,
			IsToday:       sameDay(day, now),
		}
	}
	for _, j := range jobs {
		if !touchesDay(j, day) {
			continue
		}
		frag := dayFragment(j, day)
		h := int(math.Floor(frag.TopOffset))
		if h < 0 {
			h = 0
		}
		if h >= hoursPerDay {
			h = hoursPerDay - 1
		}
		buckets[h].Jobs = append(buckets[h].Jobs, PositionedJob{Job: j, Fragment: frag})
	}
	return buckets
}

func buildMonth(jobs []domain.Job, anchor, now time.Time, opts Options) Plan {
	plan := Plan{Granularity: GranularityMonth}
	day := MonthGridStart(anchor)
	end := MonthGridEnd(anchor)
	for !day.After(end) {
		b := Bucket{
			Label:         day.Format("Jan 2"),
			Date:          day,
			Hour:          -1,
			InAnchorMonth: day.Month() == anchor.Month() && day.Year() == anchor.Year(),
			IsToday:       sameDay(day, now),
		}
		placeCapped(&b, jobsStartingOn(jobs, day), opts.MonthCellCap)
		plan.Buckets = append(plan.Buckets, b)
		day = day.AddDate(0, 0, 1)
	}
	return plan
}

func buildYear(jobs []domain.Job, anchor, now time.Time, opts Options) Plan {
	plan := Plan{Granularity: GranularityYear}
	for m := time.January; m <= time.December; m++ {
		first := time.Date(anchor.Year(), m, 1, 0, 0, 0, 0, anchor.Location())
		b := Bucket{
			Label:         first.Format("Jan"),
			Date:          first,
			Hour:          -1,
			InAnchorMonth: true,
			IsToday:       m == now.Month() && anchor.Year() == now.Year(),
		}
		placeCapped(&b, jobsInMonth(jobs, anchor.Year(), m), opts.YearCellCap)
		plan.Buckets = append(plan.Buckets, b)
	}
	return plan
}

// placeCapped fills a coarse bucket with at most limit jobs in snapshot
// order, recording the overflow. limit <= 0 means unlimited.
func placeCapped(b *Bucket, jobs []domain.Job, limit int) {
	for i, j := range jobs {
		if limit > 0 && i >= limit {
			b.More = len(jobs) - limit
			break
		}
		b.Jobs = append(b.Jobs, PositionedJob{Job: j})
	}
}

func hourLabel(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}
