package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/calendar"
	"github.com/izayahhudnut/detailerpro/internal/contract"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// FormatSchedule renders a laid-out schedule for the terminal. The anchor is
// only used for the heading; all placement comes from the plan itself.
func FormatSchedule(resp *contract.ScheduleResponse, anchor time.Time) string {
	var b strings.Builder

	switch resp.Plan.Granularity {
	case calendar.GranularityDay:
		b.WriteString(Header(anchor.Format("Monday, January 2, 2006")))
		b.WriteString("\n")
		b.WriteString(formatDayColumn(resp.Plan.Buckets, resp.Details))
	case calendar.GranularityWeek:
		b.WriteString(Header("Week of " + weekOf(anchor).Format("January 2, 2006")))
		b.WriteString("\n")
		b.WriteString(formatWeek(resp.Plan.Buckets, resp.Details))
	case calendar.GranularityMonth:
		b.WriteString(Header(anchor.Format("January 2006")))
		b.WriteString("\n")
		b.WriteString(formatMonth(resp.Plan.Buckets))
	case calendar.GranularityYear:
		b.WriteString(Header(anchor.Format("2006")))
		b.WriteString("\n")
		b.WriteString(formatYear(resp.Plan.Buckets))
	}

	if len(resp.Skipped) > 0 {
		b.WriteString("\n")
		for _, s := range resp.Skipped {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("⚠ skipped %q: %v", s.Title, s.Reason)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func weekOf(t time.Time) time.Time {
	return calendar.WeekStart(t)
}

// formatDayColumn renders 24 hour rows. Hours without jobs collapse into a
// dim gap marker so a mostly empty day stays short.
func formatDayColumn(buckets []calendar.Bucket, details map[string]*domain.JobDetail) string {
	var b strings.Builder
	gap := false
	for _, bucket := range buckets {
		if len(bucket.Jobs) == 0 {
			gap = true
			continue
		}
		if gap {
			b.WriteString(StyleDim.Render("      ⋮"))
			b.WriteString("\n")
			gap = false
		}
		for i, pj := range bucket.Jobs {
			label := fmt.Sprintf("%5s", bucket.Label)
			if i > 0 {
				label = "     "
			}
			b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(label), jobLine(pj, details)))
		}
	}
	if b.Len() == 0 {
		return Dim("No jobs scheduled.") + "\n"
	}
	return b.String()
}

// jobLine renders one positioned job with its span and truncation markers.
func jobLine(pj calendar.PositionedJob, details map[string]*domain.JobDetail) string {
	title := Bold(pj.Job.Title)
	span := fmt.Sprintf("%gh", pj.Fragment.Height)

	var marks string
	if pj.Fragment.TruncatedStart {
		marks += "↑"
	}
	if pj.Fragment.TruncatedEnd {
		marks += "↓"
	}
	if marks != "" {
		marks = " " + StyleYellow.Render(marks)
	}

	line := fmt.Sprintf("%s %s%s", title, Dim(span), marks)
	if d, ok := details[pj.Job.ID]; ok {
		line += Dim(" · "+d.Vehicle.Label()) + " " + StatusBadge(pj.Job.Status)
	}
	return line
}

// formatWeek renders seven day sections. Week buckets arrive as 7 runs of 24
// hour buckets.
func formatWeek(buckets []calendar.Bucket, details map[string]*domain.JobDetail) string {
	var b strings.Builder
	for day := 0; day*24 < len(buckets); day++ {
		dayBuckets := buckets[day*24 : (day+1)*24]
		date := dayBuckets[0].Date

		heading := date.Format("Mon Jan 2")
		if dayBuckets[0].IsToday {
			heading = StyleHeader.Render(heading + " (today)")
		} else {
			heading = Bold(heading)
		}
		b.WriteString(heading)
		b.WriteString("\n")

		busy := false
		for _, bucket := range dayBuckets {
			if len(bucket.Jobs) > 0 {
				busy = true
				break
			}
		}
		if !busy {
			b.WriteString(Dim("  -") + "\n")
			continue
		}
		b.WriteString(formatDayColumn(dayBuckets, details))
	}
	return b.String()
}

// formatMonth renders the whole-week month grid as one row per day that has
// jobs, plus dim markers for adjacent-month days.
func formatMonth(buckets []calendar.Bucket) string {
	var b strings.Builder
	any := false
	for _, bucket := range buckets {
		if len(bucket.Jobs) == 0 {
			continue
		}
		any = true

		label := bucket.Label
		switch {
		case bucket.IsToday:
			label = StyleHeader.Render(label + " (today)")
		case !bucket.InAnchorMonth:
			label = Dim(label)
		default:
			label = Bold(label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		for _, pj := range bucket.Jobs {
			start := pj.Job.StartTime.Format("3:04 PM")
			b.WriteString(fmt.Sprintf("  %s %s %s\n", Dim(start), pj.Job.Title, Dim(fmt.Sprintf("(%gh)", pj.Job.DurationHours))))
		}
		if bucket.More > 0 {
			b.WriteString(Dim(fmt.Sprintf("  +%d more", bucket.More)))
			b.WriteString("\n")
		}
	}
	if !any {
		return Dim("No jobs this month.") + "\n"
	}
	return b.String()
}

func formatYear(buckets []calendar.Bucket) string {
	var b strings.Builder
	for _, bucket := range buckets {
		label := bucket.Label
		if bucket.IsToday {
			label = StyleHeader.Render(label)
		} else {
			label = Bold(label)
		}

		if len(bucket.Jobs) == 0 {
			b.WriteString(fmt.Sprintf("%s  %s\n", label, Dim("-")))
			continue
		}

		titles := make([]string, 0, len(bucket.Jobs))
		for _, pj := range bucket.Jobs {
			titles = append(titles, pj.Job.Title)
		}
		line := strings.Join(titles, Dim(", "))
		if bucket.More > 0 {
			line += Dim(fmt.Sprintf("  +%d more", bucket.More))
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", label, line))
	}
	return b.String()
}
