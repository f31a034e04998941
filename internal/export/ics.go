// Package export renders the shop schedule as an iCalendar feed so jobs can
// be subscribed to from phone and desktop calendar apps.
package export

import (
	"fmt"
	"io"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

const prodID = "-//detailerpro//shop schedule//EN"

// WriteICS serializes the given jobs as a VCALENDAR. Each job becomes one
// VEVENT with the job's UUID as UID, so re-exports update events in place
// instead of duplicating them.
func WriteICS(w io.Writer, details []*domain.JobDetail) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetName("Shop Schedule")

	for _, d := range details {
		ev := cal.AddEvent(d.ID)
		ev.SetSummary(eventSummary(d))
		ev.SetStartAt(d.StartTime.UTC())
		ev.SetEndAt(d.End().UTC())
		ev.SetDtStampTime(d.UpdatedAt.UTC())
		ev.SetLocation(d.Vehicle.Label())

		var desc []string
		if d.Description != "" {
			desc = append(desc, d.Description)
		}
		desc = append(desc,
			fmt.Sprintf("Client: %s", d.Client.FullName()),
			fmt.Sprintf("Assigned: %s", d.AssigneeLabel()),
			fmt.Sprintf("Status: %s", d.Status),
		)
		ev.SetDescription(strings.Join(desc, "\n"))
	}

	return cal.SerializeTo(w)
}

func eventSummary(d *domain.JobDetail) string {
	return fmt.Sprintf("%s (%s)", d.Title, d.Vehicle.Label())
}
