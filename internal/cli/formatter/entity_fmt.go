package formatter

import (
	"fmt"
	"strings"

	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// FormatClientList renders clients as a table inside a box.
func FormatClientList(clients []*domain.Client) string {
	headers := []string{"ID", "NAME", "EMAIL", "PHONE", "CITY"}
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		city := c.City
		if city != "" && c.State != "" {
			city += ", " + c.State
		}
		rows = append(rows, []string{
			Dim(TruncID(c.ID)),
			Bold(c.FullName()),
			c.Email,
			c.Phone,
			city,
		})
	}
	return RenderBox("Clients", RenderTable(headers, rows))
}

// FormatVehicleList renders vehicles, with owner names when supplied.
func FormatVehicleList(vehicles []*domain.Vehicle, owners map[string]*domain.Client) string {
	headers := []string{"ID", "VEHICLE", "YEAR", "REG", "OWNER"}
	rows := make([][]string, 0, len(vehicles))
	for _, v := range vehicles {
		owner := ""
		if c, ok := owners[v.ClientID]; ok {
			owner = c.FullName()
		}
		rows = append(rows, []string{
			Dim(TruncID(v.ID)),
			Bold(v.Make + " " + v.Model),
			v.Year,
			v.Registration,
			owner,
		})
	}
	return RenderBox("Vehicles", RenderTable(headers, rows))
}

// FormatEmployeeList renders the staff roster.
func FormatEmployeeList(employees []*domain.Employee) string {
	headers := []string{"ID", "NAME", "SPECIALIZATION", "RATE", "STATUS"}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		status := StyleGreen.Render(string(e.Status))
		if e.Status == domain.EmployeeInactive {
			status = Dim(string(e.Status))
		}
		rows = append(rows, []string{
			Dim(TruncID(e.ID)),
			Bold(e.Name),
			e.Specialization,
			Money(e.CostPerHour) + Dim("/hr"),
			status,
		})
	}
	return RenderBox("Employees", RenderTable(headers, rows))
}

// FormatCrewList renders crews with their members and combined rate.
func FormatCrewList(crews []*domain.CrewWithMembers) string {
	var b strings.Builder
	for i, c := range crews {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", Bold(c.Name), Dim(TruncID(c.ID)), Dim(fmt.Sprintf("(%s/hr combined)", Money(c.HourlyCost())))))
		if c.Description != "" {
			b.WriteString("  " + Dim(c.Description) + "\n")
		}
		if len(c.Members) == 0 {
			b.WriteString(Dim("  no members") + "\n")
			continue
		}
		for _, m := range c.Members {
			b.WriteString(fmt.Sprintf("  · %s %s\n", m.Name, Dim(Money(m.CostPerHour)+"/hr")))
		}
	}
	return RenderBox("Crews", b.String())
}

// FormatInventoryList renders stock levels, flagging low items.
func FormatInventoryList(items []*domain.InventoryItem) string {
	headers := []string{"ID", "ITEM", "STOCK", "MIN", "UNIT COST", "LOCATION"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			Dim(TruncID(item.ID)),
			Bold(item.Name),
			StockIndicator(item),
			fmt.Sprintf("%g", item.MinimumStock),
			Money(item.CostPerUnit),
			item.Location,
		})
	}
	return RenderBox("Inventory", RenderTable(headers, rows))
}

// FormatTemplateList renders checklist templates and their steps.
func FormatTemplateList(templates []*domain.ProgressTemplate) string {
	var b strings.Builder
	for i, t := range templates {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Bold(t.Name), Dim(TruncID(t.ID))))
		for _, s := range t.Steps {
			b.WriteString(fmt.Sprintf("  %d. %s\n", s.OrderNumber, s.Title))
		}
	}
	return RenderBox("Templates", b.String())
}

// FormatJobList renders jobs as a table.
func FormatJobList(jobs []*domain.Job) string {
	headers := []string{"ID", "TITLE", "START", "DURATION", "STATUS"}
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{
			Dim(TruncID(j.ID)),
			Bold(j.Title),
			HumanTime(j.StartTime),
			Hours(j.DurationHours),
			StatusBadge(j.Status),
		})
	}
	return RenderBox("Jobs", RenderTable(headers, rows))
}

// FormatJobInspect renders the full job card: schedule, people, checklist,
// and inventory usage.
func FormatJobInspect(d *domain.JobDetail, steps []domain.ProgressStep) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(d.Title) + " " + StatusBadge(d.Status) + "\n")
	if d.Description != "" {
		b.WriteString(Dim(d.Description) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("WHEN    "), fmt.Sprintf("%s for %s", HumanTime(d.StartTime), Hours(d.DurationHours))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("VEHICLE "), d.Vehicle.Label()))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CLIENT  "), d.Client.FullName()))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ASSIGNED"), d.AssigneeLabel()))

	if len(steps) > 0 {
		done := make(map[string]bool, len(d.Todos))
		for _, todo := range d.Todos {
			done[todo.StepID] = todo.Completed
		}
		b.WriteString("\n" + Header("Checklist") + "\n")
		for _, s := range steps {
			mark := StyleDim.Render("[ ]")
			if done[s.ID] {
				mark = StyleGreen.Render("[x]")
			}
			b.WriteString(fmt.Sprintf("%s %d. %s\n", mark, s.OrderNumber, s.Title))
		}
	}

	if len(d.Usage) > 0 {
		b.WriteString("\n" + Header("Materials") + "\n")
		var total float64
		for _, u := range d.Usage {
			total += u.Cost()
			b.WriteString(fmt.Sprintf("  %g @ %s  %s\n", u.Quantity, Money(u.CostAtTime), Dim(u.UsedAt.Format("Jan 2"))))
		}
		b.WriteString(Bold(fmt.Sprintf("  total %s", Money(total))) + "\n")
	}

	return RenderBox("", b.String())
}
