package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/domain"
)

// shopHuhTheme returns a custom huh theme using the formatter palette.
func shopHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runJobWizard walks through scheduling a job with a guided form.
func runJobWizard(ctx context.Context, app *App) error {
	vehicles, err := app.Vehicles.List(ctx)
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		return fmt.Errorf("no vehicles registered; add one with 'detailerpro vehicle add'")
	}
	clients, err := app.Clients.List(ctx)
	if err != nil {
		return err
	}
	owners := make(map[string]*domain.Client, len(clients))
	for _, c := range clients {
		owners[c.ID] = c
	}

	vehicleOptions := make([]huh.Option[string], 0, len(vehicles))
	for _, v := range vehicles {
		label := v.Label()
		if owner, ok := owners[v.ClientID]; ok {
			label = fmt.Sprintf("%s (%s)", v.Label(), owner.FullName())
		}
		vehicleOptions = append(vehicleOptions, huh.NewOption(label, v.ID))
	}

	assigneeOptions := []huh.Option[string]{huh.NewOption("Unassigned", "")}
	employees, err := app.Employees.List(ctx, false)
	if err != nil {
		return err
	}
	for _, e := range employees {
		assigneeOptions = append(assigneeOptions, huh.NewOption(e.Name, "e:"+e.ID))
	}
	crews, err := app.Crews.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range crews {
		assigneeOptions = append(assigneeOptions, huh.NewOption("Crew: "+c.Name, "c:"+c.ID))
	}

	templateOptions := []huh.Option[string]{huh.NewOption("No checklist", "")}
	templates, err := app.Templates.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range templates {
		templateOptions = append(templateOptions, huh.NewOption(t.Name, t.ID))
	}

	var (
		title      string
		vehicleID  string
		assignee   string
		templateID string
		startStr   = time.Now().Add(time.Hour).Truncate(time.Hour).Format(startTimeLayout)
		hoursStr   = "2"
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Job title").
				Value(&title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Which vehicle?").
				Options(vehicleOptions...).
				Value(&vehicleID),
			huh.NewSelect[string]().
				Title("Assigned to").
				Options(assigneeOptions...).
				Value(&assignee),
			huh.NewSelect[string]().
				Title("Checklist").
				Options(templateOptions...).
				Value(&templateID),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start (YYYY-MM-DD HH:MM)").
				Value(&startStr).
				Validate(func(s string) error {
					_, err := time.ParseInLocation(startTimeLayout, s, time.Local)
					return err
				}),
			huh.NewInput().
				Title("Duration in hours").
				Value(&hoursStr).
				Validate(func(s string) error {
					h, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if h <= 0 {
						return fmt.Errorf("must be positive")
					}
					return nil
				}),
		),
	).WithTheme(shopHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	start, err := time.ParseInLocation(startTimeLayout, startStr, time.Local)
	if err != nil {
		return err
	}
	hours, err := strconv.ParseFloat(hoursStr, 64)
	if err != nil {
		return err
	}

	j := &domain.Job{
		Title:         title,
		VehicleID:     vehicleID,
		StartTime:     start,
		DurationHours: hours,
	}
	if len(assignee) > 2 {
		id := assignee[2:]
		switch assignee[0] {
		case 'e':
			j.EmployeeID = &id
		case 'c':
			j.CrewID = &id
		}
	}
	if templateID != "" {
		j.TemplateID = &templateID
	}

	if err := app.Jobs.Create(ctx, j); err != nil {
		return err
	}
	fmt.Printf("Scheduled %s [%s] at %s\n", j.Title, formatter.TruncID(j.ID), formatter.HumanTime(j.StartTime))
	return nil
}
