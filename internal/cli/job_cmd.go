package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/spf13/cobra"
)

const startTimeLayout = "2006-01-02 15:04"

func newJobCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage jobs",
	}

	cmd.AddCommand(
		newJobAddCmd(app),
		newJobListCmd(app),
		newJobInspectCmd(app),
		newJobStatusCmd(app),
		newJobUseCmd(app),
		newJobTodoCmd(app),
		newJobRemoveCmd(app),
	)

	return cmd
}

func newJobAddCmd(app *App) *cobra.Command {
	var title, description, vehicle, employee, crew, template, start string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a job",
		Long: `Schedule a job for a vehicle.

With no flags on an interactive terminal, walks through a guided form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// No flags on a TTY: run the wizard instead.
			if title == "" && vehicle == "" && app.interactive() {
				return runJobWizard(ctx, app)
			}

			startTime, err := time.ParseInLocation(startTimeLayout, start, time.Local)
			if err != nil {
				return fmt.Errorf("invalid start %q (expected YYYY-MM-DD HH:MM): %w", start, err)
			}
			vehicleID, err := resolveVehicleID(ctx, app, vehicle)
			if err != nil {
				return err
			}

			j := &domain.Job{
				Title:         title,
				Description:   description,
				VehicleID:     vehicleID,
				StartTime:     startTime,
				DurationHours: hours,
			}
			if employee != "" {
				id, err := resolveEmployeeID(ctx, app, employee)
				if err != nil {
					return err
				}
				j.EmployeeID = &id
			}
			if crew != "" {
				id, err := resolveCrewID(ctx, app, crew)
				if err != nil {
					return err
				}
				j.CrewID = &id
			}
			if template != "" {
				id, err := resolveTemplateID(ctx, app, template)
				if err != nil {
					return err
				}
				j.TemplateID = &id
			}

			if err := app.Jobs.Create(ctx, j); err != nil {
				return err
			}
			fmt.Printf("Scheduled %s [%s] at %s\n", j.Title, formatter.TruncID(j.ID), formatter.HumanTime(j.StartTime))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Job title")
	cmd.Flags().StringVar(&description, "description", "", "Details")
	cmd.Flags().StringVar(&vehicle, "vehicle", "", "Vehicle ID")
	cmd.Flags().StringVar(&employee, "employee", "", "Assigned employee ID")
	cmd.Flags().StringVar(&crew, "crew", "", "Assigned crew ID")
	cmd.Flags().StringVar(&template, "template", "", "Checklist template ID")
	cmd.Flags().StringVar(&start, "start", "", "Start (YYYY-MM-DD HH:MM, local time)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Duration in hours")

	return cmd
}

func newJobListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := app.Jobs.List(context.Background())
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				fmt.Println("No jobs found.")
				return nil
			}
			fmt.Println(formatter.FormatJobList(jobs))
			return nil
		},
	}
}

func newJobInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show a job with checklist and materials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			detail, err := app.Jobs.GetDetail(ctx, id)
			if err != nil {
				return err
			}

			var steps []domain.ProgressStep
			if detail.TemplateID != nil {
				tmpl, err := app.Templates.GetByID(ctx, *detail.TemplateID)
				if err == nil {
					steps = tmpl.Steps
				}
			}

			fmt.Println(formatter.FormatJobInspect(detail, steps))
			return nil
		},
	}
}

func newJobStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set job status (not-started, in-progress, qa, done)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			status := domain.JobStatus(args[1])
			if err := app.Jobs.SetStatus(ctx, id, status); err != nil {
				return err
			}
			fmt.Printf("Status set to %s.\n", status)
			return nil
		},
	}
}

func newJobUseCmd(app *App) *cobra.Command {
	var quantity float64

	cmd := &cobra.Command{
		Use:   "use <job> <item>",
		Short: "Record inventory used on a job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			jobID, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Jobs.RecordUsage(ctx, jobID, itemID, quantity); err != nil {
				return err
			}
			item, err := app.Inventory.GetByID(ctx, itemID)
			if err != nil {
				return err
			}
			fmt.Printf("Used %g %s of %s; %g remaining.\n", quantity, item.Unit, item.Name, item.Quantity)
			if item.LowStock() {
				fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("⚠ %s is at or below its reorder threshold", item.Name)))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&quantity, "qty", 0, "Quantity used")
	_ = cmd.MarkFlagRequired("qty")

	return cmd
}

func newJobTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Work the job checklist",
	}

	toggle := func(completed bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			jobID, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stepID, err := resolveStepID(ctx, app, jobID, args[1])
			if err != nil {
				return err
			}
			todo, err := app.Todos.Toggle(ctx, jobID, stepID, completed)
			if err != nil {
				return err
			}
			if todo.Completed {
				fmt.Println("Step checked off.")
			} else {
				fmt.Println("Step reopened.")
			}
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "done <job> <step>",
			Short: "Check off a checklist step",
			Args:  cobra.ExactArgs(2),
			RunE:  toggle(true),
		},
		&cobra.Command{
			Use:   "undo <job> <step>",
			Short: "Reopen a checklist step",
			Args:  cobra.ExactArgs(2),
			RunE:  toggle(false),
		},
	)

	return cmd
}

// resolveStepID accepts a step number (1-based within the job's template) or
// a step UUID/prefix.
func resolveStepID(ctx context.Context, app *App, jobID, input string) (string, error) {
	job, err := app.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return "", err
	}
	if job.TemplateID == nil {
		return "", fmt.Errorf("job has no checklist template")
	}
	tmpl, err := app.Templates.GetByID(ctx, *job.TemplateID)
	if err != nil {
		return "", err
	}

	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(tmpl.Steps) {
		return tmpl.Steps[n-1].ID, nil
	}

	ids := make([]string, 0, len(tmpl.Steps))
	for _, s := range tmpl.Steps {
		ids = append(ids, s.ID)
	}
	return matchID("step", input, ids)
}

func newJobRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Jobs.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Job removed.")
			return nil
		},
	}
}
