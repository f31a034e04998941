package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/izayahhudnut/detailerpro/internal/calendar"
	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/contract"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/izayahhudnut/detailerpro/internal/export"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "View the shop calendar",
	}

	cmd.AddCommand(
		newScheduleShowCmd(app),
		newScheduleViewCmd(app),
		newScheduleExportCmd(app),
	)

	return cmd
}

func parseGranularity(s string) (calendar.Granularity, error) {
	g := calendar.Granularity(s)
	if !calendar.ValidGranularities[s] {
		return "", fmt.Errorf("invalid view %q (day, week, month, year)", s)
	}
	return g, nil
}

func parseAnchor(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var on, view string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := parseAnchor(on)
			if err != nil {
				return err
			}
			granularity, err := parseGranularity(view)
			if err != nil {
				return err
			}

			resp, err := app.Schedule.GetSchedule(context.Background(), contract.ScheduleRequest{
				Anchor:      anchor,
				Granularity: granularity,
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatSchedule(resp, anchor))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&view, "view", "week", "Granularity: day, week, month, year")

	return cmd
}

func newScheduleViewCmd(app *App) *cobra.Command {
	var on, view string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the schedule interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("interactive view requires a terminal; use 'schedule show'")
			}
			anchor, err := parseAnchor(on)
			if err != nil {
				return err
			}
			granularity, err := parseGranularity(view)
			if err != nil {
				return err
			}

			model := newScheduleModel(app, anchor, granularity)
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&view, "view", "week", "Starting granularity: day, week, month, year")

	return cmd
}

func newScheduleExportCmd(app *App) *cobra.Command {
	var on, view, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the visible schedule as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := parseAnchor(on)
			if err != nil {
				return err
			}
			granularity, err := parseGranularity(view)
			if err != nil {
				return err
			}

			resp, err := app.Schedule.GetSchedule(context.Background(), contract.ScheduleRequest{
				Anchor:      anchor,
				Granularity: granularity,
			})
			if err != nil {
				return err
			}

			details := make([]*domain.JobDetail, 0, len(resp.Details))
			for _, d := range resp.Details {
				details = append(details, d)
			}
			sort.Slice(details, func(i, j int) bool {
				return details[i].StartTime.Before(details[j].StartTime)
			})

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := export.WriteICS(w, details); err != nil {
				return err
			}
			if out != "" {
				fmt.Printf("Wrote %d events to %s\n", len(details), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&view, "view", "month", "Window: day, week, month, year")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}
