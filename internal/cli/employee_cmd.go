package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
	}

	cmd.AddCommand(
		newEmployeeAddCmd(app),
		newEmployeeListCmd(app),
		newEmployeeDeactivateCmd(app),
		newEmployeeRemoveCmd(app),
	)

	return cmd
}

func newEmployeeAddCmd(app *App) *cobra.Command {
	var name, email, phone, specialization, hired, certs string
	var rate float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := &domain.Employee{
				Name:           name,
				Email:          email,
				Phone:          phone,
				Specialization: specialization,
				CostPerHour:    rate,
			}
			if hired != "" {
				d, err := time.Parse("2006-01-02", hired)
				if err != nil {
					return fmt.Errorf("invalid hire date %q: %w", hired, err)
				}
				e.HireDate = &d
			}
			if certs != "" {
				for _, c := range strings.Split(certs, ",") {
					if c = strings.TrimSpace(c); c != "" {
						e.Certifications = append(e.Certifications, c)
					}
				}
			}
			if err := app.Employees.Create(context.Background(), e); err != nil {
				return err
			}
			fmt.Printf("Added employee %s [%s]\n", e.Name, formatter.TruncID(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&specialization, "specialization", "", "Specialization")
	cmd.Flags().StringVar(&hired, "hired", "", "Hire date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&certs, "certs", "", "Comma-separated certifications")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly cost in dollars")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEmployeeListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Employees.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(employees) == 0 {
				fmt.Println("No employees found.")
				return nil
			}
			fmt.Println(formatter.FormatEmployeeList(employees))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive employees")
	return cmd
}

func newEmployeeDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Mark an employee inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEmployeeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Employees.GetByID(ctx, id)
			if err != nil {
				return err
			}
			e.Status = domain.EmployeeInactive
			if err := app.Employees.Update(ctx, e); err != nil {
				return err
			}
			fmt.Printf("%s is now inactive.\n", e.Name)
			return nil
		},
	}
}

func newEmployeeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEmployeeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Employees.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Employee removed.")
			return nil
		},
	}
}
