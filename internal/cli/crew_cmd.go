package cli

import (
	"context"
	"fmt"

	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/spf13/cobra"
)

func newCrewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crew",
		Short: "Manage crews",
	}

	cmd.AddCommand(
		newCrewAddCmd(app),
		newCrewListCmd(app),
		newCrewMemberCmd(app),
		newCrewRemoveCmd(app),
	)

	return cmd
}

func newCrewAddCmd(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a crew",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Crew{Name: name, Description: description}
			if err := app.Crews.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Created crew %s [%s]\n", c.Name, formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Crew name")
	cmd.Flags().StringVar(&description, "description", "", "What this crew handles")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCrewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List crews and members",
		RunE: func(cmd *cobra.Command, args []string) error {
			crews, err := app.Crews.List(context.Background())
			if err != nil {
				return err
			}
			if len(crews) == 0 {
				fmt.Println("No crews found.")
				return nil
			}
			fmt.Println(formatter.FormatCrewList(crews))
			return nil
		},
	}
}

func newCrewMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage crew membership",
	}

	add := &cobra.Command{
		Use:   "add <crew> <employee>",
		Short: "Add an employee to a crew",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			crewID, err := resolveCrewID(ctx, app, args[0])
			if err != nil {
				return err
			}
			employeeID, err := resolveEmployeeID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Crews.AddMember(ctx, crewID, employeeID); err != nil {
				return err
			}
			fmt.Println("Member added.")
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <crew> <employee>",
		Short: "Remove an employee from a crew",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			crewID, err := resolveCrewID(ctx, app, args[0])
			if err != nil {
				return err
			}
			employeeID, err := resolveEmployeeID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Crews.RemoveMember(ctx, crewID, employeeID); err != nil {
				return err
			}
			fmt.Println("Member removed.")
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newCrewRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a crew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCrewID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Crews.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Crew removed.")
			return nil
		},
	}
}
