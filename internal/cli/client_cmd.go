package cli

import (
	"context"
	"fmt"

	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientInspectCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var first, last, email, phone, street, city, state, zip string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Client{
				FirstName: first,
				LastName:  last,
				Email:     email,
				Phone:     phone,
				Street:    street,
				City:      city,
				State:     state,
				ZipCode:   zip,
			}
			if err := app.Clients.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Created client %s [%s]\n", c.FullName(), formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name")
	cmd.Flags().StringVar(&last, "last", "", "Last name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&street, "street", "", "Street address")
	cmd.Flags().StringVar(&city, "city", "", "City")
	cmd.Flags().StringVar(&state, "state", "", "State")
	cmd.Flags().StringVar(&zip, "zip", "", "ZIP code")
	_ = cmd.MarkFlagRequired("first")

	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(context.Background())
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}
			fmt.Println(formatter.FormatClientList(clients))
			return nil
		},
	}
}

func newClientInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show a client and their vehicles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			client, err := app.Clients.GetByID(ctx, id)
			if err != nil {
				return err
			}
			vehicles, err := app.Vehicles.ListByClient(ctx, id)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Bold(client.FullName()))
			if client.Email != "" {
				fmt.Println(formatter.Dim(client.Email))
			}
			if client.Phone != "" {
				fmt.Println(formatter.Dim(client.Phone))
			}
			if len(vehicles) > 0 {
				owners := map[string]*domain.Client{client.ID: client}
				fmt.Println(formatter.FormatVehicleList(vehicles, owners))
			}
			return nil
		},
	}
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Client removed.")
			return nil
		},
	}
}
