package cli

import (
	"context"
	"fmt"

	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/spf13/cobra"
)

func newVehicleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Manage vehicles",
	}

	cmd.AddCommand(
		newVehicleAddCmd(app),
		newVehicleListCmd(app),
		newVehicleRemoveCmd(app),
	)

	return cmd
}

func newVehicleAddCmd(app *App) *cobra.Command {
	var client, makeName, model, year, registration string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a vehicle for a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, client)
			if err != nil {
				return err
			}
			v := &domain.Vehicle{
				ClientID:     clientID,
				Make:         makeName,
				Model:        model,
				Year:         year,
				Registration: registration,
			}
			if err := app.Vehicles.Create(ctx, v); err != nil {
				return err
			}
			fmt.Printf("Registered %s [%s]\n", v.Label(), formatter.TruncID(v.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Owner client ID")
	cmd.Flags().StringVar(&makeName, "make", "", "Make")
	cmd.Flags().StringVar(&model, "model", "", "Model")
	cmd.Flags().StringVar(&year, "year", "", "Model year")
	cmd.Flags().StringVar(&registration, "reg", "", "Registration / plate")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("make")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func newVehicleListCmd(app *App) *cobra.Command {
	var client string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var vehicles []*domain.Vehicle
			var err error
			if client != "" {
				clientID, rErr := resolveClientID(ctx, app, client)
				if rErr != nil {
					return rErr
				}
				vehicles, err = app.Vehicles.ListByClient(ctx, clientID)
			} else {
				vehicles, err = app.Vehicles.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(vehicles) == 0 {
				fmt.Println("No vehicles found.")
				return nil
			}

			clients, err := app.Clients.List(ctx)
			if err != nil {
				return err
			}
			owners := make(map[string]*domain.Client, len(clients))
			for _, c := range clients {
				owners[c.ID] = c
			}

			fmt.Println(formatter.FormatVehicleList(vehicles, owners))
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Only vehicles owned by this client")
	return cmd
}

func newVehicleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveVehicleID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Vehicles.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Vehicle removed.")
			return nil
		},
	}
}
