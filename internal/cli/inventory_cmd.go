package cli

import (
	"context"
	"fmt"

	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/spf13/cobra"
)

func newInventoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Manage shop inventory",
	}

	cmd.AddCommand(
		newInventoryAddCmd(app),
		newInventoryListCmd(app),
		newInventoryRestockCmd(app),
		newInventoryLowCmd(app),
		newInventoryRemoveCmd(app),
	)

	return cmd
}

func newInventoryAddCmd(app *App) *cobra.Command {
	var name, itemType, description, unit, location string
	var quantity, minStock, cost float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an inventory item",
		RunE: func(cmd *cobra.Command, args []string) error {
			item := &domain.InventoryItem{
				Name:         name,
				Type:         itemType,
				Description:  description,
				Quantity:     quantity,
				MinimumStock: minStock,
				Unit:         unit,
				Location:     location,
				CostPerUnit:  cost,
			}
			if err := app.Inventory.Create(context.Background(), item); err != nil {
				return err
			}
			fmt.Printf("Added %s [%s]\n", item.Name, formatter.TruncID(item.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&itemType, "type", "", "Item category")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Float64Var(&quantity, "qty", 0, "Starting quantity")
	cmd.Flags().Float64Var(&minStock, "min", 0, "Reorder threshold")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit of measure")
	cmd.Flags().StringVar(&location, "location", "", "Storage location")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Cost per unit in dollars")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newInventoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Inventory.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No inventory items found.")
				return nil
			}
			fmt.Println(formatter.FormatInventoryList(items))
			return nil
		},
	}
}

func newInventoryRestockCmd(app *App) *cobra.Command {
	var quantity float64

	cmd := &cobra.Command{
		Use:   "restock <id>",
		Short: "Add stock to an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Inventory.Restock(ctx, id, quantity); err != nil {
				return err
			}
			item, err := app.Inventory.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s now at %g %s.\n", item.Name, item.Quantity, item.Unit)
			return nil
		},
	}

	cmd.Flags().Float64Var(&quantity, "qty", 0, "Quantity to add")
	_ = cmd.MarkFlagRequired("qty")

	return cmd
}

func newInventoryLowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "low",
		Short: "List items at or below their reorder threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Inventory.LowStock(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("Nothing is low on stock.")
				return nil
			}
			fmt.Println(formatter.FormatInventoryList(items))
			return nil
		},
	}
}

func newInventoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Inventory.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Item removed.")
			return nil
		},
	}
}
