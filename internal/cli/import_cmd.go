package cli

import (
	"context"
	"fmt"

	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a shop snapshot from a JSON file",
		Long: `Import clients, vehicles, employees, crews, inventory, templates and
jobs from a JSON snapshot. The snapshot is validated as a whole before
anything is written; a single invalid record rejects the entire file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportSnapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Imported"))
			rows := []struct {
				label string
				count int
			}{
				{"Clients", result.Clients},
				{"Vehicles", result.Vehicles},
				{"Employees", result.Employees},
				{"Crews", result.Crews},
				{"Inventory items", result.Inventory},
				{"Templates", result.Templates},
				{"Jobs", result.Jobs},
			}
			for _, r := range rows {
				fmt.Printf("  %-16s %d\n", r.label, r.count)
			}
			return nil
		},
	}
}
