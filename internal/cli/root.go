// Package cli wires the command tree: entity management commands, the
// schedule views, and the interactive calendar.
package cli

import (
	"github.com/izayahhudnut/detailerpro/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Clients   service.ClientService
	Vehicles  service.VehicleService
	Employees service.EmployeeService
	Crews     service.CrewService
	Inventory service.InventoryService
	Jobs      service.JobService
	Templates service.TemplateService
	Todos     service.TodoService
	Schedule  service.ScheduleService
	Invoices  service.InvoiceService
	Import    service.ImportService

	// IsInteractive reports whether stdin is a terminal; wizards and the
	// calendar TUI require it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "detailerpro" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "detailerpro",
		Short: "Detailing shop scheduler and job tracker",
	}

	root.AddCommand(
		newClientCmd(app),
		newVehicleCmd(app),
		newEmployeeCmd(app),
		newCrewCmd(app),
		newInventoryCmd(app),
		newJobCmd(app),
		newTemplateCmd(app),
		newScheduleCmd(app),
		newInvoiceCmd(app),
		newImportCmd(app),
	)

	return root
}
