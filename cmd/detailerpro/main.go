package main

import (
	"fmt"
	"os"

	"github.com/izayahhudnut/detailerpro/internal/calendar"
	"github.com/izayahhudnut/detailerpro/internal/cli"
	"github.com/izayahhudnut/detailerpro/internal/config"
	"github.com/izayahhudnut/detailerpro/internal/db"
	"github.com/izayahhudnut/detailerpro/internal/repository"
	"github.com/izayahhudnut/detailerpro/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("locating config: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	clientRepo := repository.NewSQLiteClientRepo(database)
	vehicleRepo := repository.NewSQLiteVehicleRepo(database)
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	crewRepo := repository.NewSQLiteCrewRepo(database)
	inventoryRepo := repository.NewSQLiteInventoryRepo(database)
	jobRepo := repository.NewSQLiteJobRepo(database)
	templateRepo := repository.NewSQLiteTemplateRepo(database)
	todoRepo := repository.NewSQLiteTodoRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	calOpts := calendar.Options{
		MonthCellCap: cfg.Calendar.MonthCellCap,
		YearCellCap:  cfg.Calendar.YearCellCap,
	}

	app := &cli.App{
		Clients:   service.NewClientService(clientRepo),
		Vehicles:  service.NewVehicleService(vehicleRepo, clientRepo),
		Employees: service.NewEmployeeService(employeeRepo),
		Crews:     service.NewCrewService(crewRepo, employeeRepo),
		Inventory: service.NewInventoryService(inventoryRepo),
		Jobs:      service.NewJobService(jobRepo, vehicleRepo, uow),
		Templates: service.NewTemplateService(templateRepo),
		Todos:     service.NewTodoService(todoRepo, jobRepo),
		Schedule:  service.NewScheduleService(jobRepo, calOpts),
		Invoices:  service.NewInvoiceService(jobRepo, inventoryRepo),
		Import:    service.NewImportService(uow),
	}

	// Detect interactive terminal for the wizard and calendar TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
