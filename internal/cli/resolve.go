package cli

import (
	"context"
	"fmt"
	"strings"
)

// matchID resolves user input against a set of known IDs: exact match first,
// then unique prefix. Copy-pasting a truncated ID from a list view works.
func matchID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveClientID(ctx context.Context, app *App, input string) (string, error) {
	clients, err := app.Clients.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	return matchID("client", input, ids)
}

func resolveVehicleID(ctx context.Context, app *App, input string) (string, error) {
	vehicles, err := app.Vehicles.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		ids = append(ids, v.ID)
	}
	return matchID("vehicle", input, ids)
}

func resolveEmployeeID(ctx context.Context, app *App, input string) (string, error) {
	employees, err := app.Employees.List(ctx, true)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	return matchID("employee", input, ids)
}

func resolveCrewID(ctx context.Context, app *App, input string) (string, error) {
	crews, err := app.Crews.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(crews))
	for _, c := range crews {
		ids = append(ids, c.ID)
	}
	return matchID("crew", input, ids)
}

func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	items, err := app.Inventory.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(items))
	for _, i := range items {
		ids = append(ids, i.ID)
	}
	return matchID("inventory item", input, ids)
}

func resolveJobID(ctx context.Context, app *App, input string) (string, error) {
	jobs, err := app.Jobs.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return matchID("job", input, ids)
}

func resolveTemplateID(ctx context.Context, app *App, input string) (string, error) {
	templates, err := app.Templates.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(templates))
	for _, t := range templates {
		ids = append(ids, t.ID)
	}
	return matchID("template", input, ids)
}
