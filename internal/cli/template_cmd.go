package cli

import (
	"context"
	"fmt"

	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage checklist templates",
	}

	cmd.AddCommand(
		newTemplateAddCmd(app),
		newTemplateListCmd(app),
		newTemplateRemoveCmd(app),
	)

	return cmd
}

func newTemplateAddCmd(app *App) *cobra.Command {
	var name, description string
	var steps []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a checklist template",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.ProgressTemplate{Name: name, Description: description}
			for _, s := range steps {
				t.Steps = append(t.Steps, domain.ProgressStep{Title: s})
			}
			if err := app.Templates.Create(context.Background(), t); err != nil {
				return err
			}
			fmt.Printf("Created template %s with %d steps [%s]\n", t.Name, len(t.Steps), formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringArrayVar(&steps, "step", nil, "Step title (repeatable, in order)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(context.Background())
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Println("No templates found.")
				return nil
			}
			fmt.Println(formatter.FormatTemplateList(templates))
			return nil
		},
	}
}

func newTemplateRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTemplateID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Templates.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Template removed.")
			return nil
		},
	}
}
