package cli

import (
	"context"
	"fmt"

	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/export"
	"github.com/spf13/cobra"
)

func newInvoiceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Generate invoices for completed jobs",
	}

	cmd.AddCommand(
		newInvoiceShowCmd(app),
		newInvoicePDFCmd(app),
	)

	return cmd
}

func newInvoiceShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <job>",
		Short: "Print an invoice for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			jobID, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			inv, err := app.Invoices.Generate(ctx, jobID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatInvoice(inv))
			return nil
		},
	}
}

func newInvoicePDFCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pdf <job>",
		Short: "Write an invoice PDF for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			jobID, err := resolveJobID(ctx, app, args[0])
			if err != nil {
				return err
			}
			inv, err := app.Invoices.Generate(ctx, jobID)
			if err != nil {
				return err
			}
			path := out
			if path == "" {
				path = fmt.Sprintf("invoice-%s.pdf", formatter.TruncID(jobID))
			}
			if err := export.WriteInvoicePDF(path, inv); err != nil {
				return fmt.Errorf("writing pdf: %w", err)
			}
			fmt.Printf("Wrote %s (total %s)\n", path, formatter.Money(inv.Total))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default invoice-<job>.pdf)")

	return cmd
}
