package formatter

import (
	"fmt"
	"strings"

	"github.com/izayahhudnut/detailerpro/internal/contract"
)

// FormatInvoice renders an invoice for the terminal.
func FormatInvoice(inv *contract.Invoice) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(inv.JobTitle) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CLIENT "), inv.ClientName))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("VEHICLE"), inv.VehicleLabel))
	b.WriteString(fmt.Sprintf("%s  %s\n\n", StyleDim.Render("ISSUED "), HumanDate(inv.IssuedAt)))

	headers := []string{"ITEM", "QTY", "UNIT COST", "TOTAL"}
	rows := make([][]string, 0, len(inv.Lines))
	for _, line := range inv.Lines {
		qty := fmt.Sprintf("%g %s", line.Quantity, line.Unit)
		rows = append(rows, []string{
			line.Description,
			qty,
			Money(line.UnitCost),
			Money(line.Total),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Labor"), Money(inv.LaborTotal)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Parts"), Money(inv.PartsTotal)))
	b.WriteString(Bold(fmt.Sprintf("Total %s", Money(inv.Total))) + "\n")

	return RenderBox("Invoice", b.String())
}
