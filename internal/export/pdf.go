package export

import (
	"fmt"

	"github.com/izayahhudnut/detailerpro/internal/contract"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// WriteInvoicePDF renders an invoice as an A4 PDF at path.
func WriteInvoicePDF(path string, inv *contract.Invoice) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Invoice", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(inv.IssuedAt.Format("January 2, 2006"), props.Text{
					Top:   2,
					Align: consts.Center,
					Size:  10,
				})
			})
		})
	})

	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Billed to: %s", inv.ClientName), props.Text{Top: 2, Size: 11})
		})
	})
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Vehicle: %s", inv.VehicleLabel), props.Text{Top: 2, Size: 11})
		})
	})
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(inv.JobTitle, props.Text{Top: 3, Style: consts.Bold, Size: 13})
		})
	})

	headers := []string{"Item", "Qty", "Unit", "Unit Cost", "Total"}
	rows := make([][]string, 0, len(inv.Lines))
	for _, line := range inv.Lines {
		rows = append(rows, []string{
			line.Description,
			fmt.Sprintf("%g", line.Quantity),
			line.Unit,
			fmt.Sprintf("$%.2f", line.UnitCost),
			fmt.Sprintf("$%.2f", line.Total),
		})
	}

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{5, 2, 1, 2, 2},
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{5, 2, 1, 2, 2},
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Labor: $%.2f", inv.LaborTotal), props.Text{
				Top:   3,
				Align: consts.Right,
				Size:  10,
			})
		})
	})
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Parts: $%.2f", inv.PartsTotal), props.Text{
				Top:   1,
				Align: consts.Right,
				Size:  10,
			})
		})
	})
	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Total due: $%.2f", inv.Total), props.Text{
				Top:   3,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  13,
			})
		})
	})

	return m.OutputFileAndClose(path)
}
