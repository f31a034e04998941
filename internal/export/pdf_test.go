package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteInvoicePDF_ProducesFile(t *testing.T) {
	inv := &contract.Invoice{
		JobID:        "j1",
		JobTitle:     "Full detail",
		ClientName:   "Dana Whitfield",
		VehicleLabel: "Honda Civic (ABC-123)",
		IssuedAt:     time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
		Lines: []contract.InvoiceLine{
			{Kind: contract.LineLabor, Description: "Labor (Jo Reyes)", Quantity: 2.5, Unit: "hr", UnitCost: 60, Total: 150},
			{Kind: contract.LineParts, Description: "Ceramic coating", Quantity: 2, Unit: "ea", UnitCost: 80, Total: 160},
		},
		LaborTotal: 150,
		PartsTotal: 160,
		Total:      310,
	}

	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, WriteInvoicePDF(path, inv))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}

func TestWriteInvoicePDF_EmptyLines(t *testing.T) {
	inv := &contract.Invoice{
		JobID:        "j2",
		JobTitle:     "Inspection",
		ClientName:   "Omar Haddad",
		VehicleLabel: "Sprinter Van",
		IssuedAt:     time.Now(),
	}
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, WriteInvoicePDF(path, inv))
}
