package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTruncID(t *testing.T) {
	assert.Equal(t, "550e8400", TruncID("550e8400-e29b-41d4-a716-446655440000"))
	assert.Equal(t, "short", TruncID("short"))
}

func TestMoneyAndHours(t *testing.T) {
	assert.Equal(t, "$150.00", Money(150))
	assert.Equal(t, "$3.50", Money(3.5))
	assert.Equal(t, "2.5h", Hours(2.5))
	assert.Equal(t, "4h", Hours(4))
}

func TestHumanFormats(t *testing.T) {
	ts := time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 20, 2024", HumanDate(ts))
	assert.Equal(t, "Mar 20, 2024 9:30 AM", HumanTime(ts))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "QTY"},
		[][]string{
			{"Wax", "3"},
			{"Microfiber towels", "24"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Wax")
	assert.Contains(t, lines[3], "Microfiber towels")
	// Second column starts at the same offset on every row.
	assert.Equal(t, strings.Index(lines[2], "3"), strings.Index(lines[3], "24"))
}

func TestStatusBadge(t *testing.T) {
	assert.Contains(t, StatusBadge(domain.JobInProgress), "in-progress")
	assert.Contains(t, StatusBadge(domain.JobDone), "done")
}

func TestStockIndicator(t *testing.T) {
	low := &domain.InventoryItem{Quantity: 1, MinimumStock: 5, Unit: "bottle"}
	ok := &domain.InventoryItem{Quantity: 10, MinimumStock: 5, Unit: "bottle"}

	assert.Contains(t, StockIndicator(low), "(low)")
	assert.NotContains(t, StockIndicator(ok), "(low)")
}
