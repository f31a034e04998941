package calendar

import (
	"testing"
	"time"

	"github.com/izayahhudnut/detailerpro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngest_SkipsInvalidKeepsRest(t *testing.T) {
	jobs := []domain.Job{
		{ID: "ok", Title: "Detail", StartTime: time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), DurationHours: 2},
		{ID: "zero-dur", Title: "Broken", StartTime: time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), DurationHours: 0},
		{ID: "neg-dur", Title: "Broken", StartTime: time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), DurationHours: -1},
		{ID: "no-start", Title: "Broken", DurationHours: 2},
	}

	valid, skipped := Ingest(jobs)

	require.Len(t, valid, 1)
	assert.Equal(t, "ok", valid[0].ID)

	require.Len(t, skipped, 3)
	assert.ErrorIs(t, skipped[0].Reason, ErrNonPositiveDuration)
	assert.ErrorIs(t, skipped[1].Reason, ErrNonPositiveDuration)
	assert.ErrorIs(t, skipped[2].Reason, ErrZeroStartTime)
}

func TestIngest_SortsChronologically(t *testing.T) {
	jobs := []domain.Job{
		{ID: "late", StartTime: time.Date(2024, 3, 22, 9, 0, 0, 0, time.UTC), DurationHours: 1},
		{ID: "b", StartTime: time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), DurationHours: 1},
		{ID: "a", StartTime: time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), DurationHours: 1},
	}

	valid, _ := Ingest(jobs)

	require.Len(t, valid, 3)
	assert.Equal(t, []string{"a", "b", "late"}, []string{valid[0].ID, valid[1].ID, valid[2].ID},
		"ties break on ID so ordering is stable")
}

func TestIngest_EmptySnapshot(t *testing.T) {
	valid, skipped := Ingest(nil)
	assert.Empty(t, valid)
	assert.Empty(t, skipped)
}
