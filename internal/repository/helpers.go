package repository

import (
	"database/sql"
	"strings"
	"time"
)

// scanner is satisfied by both *sql.Row and *sql.Rows, so each repo needs a
// single scan helper for gets and lists.
type scanner interface {
	Scan(dest ...any) error
}

// parseNullableTime parses a sql.NullString into a *time.Time using the given
// layout. Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite
// storage: SQL NULL for nil, the formatted string otherwise.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableStringToValue converts a *string to SQL NULL or its value.
func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// nullStringToPtr converts a sql.NullString to a *string, treating empty as nil.
func nullStringToPtr(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// certsSep separates certification entries in the employees table.
const certsSep = "\x1f"

func joinCerts(certs []string) string {
	return strings.Join(certs, certsSep)
}

func splitCerts(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, certsSep)
}
