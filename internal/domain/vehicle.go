package domain

import "time"

type Vehicle struct {
	ID           string
	ClientID     string
	Make         string
	Model        string
	Registration string
	Year         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Label returns a short display form, e.g. "Boeing 737-800 (N12345)".
func (v *Vehicle) Label() string {
	name := v.Make
	if v.Model != "" {
		if name != "" {
			name += " "
		}
		name += v.Model
	}
	if v.Registration != "" {
		name += " (" + v.Registration + ")"
	}
	return name
}
