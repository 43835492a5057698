package domain

import "time"

// Area identifies a physical parking zone owning zero or more spaces
// Area names are globally unique
type Area struct {
	ID     int64
	Name   string
	Type   string
	Size   *string
	Color  *string
	Status string

	CreatedAt time.Time
	UpdatedAt time.Time
}
