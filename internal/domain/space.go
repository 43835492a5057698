package domain

import "time"

// SpaceStatus represents the operational status of a parking space
type SpaceStatus string

const (
	SpaceAvailable   SpaceStatus = "available"
	SpaceOccupied    SpaceStatus = "occupied"
	SpaceReserved    SpaceStatus = "reserved"
	SpaceMaintenance SpaceStatus = "maintenance"
)

// Space represents one bookable physical parking slot
// Space numbers are globally unique across all areas
type Space struct {
	ID     int64
	Number string
	AreaID int64
	QRCode string
	Status SpaceStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the space can accept new bookings
func (s *Space) IsBookable() bool {
	return s.Status != SpaceMaintenance
}

// ValidSpaceStatus reports whether status is one of the known space statuses
func ValidSpaceStatus(status SpaceStatus) bool {
	switch status {
	case SpaceAvailable, SpaceOccupied, SpaceReserved, SpaceMaintenance:
		return true
	default:
		return false
	}
}
