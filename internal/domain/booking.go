package domain

import "time"

// BookingStatus represents the status of a parking booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of one parking space for one vehicle
// over a half-open time interval [StartTime, EndTime)
type Booking struct {
	ID        int64
	UserID    int64
	VehicleID int64
	SpaceID   int64
	StartTime time.Time
	EndTime   time.Time
	QRCodeURL string
	Status    BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its space
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusCompleted
}

// IsFinished returns true if the booking's interval has fully passed at now
// Finished bookings stay in storage for audit but never participate in
// conflict checks
func (b *Booking) IsFinished(now time.Time) bool {
	return !b.EndTime.After(now)
}

// Range returns the booking's time interval
func (b *Booking) Range() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}

// ConflictsWith reports whether the booking's interval overlaps r
// Cancelled and completed bookings never conflict
func (b *Booking) ConflictsWith(r TimeRange) bool {
	if !b.IsActive() {
		return false
	}
	return b.Range().Overlaps(r)
}
