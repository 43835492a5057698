package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_ConflictsWith(t *testing.T) {
	candidate := NewTimeRange(ts(10, 0), ts(12, 0))

	tests := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{
			name:    "активное бронирование с пересечением конфликтует",
			booking: Booking{StartTime: ts(9, 0), EndTime: ts(11, 0), Status: StatusActive},
			want:    true,
		},
		{
			name:    "ожидающее бронирование с пересечением конфликтует",
			booking: Booking{StartTime: ts(11, 0), EndTime: ts(13, 0), Status: StatusPending},
			want:    true,
		},
		{
			name:    "отмененное бронирование не конфликтует даже при пересечении",
			booking: Booking{StartTime: ts(9, 0), EndTime: ts(13, 0), Status: StatusCancelled},
			want:    false,
		},
		{
			name:    "завершенное бронирование не конфликтует даже при пересечении",
			booking: Booking{StartTime: ts(9, 0), EndTime: ts(13, 0), Status: StatusCompleted},
			want:    false,
		},
		{
			name:    "активное бронирование без пересечения не конфликтует",
			booking: Booking{StartTime: ts(12, 0), EndTime: ts(14, 0), Status: StatusActive},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.ConflictsWith(candidate))
		})
	}
}

func TestBooking_IsFinished(t *testing.T) {
	b := Booking{StartTime: ts(9, 0), EndTime: ts(11, 0), Status: StatusActive}

	assert.False(t, b.IsFinished(ts(10, 0)))
	assert.True(t, b.IsFinished(ts(11, 0)))
	assert.True(t, b.IsFinished(ts(12, 0)))
}
