package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"pending to cancelled", StatusPending, StatusCancelled, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to rejected", StatusConfirmed, StatusRejected, false},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"rejected is terminal", StatusRejected, StatusConfirmed, false},
		{"cancelled is terminal", StatusCancelled, StatusCompleted, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"same status is not a transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusRejected}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"two days", date(2024, time.March, 1), date(2024, time.March, 3), 2},
		{"one day", date(2024, time.March, 1), date(2024, time.March, 2), 1},
		{"same day counts as one", date(2024, time.March, 1), date(2024, time.March, 1), 1},
		{"week", date(2024, time.March, 1), date(2024, time.March, 8), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(tt.start, tt.end))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	// 120/день * 2 дня + сервисный сбор 15
	got := TotalPrice(120, date(2024, time.March, 1), date(2024, time.March, 3))
	assert.Equal(t, int64(255), got)

	// Однодневная аренда оплачивается как один день
	got = TotalPrice(85, date(2024, time.March, 1), date(2024, time.March, 1))
	assert.Equal(t, int64(100), got)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{
			"disjoint",
			date(2024, time.March, 1), date(2024, time.March, 3),
			date(2024, time.March, 10), date(2024, time.March, 12),
			false,
		},
		{
			"nested",
			date(2024, time.March, 1), date(2024, time.March, 10),
			date(2024, time.March, 3), date(2024, time.March, 5),
			true,
		},
		{
			"partial overlap",
			date(2024, time.March, 1), date(2024, time.March, 5),
			date(2024, time.March, 4), date(2024, time.March, 8),
			true,
		},
		{
			"shared boundary day overlaps",
			date(2024, time.March, 1), date(2024, time.March, 3),
			date(2024, time.March, 3), date(2024, time.March, 5),
			true,
		},
		{
			"adjacent without shared day",
			date(2024, time.March, 1), date(2024, time.March, 3),
			date(2024, time.March, 4), date(2024, time.March, 6),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Перекрытие симметрично
			assert.Equal(t, tt.want, RangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
