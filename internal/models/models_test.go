package models

import "testing"

func TestReadingIntervalOverlaps(t *testing.T) {
	ri := &ReadingInterval{StartPage: 10, EndPage: 20}

	tests := []struct {
		name     string
		start    int
		end      int
		expected bool
	}{
		{name: "should overlap when ranges intersect", start: 15, end: 25, expected: true},
		{name: "should overlap when endpoints touch on the right", start: 20, end: 30, expected: true},
		{name: "should overlap when endpoints touch on the left", start: 1, end: 10, expected: true},
		{name: "should overlap when range contains interval", start: 1, end: 100, expected: true},
		{name: "should not overlap when range is before", start: 1, end: 9, expected: false},
		{name: "should not overlap when range is after", start: 21, end: 30, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ri.Overlaps(tt.start, tt.end); got != tt.expected {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestReadingIntervalConflictsWithPageCount(t *testing.T) {
	tests := []struct {
		name     string
		interval ReadingInterval
		pages    int
		oldPages int
		expected bool
	}{
		{
			name:     "should conflict when new page count falls inside interval",
			interval: ReadingInterval{StartPage: 40, EndPage: 60},
			pages:    50,
			oldPages: 100,
			expected: true,
		},
		{
			name:     "should conflict when combined boundary falls inside interval",
			interval: ReadingInterval{StartPage: 140, EndPage: 160},
			pages:    50,
			oldPages: 100,
			expected: true,
		},
		{
			name:     "should conflict when interval lies strictly between boundaries",
			interval: ReadingInterval{StartPage: 60, EndPage: 90},
			pages:    50,
			oldPages: 100,
			expected: true,
		},
		{
			name:     "should not conflict when interval ends at new page count",
			interval: ReadingInterval{StartPage: 10, EndPage: 50},
			pages:    50,
			oldPages: 100,
			expected: false,
		},
		{
			name:     "should not conflict when interval is below new page count",
			interval: ReadingInterval{StartPage: 10, EndPage: 20},
			pages:    50,
			oldPages: 100,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.interval.ConflictsWithPageCount(tt.pages, tt.oldPages); got != tt.expected {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBookPageSumsReadPages(t *testing.T) {
	sums := BookPageSums{BookId: 1, SumStart: 10, SumEnd: 80}

	if got := sums.ReadPages(); got != 70 {
		t.Fatalf("expected %d, got %d", 70, got)
	}
}
