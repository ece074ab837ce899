package stats

import "testing"

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name     string
		timeline []DayCount
		want     Streak
	}{
		{
			name: "empty",
			want: Streak{Days: 0, Start: "", End: ""},
		},
		{
			name:     "single day",
			timeline: []DayCount{{Day: "2024-05-01", Count: 3}},
			want:     Streak{Days: 1, Start: "2024-05-01", End: "2024-05-01"},
		},
		{
			// Spans the US spring-forward transition; calendar-day
			// arithmetic must still see three consecutive days.
			name: "spring forward",
			timeline: []DayCount{
				{Day: "2024-03-09", Count: 1},
				{Day: "2024-03-10", Count: 2},
				{Day: "2024-03-11", Count: 1},
			},
			want: Streak{Days: 3, Start: "2024-03-09", End: "2024-03-11"},
		},
		{
			name: "fall back",
			timeline: []DayCount{
				{Day: "2024-11-02", Count: 1},
				{Day: "2024-11-03", Count: 1},
				{Day: "2024-11-04", Count: 1},
			},
			want: Streak{Days: 3, Start: "2024-11-02", End: "2024-11-04"},
		},
		{
			name: "gap resets run",
			timeline: []DayCount{
				{Day: "2024-01-01", Count: 1},
				{Day: "2024-01-02", Count: 1},
				{Day: "2024-01-05", Count: 1},
				{Day: "2024-01-06", Count: 1},
				{Day: "2024-01-07", Count: 1},
			},
			want: Streak{Days: 3, Start: "2024-01-05", End: "2024-01-07"},
		},
		{
			// The timeline carries zero entries for quiet days; they
			// must break runs, not extend them.
			name: "zero entries break runs",
			timeline: []DayCount{
				{Day: "2024-01-01", Count: 1},
				{Day: "2024-01-02", Count: 0},
				{Day: "2024-01-03", Count: 1},
				{Day: "2024-01-04", Count: 1},
			},
			want: Streak{Days: 2, Start: "2024-01-03", End: "2024-01-04"},
		},
		{
			name: "month boundary",
			timeline: []DayCount{
				{Day: "2024-01-31", Count: 1},
				{Day: "2024-02-01", Count: 1},
			},
			want: Streak{Days: 2, Start: "2024-01-31", End: "2024-02-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := longestStreak(tt.timeline); got != tt.want {
				t.Errorf("longestStreak = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBusiestQuietestDay(t *testing.T) {
	timeline := []DayCount{
		{Day: "2024-01-01", Count: 5},
		{Day: "2024-01-02", Count: 9},
		{Day: "2024-01-03", Count: 9}, // tie: earlier day wins
		{Day: "2024-01-04", Count: 2},
		{Day: "2024-01-05", Count: 2},
	}

	if got := busiestDay(timeline); got.Day != "2024-01-02" || got.Count != 9 {
		t.Errorf("busiestDay = %+v", got)
	}
	if got := quietestDay(timeline); got.Day != "2024-01-04" || got.Count != 2 {
		t.Errorf("quietestDay = %+v", got)
	}
}
