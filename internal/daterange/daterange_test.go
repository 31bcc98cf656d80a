package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWeeklyWindow_StartsOnMonday(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{"wednesday", date(2024, time.January, 10), date(2024, time.January, 8)},
		{"monday itself", date(2024, time.January, 8), date(2024, time.January, 8)},
		{"sunday", date(2024, time.January, 14), date(2024, time.January, 8)},
		{"crosses month boundary", date(2024, time.February, 2), date(2024, time.January, 29)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := WeeklyWindow(tc.ref)

			assert.Equal(t, time.Monday, r.Start.Weekday())
			assert.True(t, r.Start.Equal(tc.want), "start %v", r.Start)
			assert.True(t, r.End.Equal(tc.want.AddDate(0, 0, 6)), "end %v", r.End)
			assert.Len(t, r.Days(), 7)
		})
	}
}

func TestWeeklyWindow_MidDayReferenceIsTruncated(t *testing.T) {
	ref := time.Date(2024, time.January, 10, 17, 45, 3, 0, time.UTC)
	r := WeeklyWindow(ref)

	assert.True(t, r.Start.Equal(date(2024, time.January, 8)))
}

func TestMonthlyWindow_TruncatesTo30th(t *testing.T) {
	// julho tem 31 dias; a janela para no dia 30
	r := MonthlyWindow(date(2024, time.July, 15))

	assert.Equal(t, "2024-07-01", r.StartKey())
	assert.Equal(t, "2024-07-30", r.EndKey())
}

func TestMonthlyWindow_ShortMonths(t *testing.T) {
	tests := []struct {
		ref  time.Time
		end  string
	}{
		{date(2024, time.February, 10), "2024-02-29"}, // bissexto
		{date(2023, time.February, 10), "2023-02-28"},
		{date(2024, time.April, 1), "2024-04-30"},
	}

	for _, tc := range tests {
		r := MonthlyWindow(tc.ref)
		assert.Equal(t, tc.end, r.EndKey())
	}
}

func TestRangeDays_AscendingInclusive(t *testing.T) {
	r := Range{Start: date(2024, time.March, 30), End: date(2024, time.April, 2)}

	days := r.Days()
	assert.Len(t, days, 4)
	assert.Equal(t, "2024-03-30", days[0].Format(Layout))
	assert.Equal(t, "2024-04-02", days[3].Format(Layout))
}

func TestDay_SingleDayRange(t *testing.T) {
	r := Day(time.Date(2024, time.May, 5, 13, 30, 0, 0, time.UTC))

	assert.Equal(t, "2024-05-05", r.StartKey())
	assert.Equal(t, "2024-05-05", r.EndKey())
	assert.Len(t, r.Days(), 1)
}
