package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return parsed
}

func TestParseTimeOfDay_AcceptedFormats(t *testing.T) {
	tests := []struct {
		input string
		hour  int
		min   int
	}{
		{"14:00", 14, 0},
		{"09:30:00", 9, 30},
		{"18:45:12.345", 18, 45},
		{"18:45:12.345678901", 18, 45},
	}

	for _, tc := range tests {
		parsed, err := ParseTimeOfDay(tc.input)
		assert.NoError(t, err, tc.input)
		assert.Equal(t, tc.hour, parsed.Hour(), tc.input)
		assert.Equal(t, tc.min, parsed.Minute(), tc.input)
	}
}

func TestParseTimeOfDay_RejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "25:00", "14h00", "noon", "14:00extra"} {
		_, err := ParseTimeOfDay(input)
		assert.Error(t, err, input)
	}
}

func TestDetermineStatus_GracePeriod(t *testing.T) {
	const date = "2024-01-10"
	const timeOfDay = "14:00"

	tests := []struct {
		name string
		now  string
		want Status
	}{
		{"during slot", "2024-01-10T14:30:00", StatusPending},
		{"exactly at threshold", "2024-01-10T14:31:00", StatusPending},
		{"past grace", "2024-01-10T14:32:00", StatusCompleted},
		{"before slot", "2024-01-10T13:59:00", StatusPending},
		{"next day", "2024-01-11T08:00:00", StatusCompleted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DetermineStatus(date, timeOfDay, mustTime(t, tc.now))
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetermineStatus_MalformedTimeIsError(t *testing.T) {
	_, err := DetermineStatus("2024-01-10", "garbage", mustTime(t, "2024-01-10T15:00:00"))
	assert.Error(t, err)
}

func TestCanComplete(t *testing.T) {
	assert.NoError(t, CanComplete(StatusPending))
	assert.Error(t, CanComplete(StatusCompleted))
}
