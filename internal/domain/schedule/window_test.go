package schedule_test

import (
	"testing"
	"time"

	"arcade-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 15, hour, minute, 0, 0, time.UTC)
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		minutes int
	}{
		{name: "midnight", input: "00:00", minutes: 0},
		{name: "morning", input: "09:30", minutes: 570},
		{name: "last minute of day", input: "23:59", minutes: 1439},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod, err := schedule.ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, tod.Minutes())
		})
	}
}

func TestWindowContains(t *testing.T) {
	t.Run("same-day window", func(t *testing.T) {
		w := schedule.NewWindow(mustTimeOfDay(t, "09:00"), mustTimeOfDay(t, "23:00"))

		assert.False(t, w.Contains(at(8, 59)))
		assert.True(t, w.Contains(at(9, 0)), "open boundary is inclusive")
		assert.True(t, w.Contains(at(12, 30)))
		assert.True(t, w.Contains(at(22, 59)))
		assert.False(t, w.Contains(at(23, 0)), "close boundary is exclusive")
	})

	t.Run("overnight window", func(t *testing.T) {
		w := schedule.NewWindow(mustTimeOfDay(t, "22:00"), mustTimeOfDay(t, "02:00"))

		assert.True(t, w.Contains(at(23, 30)))
		assert.True(t, w.Contains(at(1, 0)))
		assert.False(t, w.Contains(at(10, 0)))
		assert.True(t, w.Contains(at(22, 0)))
		assert.False(t, w.Contains(at(2, 0)))
		assert.False(t, w.Contains(at(21, 59)))
	})

	t.Run("zero-width window is always closed", func(t *testing.T) {
		w := schedule.NewWindow(mustTimeOfDay(t, "09:00"), mustTimeOfDay(t, "09:00"))

		for hour := 0; hour < 24; hour++ {
			assert.False(t, w.Contains(at(hour, 0)), "hour %d", hour)
		}
		assert.False(t, w.Contains(at(9, 0)))
	})
}

func TestShopEffectiveOpen(t *testing.T) {
	w := schedule.NewWindow(mustTimeOfDay(t, "09:00"), mustTimeOfDay(t, "23:00"))

	t.Run("manual mode returns the flag as-is", func(t *testing.T) {
		s := schedule.Shop{IsOpen: true, Window: w, AutoMode: false}
		assert.True(t, s.EffectiveOpen(at(3, 0)), "manual open wins even outside the window")

		s.IsOpen = false
		assert.False(t, s.EffectiveOpen(at(12, 0)), "manual closed wins even inside the window")
	})

	t.Run("auto mode derives from the window", func(t *testing.T) {
		s := schedule.Shop{IsOpen: false, Window: w, AutoMode: true}
		assert.True(t, s.EffectiveOpen(at(12, 0)))
		assert.False(t, s.EffectiveOpen(at(3, 0)))
	})
}
