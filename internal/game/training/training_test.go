package training_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hagni1/jurney/internal/game/training"
)

var start = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestAccrue(t *testing.T) {
	testCases := []struct {
		name     string
		level    int
		elapsed  time.Duration
		expected training.Accrual
	}{
		{
			name:     "nothing elapsed",
			level:    1,
			elapsed:  0,
			expected: training.Accrual{MaxAFKMinutes: 10},
		},
		{
			name:     "partial minutes are floored",
			level:    1,
			elapsed:  8*time.Minute + 59*time.Second,
			expected: training.Accrual{ElapsedMinutes: 8, CappedMinutes: 8, StatGains: 2, MaxAFKMinutes: 10},
		},
		{
			name:     "low level capped at ten minutes",
			level:    5,
			elapsed:  45 * time.Minute,
			expected: training.Accrual{ElapsedMinutes: 45, CappedMinutes: 10, StatGains: 3, MaxAFKMinutes: 10},
		},
		{
			name:     "cap grows with level",
			level:    30,
			elapsed:  2 * time.Hour,
			expected: training.Accrual{ElapsedMinutes: 120, CappedMinutes: 30, StatGains: 10, MaxAFKMinutes: 30},
		},
		{
			name:     "future claim time counts as zero",
			level:    1,
			elapsed:  -5 * time.Minute,
			expected: training.Accrual{MaxAFKMinutes: 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := training.Accrue(tc.level, start, start.Add(tc.elapsed))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestAccrue_GainsNeverDecreaseOverTime(t *testing.T) {
	for _, level := range []int{1, 10, 25, 90} {
		prev := 0
		for minute := 0; minute <= 200; minute++ {
			got := training.Accrue(level, start, start.Add(time.Duration(minute)*time.Minute))
			assert.GreaterOrEqual(t, got.StatGains, prev)
			assert.LessOrEqual(t, got.CappedMinutes, got.MaxAFKMinutes)
			prev = got.StatGains
		}
		assert.Equal(t, max(10, level)/training.MinutesPerPoint, prev)
	}
}

func TestParseStat(t *testing.T) {
	for _, s := range []string{"strength", "Dexterity", " INTELLIGENCE "} {
		stat, err := training.ParseStat(s)
		require.NoError(t, err)
		assert.Contains(t, training.Stats, stat)
	}

	_, err := training.ParseStat("charisma")
	assert.Error(t, err)

	_, err = training.ParseStat("")
	assert.Error(t, err)
}
