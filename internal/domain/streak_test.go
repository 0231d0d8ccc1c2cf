package domain_test

import (
	"testing"
	"time"

	"contribution-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time {
	return &t
}

func TestComputeStreak_FirstContribution(t *testing.T) {
	d := day(2024, time.March, 10)

	result, err := domain.ComputeStreak(domain.StreakState{}, d.Add(15*time.Hour), d)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.False(t, result.OutOfOrder)
	assert.Equal(t, 1, result.State.CurrentStreak)
	assert.Equal(t, 1, result.State.LongestStreak)
	assert.Equal(t, d, *result.State.CurrentStreakStartDate)
	assert.Equal(t, d, *result.State.LongestStreakStartDate)
	assert.Equal(t, d, *result.State.LongestStreakEndDate)
	assert.Equal(t, d, *result.State.LastContributionDate)
}

func TestComputeStreak_ConsecutiveDayExtendsStreak(t *testing.T) {
	d := day(2024, time.March, 10)
	start := d.AddDate(0, 0, -4)
	state := domain.StreakState{
		CurrentStreak:          5,
		LongestStreak:          5,
		LastContributionDate:   ptr(d),
		CurrentStreakStartDate: ptr(start),
		LongestStreakStartDate: ptr(start),
		LongestStreakEndDate:   ptr(d),
	}
	next := d.AddDate(0, 0, 1)

	result, err := domain.ComputeStreak(state, next, next)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 6, result.State.CurrentStreak)
	assert.Equal(t, 6, result.State.LongestStreak)
	assert.Equal(t, start, *result.State.CurrentStreakStartDate)
	assert.Equal(t, start, *result.State.LongestStreakStartDate)
	assert.Equal(t, next, *result.State.LongestStreakEndDate)
	assert.Equal(t, next, *result.State.LastContributionDate)

	// исходное состояние не меняется
	assert.Equal(t, 5, state.CurrentStreak)
	assert.Equal(t, d, *state.LastContributionDate)
}

func TestComputeStreak_GapResetsStreak(t *testing.T) {
	d := day(2024, time.March, 10)
	state := domain.StreakState{
		CurrentStreak:          3,
		LongestStreak:          7,
		LastContributionDate:   ptr(d),
		CurrentStreakStartDate: ptr(d.AddDate(0, 0, -2)),
		LongestStreakStartDate: ptr(day(2024, time.January, 1)),
		LongestStreakEndDate:   ptr(day(2024, time.January, 7)),
	}
	gap := d.AddDate(0, 0, 3)

	result, err := domain.ComputeStreak(state, gap, gap)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.False(t, result.OutOfOrder)
	assert.Equal(t, 1, result.State.CurrentStreak)
	assert.Equal(t, gap, *result.State.CurrentStreakStartDate)
	assert.Equal(t, 7, result.State.LongestStreak)
	assert.Equal(t, day(2024, time.January, 1), *result.State.LongestStreakStartDate)
	assert.Equal(t, day(2024, time.January, 7), *result.State.LongestStreakEndDate)
}

func TestComputeStreak_SameDayIsIdempotent(t *testing.T) {
	d := day(2024, time.March, 10)
	state := domain.StreakState{
		CurrentStreak:          2,
		LongestStreak:          2,
		LastContributionDate:   ptr(d),
		CurrentStreakStartDate: ptr(d.AddDate(0, 0, -1)),
	}

	result, err := domain.ComputeStreak(state, d.Add(23*time.Hour+59*time.Minute), d)

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, state, result.State)
}

func TestComputeStreak_CalendarBoundaries(t *testing.T) {
	testCases := []struct {
		name string
		last time.Time
		next time.Time
	}{
		{"End of month", day(2024, time.January, 31), day(2024, time.February, 1)},
		{"Leap day", day(2024, time.February, 28), day(2024, time.February, 29)},
		{"After leap day", day(2024, time.February, 29), day(2024, time.March, 1)},
		{"End of year", day(2023, time.December, 31), day(2024, time.January, 1)},
		{"Non-leap February", day(2023, time.February, 28), day(2023, time.March, 1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := domain.StreakState{
				CurrentStreak:          1,
				LongestStreak:          1,
				LastContributionDate:   ptr(tc.last),
				CurrentStreakStartDate: ptr(tc.last),
			}

			result, err := domain.ComputeStreak(state, tc.next, tc.next)

			require.NoError(t, err)
			assert.Equal(t, 2, result.State.CurrentStreak)
			assert.Equal(t, tc.last, *result.State.CurrentStreakStartDate)
		})
	}
}

func TestComputeStreak_NonUTCInputUsesUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	last := day(2024, time.March, 10)
	state := domain.StreakState{CurrentStreak: 1, LongestStreak: 1, LastContributionDate: ptr(last), CurrentStreakStartDate: ptr(last)}

	// 11 марта 08:00 в UTC+10 - это ещё 10 марта по UTC
	event := time.Date(2024, time.March, 11, 8, 0, 0, 0, loc)

	result, err := domain.ComputeStreak(state, event, event)

	require.NoError(t, err)
	assert.False(t, result.Changed)
}

func TestComputeStreak_OutOfOrderEventResets(t *testing.T) {
	d := day(2024, time.March, 10)
	state := domain.StreakState{
		CurrentStreak:          4,
		LongestStreak:          4,
		LastContributionDate:   ptr(d),
		CurrentStreakStartDate: ptr(d.AddDate(0, 0, -3)),
	}
	late := d.AddDate(0, 0, -1)

	result, err := domain.ComputeStreak(state, late, d)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.True(t, result.OutOfOrder)
	assert.Equal(t, 1, result.State.CurrentStreak)
	assert.Equal(t, late, *result.State.CurrentStreakStartDate)
	assert.Equal(t, 4, result.State.LongestStreak)
	assert.Equal(t, d, *result.State.LastContributionDate)
}

func TestComputeStreak_FutureEventRejected(t *testing.T) {
	today := day(2024, time.March, 10)

	result, err := domain.ComputeStreak(domain.StreakState{}, today.AddDate(0, 0, 1), today)

	assert.ErrorIs(t, err, domain.ErrInvalidEventDate)
	assert.False(t, result.Changed)
}

func TestComputeStreak_LegacyStateWithoutStartDate(t *testing.T) {
	d := day(2024, time.March, 10)
	state := domain.StreakState{CurrentStreak: 3, LongestStreak: 3, LastContributionDate: ptr(d)}
	next := d.AddDate(0, 0, 1)

	result, err := domain.ComputeStreak(state, next, next)

	require.NoError(t, err)
	assert.Equal(t, 4, result.State.CurrentStreak)
	assert.Equal(t, d.AddDate(0, 0, -2), *result.State.CurrentStreakStartDate)
}

func TestComputeStreak_LongestStreakNeverDecreases(t *testing.T) {
	start := day(2024, time.January, 1)
	offsets := []int{0, 1, 2, 2, 5, 6, 3, 7, 8, 9, 10, 20, 21}

	var state domain.StreakState
	longest := 0
	for _, off := range offsets {
		event := start.AddDate(0, 0, off)
		result, err := domain.ComputeStreak(state, event, start.AddDate(0, 0, 30))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.State.LongestStreak, longest)
		assert.GreaterOrEqual(t, result.State.LongestStreak, result.State.CurrentStreak)
		longest = result.State.LongestStreak
		state = result.State
	}

	assert.Equal(t, 5, longest)
	assert.Equal(t, start.AddDate(0, 0, 21), *state.LastContributionDate)
}

func TestEffectiveStreak(t *testing.T) {
	d := day(2024, time.March, 10)
	state := domain.StreakState{CurrentStreak: 3, LongestStreak: 3, LastContributionDate: ptr(d)}

	assert.Equal(t, 3, domain.EffectiveStreak(state, d.Add(20*time.Hour)))
	assert.Equal(t, 3, domain.EffectiveStreak(state, d.AddDate(0, 0, 1)))
	assert.Equal(t, 0, domain.EffectiveStreak(state, d.AddDate(0, 0, 2)))
	assert.Equal(t, 0, domain.EffectiveStreak(domain.StreakState{}, d))
}
