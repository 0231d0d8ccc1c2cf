package domain

import "time"

// StreakResult - результат применения вклада к серии.
type StreakResult struct {
	State StreakState
	// Changed == false только для повторного вклада в тот же день; запись можно пропустить.
	Changed bool
	// OutOfOrder отмечает вклад, датированный раньше последнего зафиксированного.
	OutOfOrder bool
}

// CalendarDay отбрасывает время суток и приводит момент к календарному дню в UTC.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsNextDay сообщает, что b - ровно следующий календарный день после a.
func IsNextDay(a, b time.Time) bool {
	return CalendarDay(a).AddDate(0, 0, 1).Equal(CalendarDay(b))
}

// ComputeStreak применяет вклад, датированный eventDate, к серии state.
func ComputeStreak(state StreakState, eventDate, today time.Time) (StreakResult, error) {
	event := CalendarDay(eventDate)
	if event.After(CalendarDay(today)) {
		return StreakResult{State: state}, ErrInvalidEventDate
	}

	next := state.clone()
	result := StreakResult{Changed: true}

	if state.LastContributionDate == nil {
		next.CurrentStreak = 1
		next.CurrentStreakStartDate = datePtr(event)
	} else {
		last := CalendarDay(*state.LastContributionDate)
		switch {
		case event.Equal(last):
			return StreakResult{State: state}, nil
		case IsNextDay(last, event):
			next.CurrentStreak++
			// старые записи могут не иметь даты начала серии
			if next.CurrentStreakStartDate == nil {
				next.CurrentStreakStartDate = datePtr(event.AddDate(0, 0, -(next.CurrentStreak - 1)))
			}
		default:
			result.OutOfOrder = event.Before(last)
			next.CurrentStreak = 1
			next.CurrentStreakStartDate = datePtr(event)
		}
	}

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
		next.LongestStreakStartDate = copyDate(next.CurrentStreakStartDate)
		next.LongestStreakEndDate = datePtr(event)
	}

	if state.LastContributionDate == nil || event.After(CalendarDay(*state.LastContributionDate)) {
		next.LastContributionDate = datePtr(event)
	}

	result.State = next
	return result, nil
}

// EffectiveStreak возвращает текущую серию с учётом разрыва: если последний вклад
// старше вчерашнего дня, серия прервана.
func EffectiveStreak(state StreakState, today time.Time) int {
	if state.LastContributionDate == nil {
		return 0
	}
	last := CalendarDay(*state.LastContributionDate)
	day := CalendarDay(today)
	if last.Equal(day) || IsNextDay(last, day) {
		return state.CurrentStreak
	}
	return 0
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func copyDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
