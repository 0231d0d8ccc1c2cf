package usecase

import "time"

// SystemClock возвращает текущее время в UTC.
type SystemClock struct{}

// Now возвращает текущий момент.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
