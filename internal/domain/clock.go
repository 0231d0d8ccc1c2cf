package domain

import "time"

// Clock возвращает текущий момент времени; внедряется ради тестируемости.
type Clock interface {
	Now() time.Time
}
