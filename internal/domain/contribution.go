package domain

import (
	"context"
	"time"
)

// Contribution - неизменяемая запись о ежедневном вкладе участника.
type Contribution struct {
	ID          string
	UserID      string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// ContributionResult описывает итог записи вклада.
type ContributionResult struct {
	Contribution  *Contribution
	Stats         *UserStats
	StreakChanged bool
	OutOfOrder    bool
	// Created false означает повтор уже сохранённого вклада.
	Created       bool
}

// ContributionRepository определяет контракт для append-only хранилища вкладов.
type ContributionRepository interface {
	// Append добавляет вклад; если ID уже занят, возвращает сохранённую запись и false.
	Append(ctx context.Context, contribution *Contribution) (*Contribution, bool, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*Contribution, error)
}
