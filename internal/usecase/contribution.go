package usecase

import (
	"context"
	"strings"
	"time"

	"contribution-tracker/internal/domain"

	"github.com/google/uuid"
)

// OutOfOrderPolicy определяет обработку вклада, датированного раньше последнего.
type OutOfOrderPolicy string

const (
	// OutOfOrderReset сбрасывает текущую серию до 1.
	OutOfOrderReset OutOfOrderPolicy = "reset"
	// OutOfOrderReject отклоняет вклад с ErrOutOfOrderEvent.
	OutOfOrderReject OutOfOrderPolicy = "reject"
)

// DefaultContributionsPageLimit - число вкладов в выдаче по умолчанию.
const DefaultContributionsPageLimit = 50

// ContributionSettings - параметры обработки вкладов.
type ContributionSettings struct {
	OutOfOrderPolicy OutOfOrderPolicy
	PageLimit        int
}

// ContributionUseCase реализует бизнес-логику записи вкладов и расчёта серий.
type ContributionUseCase struct {
	contributionRepo domain.ContributionRepository
	store            *StatsStore
	clock            domain.Clock
	settings         ContributionSettings
}

// NewContributionUseCase создает новый экземпляр ContributionUseCase.
func NewContributionUseCase(
	contributionRepo domain.ContributionRepository,
	store *StatsStore,
	clock domain.Clock,
	settings ContributionSettings,
) domain.ContributionUseCase {
	if settings.OutOfOrderPolicy == "" {
		settings.OutOfOrderPolicy = OutOfOrderReset
	}
	if settings.PageLimit <= 0 {
		settings.PageLimit = DefaultContributionsPageLimit
	}
	return &ContributionUseCase{
		contributionRepo: contributionRepo,
		store:            store,
		clock:            clock,
		settings:         settings,
	}
}

// RecordContribution записывает вклад и пересчитывает серию пользователя.
func (uc *ContributionUseCase) RecordContribution(
	ctx context.Context,
	userID, contributionID, description string,
	eventDate *time.Time,
) (*domain.ContributionResult, error) {
	// Валидация входных данных
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	now := uc.clock.Now()
	date := now
	if eventDate != nil {
		date = *eventDate
	}
	if domain.CalendarDay(date).After(domain.CalendarDay(now)) {
		return nil, domain.ErrInvalidEventDate
	}
	if contributionID == "" {
		contributionID = uuid.NewString()
	}

	// 1. Применяем вклад к серии; повтор с тем же ID не применяется дважды
	var streak domain.StreakResult
	stats, err := uc.store.Apply(ctx, userID, domain.ContributionEvent(contributionID), func(s *domain.UserStats) (bool, error) {
		result, err := domain.ComputeStreak(s.StreakState, date, now)
		if err != nil {
			return false, err
		}
		if result.OutOfOrder && uc.settings.OutOfOrderPolicy == OutOfOrderReject {
			return false, domain.ErrOutOfOrderEvent
		}
		streak = result
		s.StreakState = result.State
		return result.Changed, nil
	})
	if err != nil {
		return nil, err
	}

	// 2. Сохраняем сам вклад (append-only, идемпотентно по ID)
	stored, created, err := uc.contributionRepo.Append(ctx, &domain.Contribution{
		ID:          contributionID,
		UserID:      userID,
		Description: description,
		Date:        date.UTC(),
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	if stored.UserID != userID {
		return nil, domain.ErrContributionAlreadyExists
	}

	return &domain.ContributionResult{
		Contribution:  stored,
		Stats:         stats,
		StreakChanged: streak.Changed,
		OutOfOrder:    streak.OutOfOrder,
		Created:       created,
	}, nil
}

// ListContributions возвращает последние вклады пользователя, новые первыми.
func (uc *ContributionUseCase) ListContributions(ctx context.Context, userID string) ([]*domain.Contribution, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	return uc.contributionRepo.ListByUser(ctx, userID, uc.settings.PageLimit)
}
