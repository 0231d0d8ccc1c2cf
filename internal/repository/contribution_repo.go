package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contribution-tracker/internal/database"
	"contribution-tracker/internal/domain"
)

// ContributionRepository хранит журнал вкладов (append-only).
type ContributionRepository struct {
	queries *database.Queries
}

// NewContributionRepository создает новый экземпляр ContributionRepository.
func NewContributionRepository(queries *database.Queries) domain.ContributionRepository {
	return &ContributionRepository{
		queries: queries,
	}
}

// Append добавляет вклад. Если вклад с таким ID уже есть, возвращается сохранённая запись и false.
func (r *ContributionRepository) Append(ctx context.Context, contribution *domain.Contribution) (*domain.Contribution, bool, error) {
	affected, err := r.queries.InsertContribution(ctx, database.InsertContributionParams{
		ContributionID:   contribution.ID,
		UserID:           contribution.UserID,
		Description:      contribution.Description,
		ContributionDate: domain.CalendarDay(contribution.Date),
		CreatedAt:        contribution.CreatedAt,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert contribution: %w", err)
	}

	row, err := r.queries.GetContributionByID(ctx, contribution.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get contribution: %w", err)
	}

	return toDomainContribution(row), affected > 0, nil
}

// ListByUser возвращает до limit последних вкладов пользователя.
func (r *ContributionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Contribution, error) {
	rows, err := r.queries.ListContributionsByUser(ctx, database.ListContributionsByUserParams{
		UserID: userID,
		Limit:  int32(limit),
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	result := make([]*domain.Contribution, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainContribution(row))
	}

	return result, nil
}

func toDomainContribution(row database.Contribution) *domain.Contribution {
	return &domain.Contribution{
		ID:          row.ContributionID,
		UserID:      row.UserID,
		Description: row.Description,
		Date:        domain.CalendarDay(row.ContributionDate),
		CreatedAt:   row.CreatedAt.UTC(),
	}
}
