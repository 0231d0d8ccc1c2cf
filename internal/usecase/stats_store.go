package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"contribution-tracker/internal/domain"
	"contribution-tracker/internal/metrics"

	"github.com/sirupsen/logrus"
)

// DefaultMaxAttempts - число попыток условной записи по умолчанию.
const DefaultMaxAttempts = 5

// StatsRecorder принимает метрики работы StatsStore.
type StatsRecorder interface {
	ObserveAttempt()
	ObserveConflict()
	ObserveOutcome(outcome string, elapsed time.Duration)
}

// StatsTransform изменяет копию статистики пользователя. Возврат false означает,
// что изменений нет и запись не нужна. Ошибка прерывает применение без повтора.
type StatsTransform func(stats *domain.UserStats) (bool, error)

// StatsStore применяет изменения к статистике пользователя с оптимистичной блокировкой:
// чтение версии, вычисление нового состояния, запись при неизменной версии, повтор при конфликте.
type StatsStore struct {
	repo        domain.StatsRepository
	maxAttempts int
	timeout     time.Duration
	recorder    StatsRecorder
	logger      *logrus.Logger
}

// StatsStoreOption настраивает StatsStore.
type StatsStoreOption func(*StatsStore)

// WithMaxAttempts задаёт число попыток записи.
func WithMaxAttempts(n int) StatsStoreOption {
	return func(s *StatsStore) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithApplyTimeout ограничивает время одного Apply. Ноль отключает ограничение.
func WithApplyTimeout(d time.Duration) StatsStoreOption {
	return func(s *StatsStore) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRecorder подключает сбор метрик.
func WithRecorder(r StatsRecorder) StatsStoreOption {
	return func(s *StatsStore) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithLogger подключает логгер.
func WithLogger(l *logrus.Logger) StatsStoreOption {
	return func(s *StatsStore) {
		if l != nil {
			s.logger = l
		}
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveAttempt()                      {}
func (nopRecorder) ObserveConflict()                     {}
func (nopRecorder) ObserveOutcome(string, time.Duration) {}

// NewStatsStore создает новый экземпляр StatsStore.
func NewStatsStore(repo domain.StatsRepository, opts ...StatsStoreOption) *StatsStore {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &StatsStore{
		repo:        repo,
		maxAttempts: DefaultMaxAttempts,
		recorder:    nopRecorder{},
		logger:      discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current возвращает сохранённую статистику пользователя без записи.
func (s *StatsStore) Current(ctx context.Context, userID string) (*domain.UserStats, error) {
	stats, _, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, s.translate(err)
	}
	return stats, nil
}

// Apply применяет transform к статистике userID в рамках события event.
// Повторно доставленное событие возвращает текущую статистику без записи.
func (s *StatsStore) Apply(ctx context.Context, userID string, event domain.StatsEvent, transform StatsTransform) (*domain.UserStats, error) {
	start := time.Now()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logEntry := s.logger.WithFields(logrus.Fields{
		"user_id":   userID,
		"event_key": event.Key,
	})

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, s.abort(err, logEntry.WithField("attempt", attempt), start)
		}
		s.recorder.ObserveAttempt()

		// статистика читается раньше маркера: маркер пишется вместе со сменой версии
		current, version, err := s.repo.Get(ctx, userID)
		if err != nil {
			return nil, s.abort(err, logEntry, start)
		}

		if event.Key != "" {
			marker, found, err := s.repo.GetEventMarker(ctx, userID, event.Key)
			if err != nil {
				return nil, s.abort(err, logEntry, start)
			}
			if found {
				if event.Once || marker == event.To {
					s.recorder.ObserveOutcome(metrics.OutcomeDuplicate, time.Since(start))
					logEntry.Debug("Duplicate stats event skipped")
					return current, nil
				}
				if marker != event.From {
					s.recorder.ObserveOutcome(metrics.OutcomeError, time.Since(start))
					logEntry.WithFields(logrus.Fields{
						"marker":   marker,
						"expected": event.From,
					}).Warn("Stale transition rejected")
					return nil, domain.ErrInvalidTransition
				}
			}
		}

		next := current.Clone()
		changed, err := transform(next)
		if err != nil {
			s.recorder.ObserveOutcome(metrics.OutcomeError, time.Since(start))
			return nil, err
		}
		if !changed {
			s.recorder.ObserveOutcome(metrics.OutcomeNoop, time.Since(start))
			return current, nil
		}

		next.UserID = userID
		next.UpdatedAt = time.Now().UTC()

		ok, err := s.repo.ConditionalPut(ctx, userID, next, version, event)
		if err != nil {
			return nil, s.abort(err, logEntry, start)
		}
		if ok {
			s.recorder.ObserveOutcome(metrics.OutcomeCommitted, time.Since(start))
			return next, nil
		}

		s.recorder.ObserveConflict()
		logEntry.WithFields(logrus.Fields{
			"attempt": attempt,
			"version": version,
		}).Debug("Stats version conflict, retrying")
	}

	s.recorder.ObserveOutcome(metrics.OutcomeConflict, time.Since(start))
	logEntry.WithField("attempts", s.maxAttempts).Warn("Stats update exhausted retries")
	return nil, domain.ErrConflict
}

// abort переводит ошибку контекста или хранилища в доменную и учитывает исход.
func (s *StatsStore) abort(err error, logEntry *logrus.Entry, start time.Time) error {
	err = s.translate(err)
	if errors.Is(err, domain.ErrTimeout) {
		s.recorder.ObserveOutcome(metrics.OutcomeTimeout, time.Since(start))
		logEntry.Warn("Stats update deadline exceeded")
		return err
	}
	s.recorder.ObserveOutcome(metrics.OutcomeError, time.Since(start))
	logEntry.WithError(err).Error("Stats update failed")
	return err
}

func (s *StatsStore) translate(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}
	return err
}
