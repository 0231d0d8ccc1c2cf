package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"contribution-tracker/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type statsDoc struct {
	stats   *domain.UserStats
	version int64
}

// memoryStatsRepo - версионируемое хранилище статистики в памяти.
type memoryStatsRepo struct {
	mu      sync.Mutex
	docs    map[string]*statsDoc
	markers map[string]map[string]string
	puts    int
	// beforePut вызывается перед условной записью без удержания блокировки.
	beforePut func(call int)
}

func newMemoryStatsRepo() *memoryStatsRepo {
	return &memoryStatsRepo{
		docs:    make(map[string]*statsDoc),
		markers: make(map[string]map[string]string),
	}
}

func (r *memoryStatsRepo) Get(_ context.Context, userID string) (*domain.UserStats, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[userID]
	if !ok {
		return domain.NewUserStats(userID), 0, nil
	}
	return doc.stats.Clone(), doc.version, nil
}

func (r *memoryStatsRepo) GetEventMarker(_ context.Context, userID, eventKey string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.markers[userID][eventKey]
	return state, ok, nil
}

func (r *memoryStatsRepo) ConditionalPut(_ context.Context, userID string, stats *domain.UserStats, expectedVersion int64, event domain.StatsEvent) (bool, error) {
	r.mu.Lock()
	r.puts++
	call := r.puts
	hook := r.beforePut
	r.mu.Unlock()

	if hook != nil {
		hook(call)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var current int64
	if doc, ok := r.docs[userID]; ok {
		current = doc.version
	}
	if current != expectedVersion {
		return false, nil
	}

	r.docs[userID] = &statsDoc{stats: stats.Clone(), version: current + 1}
	if event.Key != "" {
		if r.markers[userID] == nil {
			r.markers[userID] = make(map[string]string)
		}
		r.markers[userID][event.Key] = event.To
	}
	return true, nil
}

func (r *memoryStatsRepo) TopByCurrentStreak(_ context.Context, activeSince time.Time, limit int) ([]*domain.UserStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := domain.CalendarDay(activeSince)
	all := make([]*domain.UserStats, 0, len(r.docs))
	for _, doc := range r.docs {
		last := doc.stats.LastContributionDate
		if doc.stats.CurrentStreak == 0 || last == nil || domain.CalendarDay(*last).Before(since) {
			continue
		}
		all = append(all, doc.stats.Clone())
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CurrentStreak != all[j].CurrentStreak {
			return all[i].CurrentStreak > all[j].CurrentStreak
		}
		return all[i].UserID < all[j].UserID
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// seed записывает документ напрямую, минуя StatsStore.
func (r *memoryStatsRepo) seed(stats *domain.UserStats) {
	r.mu.Lock()
	defer r.mu.Unlock()

	version := int64(1)
	if doc, ok := r.docs[stats.UserID]; ok {
		version = doc.version + 1
	}
	r.docs[stats.UserID] = &statsDoc{stats: stats.Clone(), version: version}
}

func (r *memoryStatsRepo) seedMarker(userID, key, state string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.markers[userID] == nil {
		r.markers[userID] = make(map[string]string)
	}
	r.markers[userID][key] = state
}

func (r *memoryStatsRepo) putCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.puts
}
