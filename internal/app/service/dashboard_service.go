package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/internal/core/ports"
)

// DashboardService reports per-user counts. The cache is optional; with a
// nil cache every call reads the repository.
type DashboardService struct {
	dashboardRepository ports.DashboardRepository
	cache               ports.DashboardCache
	sf                  singleflight.Group
}

func NewDashboardService(dashboardRepository ports.DashboardRepository, cache ports.DashboardCache) *DashboardService {
	return &DashboardService{dashboardRepository: dashboardRepository, cache: cache}
}

func (s *DashboardService) Stats(ctx context.Context, userID uint64) (domain.DashboardStats, error) {
	if s.cache == nil {
		return s.dashboardRepository.Stats(ctx, userID)
	}

	// The flight is shared, so one caller going away must not fail the others.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(strconv.FormatUint(userID, 10), func() (interface{}, error) {
		return s.load(flightCtx, userID)
	})
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return v.(domain.DashboardStats), nil
}

func (s *DashboardService) load(ctx context.Context, userID uint64) (domain.DashboardStats, error) {
	stats, ok, err := s.cache.Get(ctx, userID)
	if err != nil {
		zap.L().Warn("dashboard cache read failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
	if ok {
		return stats, nil
	}

	// Read the generation before the counts: a write committed after this
	// point bumps it and the stale result below is never stored.
	generation, genErr := s.cache.Generation(ctx, userID)
	if genErr != nil {
		zap.L().Warn("dashboard cache generation read failed", zap.Uint64("user_id", userID), zap.Error(genErr))
	}

	stats, err = s.dashboardRepository.Stats(ctx, userID)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	if genErr != nil {
		return stats, nil
	}

	if _, err := s.cache.SetIfGeneration(ctx, userID, generation, stats); err != nil {
		zap.L().Warn("dashboard cache write failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return stats, nil
}

// Invalidate drops the cached stats of the user. Failures are logged only;
// the cache entry expires on its own.
func (s *DashboardService) Invalidate(ctx context.Context, userID uint64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		zap.L().Warn("dashboard cache invalidation failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
}

var (
	_ ports.DashboardService = (*DashboardService)(nil)
	_ ports.StatsInvalidator = (*DashboardService)(nil)
)
