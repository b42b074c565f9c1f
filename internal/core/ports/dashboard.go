package ports

import (
	"context"

	"github.com/vickyalvandob/task/internal/core/domain"
)

type DashboardRepository interface {
	Stats(ctx context.Context, userID uint64) (domain.DashboardStats, error)
}

// DashboardCache stores per-user stats. Get returns ok=false on a miss.
// Every Invalidate bumps the user's generation; SetIfGeneration stores
// nothing once the generation has moved past the one read before the
// stats were computed.
type DashboardCache interface {
	Get(ctx context.Context, userID uint64) (domain.DashboardStats, bool, error)
	Generation(ctx context.Context, userID uint64) (int64, error)
	SetIfGeneration(ctx context.Context, userID uint64, generation int64, stats domain.DashboardStats) (bool, error)
	Invalidate(ctx context.Context, userID uint64) error
}

// StatsInvalidator drops cached stats after a write by the user.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, userID uint64)
}

type DashboardService interface {
	Stats(ctx context.Context, userID uint64) (domain.DashboardStats, error)
}
