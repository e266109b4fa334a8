package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementGridsCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementGridsCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementShotsFiredCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementShotsFiredCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementPlacementFailuresCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementPlacementFailuresCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetGridsCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetGridsCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetShotsFiredCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetShotsFiredCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetPlacementFailuresCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetPlacementFailuresCount(ctx, serverIpNet)
}
