package repository

import (
	"context"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
)

// DashboardRepository reads one metric family per method; none depend on each other.
type DashboardRepository interface {
	TotalCounts(ctx context.Context, ownerID string) (dashboard.TotalCounts, error)
	ActiveCropsCount(ctx context.Context, ownerID string) (int64, error)
	ActiveCrops(ctx context.Context, ownerID string) ([]entities.Crop, error)
	RecentTasks(ctx context.Context, ownerID string, limit int) ([]entities.Task, error)
	UpcomingHarvests(ctx context.Context, ownerID string, days int) ([]entities.Crop, error)
	TaskStats(ctx context.Context, ownerID string) (dashboard.TaskStats, error)
	WaterUsage(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.WaterUsage, error)
	FertilizerUsage(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.FertilizerUsage, error)
	YieldStats(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.YieldStats, error)
	PestDiseaseStats(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.PestDiseaseStats, error)
	RecentHarvestCount(ctx context.Context, ownerID string, days int) (int64, error)
	FirstFieldWithLocation(ctx context.Context, ownerID string) (*entities.Field, error)
	FinancialSummary(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.FinancialSummary, error)

	// Summary runs every read above concurrently and fails as a whole on the first error.
	Summary(ctx context.Context, ownerID string, r dashboard.DateRange) (*dashboard.Summary, error)
}
