package service

import (
	"context"

	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
)

type DashboardService interface {
	Summary(ctx context.Context, ownerID string, r dashboard.DateRange) (*dashboard.SummaryResponse, error)
	Stats(ctx context.Context, ownerID string) (*dashboard.StatsResponse, error)
	RecentTasks(ctx context.Context, ownerID string, limit int) ([]dashboard.TaskItem, error)
	UpcomingHarvests(ctx context.Context, ownerID string, days int) ([]dashboard.HarvestItem, error)
	FinancialSummary(ctx context.Context, ownerID string, r dashboard.DateRange) (*dashboard.FinancialResponse, error)
	Alerts(ctx context.Context, ownerID string) ([]dashboard.Alert, error)
	QuickStats(ctx context.Context, ownerID string) (*dashboard.QuickStats, error)
}
