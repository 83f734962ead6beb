package repository

import (
	"context"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

// ActivityRepository stores the field logs the dashboard aggregates.
// Recent* return rows dated on or after since, newest first.
type ActivityRepository interface {
	CreateIrrigation(ctx context.Context, l *entities.IrrigationLog) error
	CreateFertilizer(ctx context.Context, l *entities.FertilizerLog) error
	CreateHarvest(ctx context.Context, l *entities.HarvestLog) error
	CreatePestDisease(ctx context.Context, l *entities.PestDiseaseLog) error

	RecentIrrigation(ctx context.Context, uid string, since time.Time) ([]entities.IrrigationLog, error)
	RecentFertilizer(ctx context.Context, uid string, since time.Time) ([]entities.FertilizerLog, error)
	RecentHarvest(ctx context.Context, uid string, since time.Time) ([]entities.HarvestLog, error)
	RecentPestDisease(ctx context.Context, uid string, since time.Time) ([]entities.PestDiseaseLog, error)
}
