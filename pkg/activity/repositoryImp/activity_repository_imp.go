package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/repository"
)

type activityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

func (r *activityRepo) CreateIrrigation(ctx context.Context, l *entities.IrrigationLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *activityRepo) CreateFertilizer(ctx context.Context, l *entities.FertilizerLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *activityRepo) CreateHarvest(ctx context.Context, l *entities.HarvestLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *activityRepo) CreatePestDisease(ctx context.Context, l *entities.PestDiseaseLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *activityRepo) RecentIrrigation(ctx context.Context, uid string, since time.Time) ([]entities.IrrigationLog, error) {
	return recent[entities.IrrigationLog](r.db.WithContext(ctx), uid, "date", since)
}

func (r *activityRepo) RecentFertilizer(ctx context.Context, uid string, since time.Time) ([]entities.FertilizerLog, error) {
	return recent[entities.FertilizerLog](r.db.WithContext(ctx), uid, "date", since)
}

func (r *activityRepo) RecentHarvest(ctx context.Context, uid string, since time.Time) ([]entities.HarvestLog, error) {
	return recent[entities.HarvestLog](r.db.WithContext(ctx).Preload("Crop"), uid, "harvest_date", since)
}

func (r *activityRepo) RecentPestDisease(ctx context.Context, uid string, since time.Time) ([]entities.PestDiseaseLog, error) {
	return recent[entities.PestDiseaseLog](r.db.WithContext(ctx), uid, "date", since)
}

func recent[T any](db *gorm.DB, uid, dateCol string, since time.Time) ([]T, error) {
	out := []T{}
	err := db.Where("user_id = ? AND "+dateCol+" >= ?", uid, since.UTC()).
		Order(dateCol + " DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
