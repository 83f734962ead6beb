package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cropRepo) List(ctx context.Context, uid string, activeOnly bool) ([]entities.Crop, error) {
	q := r.db.WithContext(ctx).Preload("Field").Where("user_id = ?", uid)
	if activeOnly {
		q = q.Where("status IN ?", entities.ActiveCropStatuses)
	}
	out := []entities.Crop{}
	if err := q.Order("expected_harvest_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) PatchStatus(ctx context.Context, id, uid string, status entities.CropStatus, harvestedAt *time.Time) error {
	updates := map[string]any{"status": status}
	if harvestedAt != nil {
		updates["actual_harvest_date"] = harvestedAt.UTC()
	}
	res := r.db.WithContext(ctx).Model(&entities.Crop{}).
		Where("id = ? AND user_id = ?", id, uid).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
