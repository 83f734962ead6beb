package repository

import (
	"context"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

type CropRepository interface {
	Create(ctx context.Context, c *entities.Crop) error
	List(ctx context.Context, uid string, activeOnly bool) ([]entities.Crop, error)
	// PatchStatus returns gorm.ErrRecordNotFound when no crop of uid has id.
	PatchStatus(ctx context.Context, id, uid string, status entities.CropStatus, harvestedAt *time.Time) error
}
