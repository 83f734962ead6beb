package service

import (
	"context"
	"errors"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

var ErrInvalidCrop = errors.New("invalid crop")

type CropService interface {
	CreateCrop(ctx context.Context, c *entities.Crop) (*entities.Crop, error)
	ListCrops(ctx context.Context, uid string, activeOnly bool) ([]entities.Crop, error)
	// UpdateStatus moves a crop along its lifecycle. Harvested crops get an
	// actual harvest date, now when none is given.
	UpdateStatus(ctx context.Context, id, uid string, status entities.CropStatus) error
}
