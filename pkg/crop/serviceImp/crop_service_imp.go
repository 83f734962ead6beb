package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	repo "github.com/baobabstack-code/farm-management-system-sub000/pkg/crop/repository"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/crop/service"
)

type cropSvc struct {
	r   repo.CropRepository
	now func() time.Time
}

func NewCropService(r repo.CropRepository) service.CropService {
	return &cropSvc{r: r, now: func() time.Time { return time.Now().UTC() }}
}

func (s *cropSvc) CreateCrop(ctx context.Context, c *entities.Crop) (*entities.Crop, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Status == "" {
		c.Status = entities.CropPlanted
	}
	if c.PlantingDate.IsZero() {
		c.PlantingDate = s.now().Truncate(time.Second)
	}
	c.PlantingDate = c.PlantingDate.UTC()
	c.ExpectedHarvestDate = c.ExpectedHarvestDate.UTC()
	switch {
	case c.UserID == "":
		return nil, fmt.Errorf("%w: owner is required", service.ErrInvalidCrop)
	case c.Name == "":
		return nil, fmt.Errorf("%w: name is required", service.ErrInvalidCrop)
	case c.ExpectedHarvestDate.IsZero():
		return nil, fmt.Errorf("%w: expected_harvest_date is required", service.ErrInvalidCrop)
	case c.ExpectedHarvestDate.Before(c.PlantingDate):
		return nil, fmt.Errorf("%w: expected_harvest_date is before planting_date", service.ErrInvalidCrop)
	case c.Area != nil && *c.Area < 0:
		return nil, fmt.Errorf("%w: area must not be negative", service.ErrInvalidCrop)
	case !validStatus(c.Status):
		return nil, fmt.Errorf("%w: unknown status %q", service.ErrInvalidCrop, c.Status)
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cropSvc) ListCrops(ctx context.Context, uid string, activeOnly bool) ([]entities.Crop, error) {
	return s.r.List(ctx, uid, activeOnly)
}

func (s *cropSvc) UpdateStatus(ctx context.Context, id, uid string, status entities.CropStatus) error {
	if !validStatus(status) {
		return fmt.Errorf("%w: unknown status %q", service.ErrInvalidCrop, status)
	}
	var harvestedAt *time.Time
	if status == entities.CropHarvested {
		at := s.now().Truncate(time.Second)
		harvestedAt = &at
	}
	return s.r.PatchStatus(ctx, id, uid, status, harvestedAt)
}

func validStatus(st entities.CropStatus) bool {
	return st.Active() || st == entities.CropHarvested || st == entities.CropCompleted
}
