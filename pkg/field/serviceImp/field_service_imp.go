package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	repo "github.com/baobabstack-code/farm-management-system-sub000/pkg/field/repository"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/field/service"
)

type fieldSvc struct{ r repo.FieldRepository }

func NewFieldService(r repo.FieldRepository) service.FieldService { return &fieldSvc{r} }

func (s *fieldSvc) CreateField(ctx context.Context, f *entities.Field) (*entities.Field, error) {
	if err := validate(f); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fieldSvc) GetFieldByID(ctx context.Context, id, uid string) (*entities.Field, error) {
	return s.r.FindByID(ctx, id, uid)
}

func (s *fieldSvc) ListFields(ctx context.Context, uid string, activeOnly bool) ([]entities.Field, error) {
	return s.r.List(ctx, uid, activeOnly)
}

func validate(f *entities.Field) error {
	f.Name = strings.TrimSpace(f.Name)
	switch {
	case f.UserID == "":
		return fmt.Errorf("%w: owner is required", service.ErrInvalidField)
	case f.Name == "":
		return fmt.Errorf("%w: name is required", service.ErrInvalidField)
	case f.Area != nil && *f.Area < 0:
		return fmt.Errorf("%w: area must not be negative", service.ErrInvalidField)
	case (f.Latitude == nil) != (f.Longitude == nil):
		return fmt.Errorf("%w: latitude and longitude go together", service.ErrInvalidField)
	case f.Latitude != nil && (*f.Latitude < -90 || *f.Latitude > 90):
		return fmt.Errorf("%w: latitude out of range", service.ErrInvalidField)
	case f.Longitude != nil && (*f.Longitude < -180 || *f.Longitude > 180):
		return fmt.Errorf("%w: longitude out of range", service.ErrInvalidField)
	}
	return nil
}
