package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	repo "github.com/baobabstack-code/farm-management-system-sub000/pkg/equipment/repository"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/equipment/service"
)

const defaultStatus = "OPERATIONAL"

type equipmentSvc struct{ r repo.EquipmentRepository }

func NewEquipmentService(r repo.EquipmentRepository) service.EquipmentService {
	return &equipmentSvc{r}
}

func (s *equipmentSvc) AddEquipment(ctx context.Context, e *entities.Equipment) (*entities.Equipment, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Category = strings.ToLower(strings.TrimSpace(e.Category))
	if e.Category == "" {
		e.Category = "other"
	}
	if e.Status == "" {
		e.Status = defaultStatus
	}
	switch {
	case e.UserID == "":
		return nil, fmt.Errorf("%w: owner is required", service.ErrInvalidEquipment)
	case e.Name == "":
		return nil, fmt.Errorf("%w: name is required", service.ErrInvalidEquipment)
	}
	if err := s.r.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *equipmentSvc) ListEquipment(ctx context.Context, uid string) ([]entities.Equipment, error) {
	return s.r.List(ctx, uid)
}
