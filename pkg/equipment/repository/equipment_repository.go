package repository

import (
	"context"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

type EquipmentRepository interface {
	Create(ctx context.Context, e *entities.Equipment) error
	List(ctx context.Context, uid string) ([]entities.Equipment, error)
}
