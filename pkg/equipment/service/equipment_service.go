package service

import (
	"context"
	"errors"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

var ErrInvalidEquipment = errors.New("invalid equipment")

type EquipmentService interface {
	AddEquipment(ctx context.Context, e *entities.Equipment) (*entities.Equipment, error)
	ListEquipment(ctx context.Context, uid string) ([]entities.Equipment, error)
}
