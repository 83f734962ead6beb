package repository

import (
	"context"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

type FieldRepository interface {
	Create(ctx context.Context, f *entities.Field) error
	FindByID(ctx context.Context, id, uid string) (*entities.Field, error)
	List(ctx context.Context, uid string, activeOnly bool) ([]entities.Field, error)
}
