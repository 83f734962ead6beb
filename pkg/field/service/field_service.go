package service

import (
	"context"
	"errors"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

var ErrInvalidField = errors.New("invalid field")

type FieldService interface {
	CreateField(ctx context.Context, f *entities.Field) (*entities.Field, error)
	GetFieldByID(ctx context.Context, id, uid string) (*entities.Field, error)
	ListFields(ctx context.Context, uid string, activeOnly bool) ([]entities.Field, error)
}
