package service

import (
	"context"
	"errors"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

var ErrInvalidTask = errors.New("invalid task")

type TaskService interface {
	Create(ctx context.Context, t *entities.Task) (*entities.Task, error)
	List(ctx context.Context, uid string, from, to *time.Time, status entities.TaskStatus) ([]entities.Task, error)
	Patch(ctx context.Context, id, uid string, status entities.TaskStatus) error
}
