package repository

import (
	"context"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

type TaskRepository interface {
	Create(ctx context.Context, t *entities.Task) error
	// List returns tasks due within [from, to], either bound optional, oldest due first.
	List(ctx context.Context, uid string, from, to *time.Time, status entities.TaskStatus) ([]entities.Task, error)
	PatchStatus(ctx context.Context, id, uid string, status entities.TaskStatus) error
}
