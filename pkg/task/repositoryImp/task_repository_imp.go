package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Create(ctx context.Context, t *entities.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepo) List(ctx context.Context, uid string, from, to *time.Time, status entities.TaskStatus) ([]entities.Task, error) {
	q := r.db.WithContext(ctx).Preload("Crop").Where("user_id = ?", uid)
	if from != nil {
		q = q.Where("due_date >= ?", from.UTC())
	}
	if to != nil {
		q = q.Where("due_date <= ?", to.UTC())
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	out := []entities.Task{}
	if err := q.Order("due_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) PatchStatus(ctx context.Context, id, uid string, status entities.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&entities.Task{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
