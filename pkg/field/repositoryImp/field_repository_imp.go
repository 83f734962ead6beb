package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(ctx context.Context, f *entities.Field) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fieldRepo) FindByID(ctx context.Context, id, uid string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) List(ctx context.Context, uid string, activeOnly bool) ([]entities.Field, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", uid)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	out := []entities.Field{}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
