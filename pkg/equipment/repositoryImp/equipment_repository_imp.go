package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/equipment/repository"
)

type equipmentRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EquipmentRepository { return &equipmentRepo{db} }

func (r *equipmentRepo) Create(ctx context.Context, e *entities.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *equipmentRepo) List(ctx context.Context, uid string) ([]entities.Equipment, error) {
	out := []entities.Equipment{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
