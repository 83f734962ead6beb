package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/finance/repository"
)

type gormRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &gormRepo{db: db} }

func (r *gormRepo) Create(ctx context.Context, t *entities.FinancialTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *gormRepo) Update(ctx context.Context, t *entities.FinancialTransaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *gormRepo) FindByID(ctx context.Context, id, uid string) (*entities.FinancialTransaction, error) {
	var out entities.FinancialTransaction
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *gormRepo) ListByRange(ctx context.Context, uid string, from, to *time.Time) ([]entities.FinancialTransaction, error) {
	q := r.db.WithContext(ctx).Model(&entities.FinancialTransaction{}).Where("user_id = ?", uid)
	if from != nil {
		q = q.Where("transaction_date >= ?", from.UTC())
	}
	if to != nil {
		q = q.Where("transaction_date <= ?", to.UTC())
	}
	list := []entities.FinancialTransaction{}
	return list, q.Order("transaction_date asc, id asc").Find(&list).Error
}
