package repository

import (
	"context"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

type Repo interface {
	Create(ctx context.Context, t *entities.FinancialTransaction) error
	Update(ctx context.Context, t *entities.FinancialTransaction) error
	FindByID(ctx context.Context, id, uid string) (*entities.FinancialTransaction, error)
	ListByRange(ctx context.Context, uid string, from, to *time.Time) ([]entities.FinancialTransaction, error)
}
