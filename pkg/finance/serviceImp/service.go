package serviceImp

import (
	"context"
	"fmt"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/finance/repository"
	svc "github.com/baobabstack-code/farm-management-system-sub000/pkg/finance/service"
)

type service struct{ repo repository.Repo }

func New(r repository.Repo) svc.Service { return &service{repo: r} }

func (s *service) Create(ctx context.Context, t *entities.FinancialTransaction) error {
	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now().UTC().Truncate(time.Second)
	}
	t.TransactionDate = t.TransactionDate.UTC()
	if t.UserID == "" {
		return fmt.Errorf("%w: owner is required", svc.ErrInvalidTransaction)
	}
	if err := check(t); err != nil {
		return err
	}
	return s.repo.Create(ctx, t)
}

func (s *service) UpdatePartial(ctx context.Context, id, uid string, p svc.TransactionPatch) (*entities.FinancialTransaction, error) {
	cur, err := s.repo.FindByID(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	if p.TransactionType != nil {
		cur.TransactionType = *p.TransactionType
	}
	if p.Amount != nil {
		cur.Amount = *p.Amount
	}
	if p.Category != nil {
		cur.Category = *p.Category
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.TransactionDate != nil {
		cur.TransactionDate = p.TransactionDate.UTC()
	}
	if p.CropID != nil {
		cur.CropID = p.CropID
	}
	if err := check(cur); err != nil {
		return nil, err
	}
	return cur, s.repo.Update(ctx, cur)
}

func (s *service) ListByRange(ctx context.Context, uid string, from, to *time.Time) ([]entities.FinancialTransaction, error) {
	return s.repo.ListByRange(ctx, uid, from, to)
}

// check holds for every stored transaction: a known type and a positive amount.
func check(t *entities.FinancialTransaction) error {
	if t.TransactionType != entities.Income && t.TransactionType != entities.Expense {
		return fmt.Errorf("%w: transaction_type must be INCOME or EXPENSE", svc.ErrInvalidTransaction)
	}
	if t.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", svc.ErrInvalidTransaction)
	}
	return nil
}
