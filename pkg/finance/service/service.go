package service

import (
	"context"
	"errors"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

type Service interface {
	Create(ctx context.Context, in *entities.FinancialTransaction) error
	ListByRange(ctx context.Context, uid string, from, to *time.Time) ([]entities.FinancialTransaction, error)
	UpdatePartial(ctx context.Context, id, uid string, patch TransactionPatch) (*entities.FinancialTransaction, error)
}

// TransactionPatch carries only the fields to change; nil leaves a field as is.
type TransactionPatch struct {
	TransactionType *entities.TransactionType `json:"transaction_type"`
	Amount          *float64                  `json:"amount"`
	Category        *string                   `json:"category"`
	Description     *string                   `json:"description"`
	TransactionDate *time.Time                `json:"transaction_date"`
	CropID          *string                   `json:"crop_id"`
}
