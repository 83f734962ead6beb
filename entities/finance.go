package entities

import "time"

type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

type FinancialTransaction struct {
	Base
	TransactionType TransactionType `gorm:"index;size:16" json:"transaction_type"`
	Amount          float64         `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `gorm:"index" json:"transaction_date"`
	CropID          *string         `gorm:"size:36;index" json:"crop_id"`
}

// All lists every model, in migration order.
func All() []any {
	return []any{
		&Field{},
		&Crop{},
		&Equipment{},
		&Task{},
		&IrrigationLog{},
		&FertilizerLog{},
		&HarvestLog{},
		&PestDiseaseLog{},
		&FinancialTransaction{},
	}
}
