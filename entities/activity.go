package entities

import "time"

type IrrigationLog struct {
	Base
	CropID      *string   `gorm:"size:36;index" json:"crop_id"`
	FieldID     *string   `gorm:"size:36;index" json:"field_id"`
	Date        time.Time `gorm:"index" json:"date"`
	Duration    float64   `json:"duration"`     // minutes
	WaterAmount float64   `json:"water_amount"` // litres
	Method      string    `json:"method"`       // drip|sprinkler|flood
	Notes       string    `json:"notes"`
}

type FertilizerLog struct {
	Base
	CropID         *string   `gorm:"size:36;index" json:"crop_id"`
	Date           time.Time `gorm:"index" json:"date"`
	FertilizerType string    `json:"fertilizer_type"`
	Amount         float64   `json:"amount"`
	Unit           string    `json:"unit"`
	Notes          string    `json:"notes"`
}

type HarvestLog struct {
	Base
	CropID      string    `gorm:"size:36;index" json:"crop_id"`
	Crop        *Crop     `json:"crop,omitempty"`
	HarvestDate time.Time `gorm:"index" json:"harvest_date"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Quality     string    `json:"quality"`
	Notes       string    `json:"notes"`
}

type IncidentType string

const (
	IncidentPest    IncidentType = "PEST"
	IncidentDisease IncidentType = "DISEASE"
)

type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

type PestDiseaseLog struct {
	Base
	CropID    *string      `gorm:"size:36;index" json:"crop_id"`
	Date      time.Time    `gorm:"index" json:"date"`
	Type      IncidentType `gorm:"size:16" json:"type"`
	Name      string       `json:"name"`
	Severity  Severity     `gorm:"size:16" json:"severity"`
	Treatment string       `json:"treatment"`
	Notes     string       `json:"notes"`
}
