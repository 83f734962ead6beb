package entities

import "time"

type CropStatus string

const (
	CropPlanted   CropStatus = "PLANTED"
	CropGrowing   CropStatus = "GROWING"
	CropFlowering CropStatus = "FLOWERING"
	CropFruiting  CropStatus = "FRUITING"
	CropHarvested CropStatus = "HARVESTED"
	CropCompleted CropStatus = "COMPLETED"
)

// ActiveCropStatuses are the statuses of a crop still in the ground.
var ActiveCropStatuses = []CropStatus{CropPlanted, CropGrowing, CropFlowering, CropFruiting}

func (s CropStatus) Active() bool {
	for _, a := range ActiveCropStatuses {
		if s == a {
			return true
		}
	}
	return false
}

type Crop struct {
	Base
	Name                string     `json:"name"`
	Variety             *string    `json:"variety"`
	Status              CropStatus `gorm:"index;size:16" json:"status"`
	PlantingDate        time.Time  `json:"planting_date"`
	ExpectedHarvestDate time.Time  `gorm:"index" json:"expected_harvest_date"`
	ActualHarvestDate   *time.Time `json:"actual_harvest_date"`
	Area                *float64   `json:"area"`
	FieldID             *string    `gorm:"size:36;index" json:"field_id"`
	Field               *Field     `json:"field,omitempty"`
}
