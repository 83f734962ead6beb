package entities

type Field struct {
	Base
	Name      string   `json:"name"`
	Area      *float64 `json:"area"`
	SoilType  string   `json:"soil_type"` // sand|loam|clay
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
	IsActive  bool     `gorm:"index" json:"is_active"`
}

type Equipment struct {
	Base
	Name     string `json:"name"`
	Category string `json:"category"` // tractor|pump|sprayer|other
	Status   string `json:"status"`
}
