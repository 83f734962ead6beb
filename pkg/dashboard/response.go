package dashboard

// Response shapes serialized to clients. Optional values are pointers so they
// render as null; maps and slices are always non-nil.

type SummaryResponse struct {
	Counts      CountsResponse      `json:"counts"`
	Tasks       TasksResponse       `json:"tasks"`
	Harvests    HarvestsResponse    `json:"harvests"`
	Resources   ResourcesResponse   `json:"resources"`
	Yield       YieldResponse       `json:"yield"`
	PestDisease PestDiseaseResponse `json:"pestDisease"`
	Financial   FinancialResponse   `json:"financial"`
	Location    *LocationResponse   `json:"location"`
	GeneratedAt string              `json:"generatedAt"`
}

type CountsResponse struct {
	TotalCrops     int64 `json:"totalCrops"`
	TotalFields    int64 `json:"totalFields"`
	TotalTasks     int64 `json:"totalTasks"`
	TotalEquipment int64 `json:"totalEquipment"`
	ActiveCrops    int64 `json:"activeCrops"`
}

type TasksResponse struct {
	Pending    int64      `json:"pending"`
	Overdue    int64      `json:"overdue"`
	Completed  int64      `json:"completed"`
	InProgress int64      `json:"inProgress"`
	Active     int64      `json:"active"`
	Recent     []TaskItem `json:"recent"`
}

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"dueDate"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	CropName    *string `json:"cropName"`
}

type HarvestsResponse struct {
	Upcoming    []HarvestItem `json:"upcoming"`
	RecentCount int64         `json:"recentCount"`
}

type HarvestItem struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Variety             *string  `json:"variety"`
	Status              string   `json:"status"`
	PlantingDate        string   `json:"plantingDate"`
	ExpectedHarvestDate string   `json:"expectedHarvestDate"`
	Area                *float64 `json:"area"`
	DaysUntilHarvest    int      `json:"daysUntilHarvest"`
}

type ResourcesResponse struct {
	Water      WaterResponse      `json:"water"`
	Fertilizer FertilizerResponse `json:"fertilizer"`
}

type WaterResponse struct {
	TotalWater        float64 `json:"totalWater"`
	SessionCount      int64   `json:"sessionCount"`
	AveragePerSession float64 `json:"averagePerSession"`
}

type FertilizerResponse struct {
	TotalAmount      float64            `json:"totalAmount"`
	ApplicationCount int64              `json:"applicationCount"`
	TypeBreakdown    map[string]float64 `json:"typeBreakdown"`
}

type YieldResponse struct {
	TotalYield    float64            `json:"totalYield"`
	HarvestCount  int64              `json:"harvestCount"`
	CropBreakdown map[string]float64 `json:"cropBreakdown"`
}

type PestDiseaseResponse struct {
	TotalIncidents    int64            `json:"totalIncidents"`
	PestCount         int64            `json:"pestCount"`
	DiseaseCount      int64            `json:"diseaseCount"`
	SeverityBreakdown map[string]int64 `json:"severityBreakdown"`
}

type FinancialResponse struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int64   `json:"transactionCount"`
	ProfitMargin     float64 `json:"profitMargin"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      *string `json:"name"`
}

// StatsResponse is the top-line slice served without the full fan-out.
type StatsResponse struct {
	TotalCrops       int64   `json:"totalCrops"`
	ActiveCrops      int64   `json:"activeCrops"`
	TotalFields      int64   `json:"totalFields"`
	TotalTasks       int64   `json:"totalTasks"`
	TotalEquipment   int64   `json:"totalEquipment"`
	ActiveTasks      int64   `json:"activeTasks"`
	OverdueTasks     int64   `json:"overdueTasks"`
	CompletedTasks   int64   `json:"completedTasks"`
	UpcomingHarvests int64   `json:"upcomingHarvests"`
	Balance          float64 `json:"balance"`
}

type QuickStats struct {
	ActiveCrops      int64 `json:"activeCrops"`
	ActiveTasks      int64 `json:"activeTasks"`
	OverdueTasks     int64 `json:"overdueTasks"`
	UpcomingHarvests int64 `json:"upcomingHarvests"`
}

type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
)

type Alert struct {
	Type    AlertType `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Count   int64     `json:"count"`
}
