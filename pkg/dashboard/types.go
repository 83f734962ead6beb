// Package dashboard holds the types shared by the dashboard repository,
// service and controller, plus the pure helpers they use.
package dashboard

import (
	"errors"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
)

var (
	ErrInvalidDateRange = errors.New("start date is after end date")
	ErrOwnerRequired    = errors.New("owner id is required")
)

// DateRange bounds a query; both ends inclusive, either may be nil (open).
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ---- raw repository results ----

type TotalCounts struct {
	TotalCrops     int64
	TotalFields    int64
	TotalTasks     int64
	TotalEquipment int64
}

type TaskStats struct {
	Pending    int64
	Overdue    int64
	Completed  int64
	InProgress int64
	Active     int64 // Pending + InProgress
}

type WaterUsage struct {
	TotalWater        float64
	SessionCount      int64
	AveragePerSession float64
}

type FertilizerUsage struct {
	TotalAmount      float64
	ApplicationCount int64
	TypeBreakdown    map[string]float64
}

type YieldStats struct {
	TotalYield    float64
	HarvestCount  int64
	CropBreakdown map[string]float64
}

type PestDiseaseStats struct {
	TotalIncidents    int64
	PestCount         int64
	DiseaseCount      int64
	SeverityBreakdown map[entities.Severity]int64
}

type FinancialSummary struct {
	TotalIncome      float64
	TotalExpenses    float64
	Balance          float64
	TransactionCount int64
}

// Summary is the orchestrator's composite snapshot for one owner.
type Summary struct {
	Counts           TotalCounts
	ActiveCrops      int64
	Tasks            TaskStats
	RecentTasks      []entities.Task
	UpcomingHarvests []entities.Crop
	RecentHarvests   int64
	Water            WaterUsage
	Fertilizer       FertilizerUsage
	Yield            YieldStats
	PestDisease      PestDiseaseStats
	Financial        FinancialSummary
	Location         *entities.Field
}
