package serviceImp

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
	repo "github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/repository"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/service"
)

const (
	statsHarvestDays = 30
	alertWindowDays  = 7
)

type dashboardSvc struct {
	r   repo.DashboardRepository
	log *zap.Logger
	now func() time.Time
}

type Option func(*dashboardSvc)

func WithClock(now func() time.Time) Option {
	return func(s *dashboardSvc) { s.now = now }
}

func New(r repo.DashboardRepository, log *zap.Logger, opts ...Option) service.DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &dashboardSvc{r: r, log: log, now: func() time.Time { return time.Now().UTC() }}
	for _, o := range opts {
		o(s)
	}
	return s
}

func checkOwner(ownerID string) error {
	if ownerID == "" {
		return dashboard.ErrOwnerRequired
	}
	return nil
}

// checkRange rejects inverted ranges before any query runs.
func checkRange(r dashboard.DateRange) error {
	if !dashboard.ValidateDateRange(r) {
		return dashboard.ErrInvalidDateRange
	}
	return nil
}

func (s *dashboardSvc) Summary(ctx context.Context, ownerID string, rg dashboard.DateRange) (*dashboard.SummaryResponse, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	if err := checkRange(rg); err != nil {
		return nil, err
	}

	start := time.Now()
	sum, err := s.r.Summary(ctx, ownerID, rg)
	if err != nil {
		return nil, err
	}
	s.log.Debug("dashboard summary collected",
		zap.String("owner", ownerID),
		zap.Duration("took", time.Since(start)),
	)

	now := s.now()
	out := &dashboard.SummaryResponse{
		Counts: dashboard.CountsResponse{
			TotalCrops:     sum.Counts.TotalCrops,
			TotalFields:    sum.Counts.TotalFields,
			TotalTasks:     sum.Counts.TotalTasks,
			TotalEquipment: sum.Counts.TotalEquipment,
			ActiveCrops:    sum.ActiveCrops,
		},
		Tasks: dashboard.TasksResponse{
			Pending:    sum.Tasks.Pending,
			Overdue:    sum.Tasks.Overdue,
			Completed:  sum.Tasks.Completed,
			InProgress: sum.Tasks.InProgress,
			Active:     sum.Tasks.Active,
			Recent:     taskItems(sum.RecentTasks),
		},
		Harvests: dashboard.HarvestsResponse{
			Upcoming:    harvestItems(sum.UpcomingHarvests, now),
			RecentCount: sum.RecentHarvests,
		},
		Resources: dashboard.ResourcesResponse{
			Water: dashboard.WaterResponse{
				TotalWater:        sum.Water.TotalWater,
				SessionCount:      sum.Water.SessionCount,
				AveragePerSession: sum.Water.AveragePerSession,
			},
			Fertilizer: dashboard.FertilizerResponse{
				TotalAmount:      sum.Fertilizer.TotalAmount,
				ApplicationCount: sum.Fertilizer.ApplicationCount,
				TypeBreakdown:    nonNilMap(sum.Fertilizer.TypeBreakdown),
			},
		},
		Yield: dashboard.YieldResponse{
			TotalYield:    sum.Yield.TotalYield,
			HarvestCount:  sum.Yield.HarvestCount,
			CropBreakdown: nonNilMap(sum.Yield.CropBreakdown),
		},
		PestDisease: pestDisease(sum.PestDisease),
		Financial:   financial(sum.Financial),
		Location:    location(sum.Location),
		GeneratedAt: dashboard.ISO(now),
	}
	return out, nil
}

// Stats is the five-read slice for callers that need only top-line numbers.
func (s *dashboardSvc) Stats(ctx context.Context, ownerID string) (*dashboard.StatsResponse, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}

	var (
		counts   dashboard.TotalCounts
		active   int64
		tasks    dashboard.TaskStats
		upcoming []entities.Crop
		fin      dashboard.FinancialSummary
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { counts, err = s.r.TotalCounts(ctx, ownerID); return err })
	g.Go(func() (err error) { active, err = s.r.ActiveCropsCount(ctx, ownerID); return err })
	g.Go(func() (err error) { tasks, err = s.r.TaskStats(ctx, ownerID); return err })
	g.Go(func() (err error) { upcoming, err = s.r.UpcomingHarvests(ctx, ownerID, statsHarvestDays); return err })
	g.Go(func() (err error) { fin, err = s.r.FinancialSummary(ctx, ownerID, dashboard.DateRange{}); return err })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.StatsResponse{
		TotalCrops:       counts.TotalCrops,
		ActiveCrops:      active,
		TotalFields:      counts.TotalFields,
		TotalTasks:       counts.TotalTasks,
		TotalEquipment:   counts.TotalEquipment,
		ActiveTasks:      tasks.Active,
		OverdueTasks:     tasks.Overdue,
		CompletedTasks:   tasks.Completed,
		UpcomingHarvests: int64(len(upcoming)),
		Balance:          fin.Balance,
	}, nil
}

func (s *dashboardSvc) RecentTasks(ctx context.Context, ownerID string, limit int) ([]dashboard.TaskItem, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	tasks, err := s.r.RecentTasks(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}
	return taskItems(tasks), nil
}

func (s *dashboardSvc) UpcomingHarvests(ctx context.Context, ownerID string, days int) ([]dashboard.HarvestItem, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	crops, err := s.r.UpcomingHarvests(ctx, ownerID, days)
	if err != nil {
		return nil, err
	}
	return harvestItems(crops, s.now()), nil
}

func (s *dashboardSvc) FinancialSummary(ctx context.Context, ownerID string, rg dashboard.DateRange) (*dashboard.FinancialResponse, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}
	if err := checkRange(rg); err != nil {
		return nil, err
	}
	fin, err := s.r.FinancialSummary(ctx, ownerID, rg)
	if err != nil {
		return nil, err
	}
	out := financial(fin)
	return &out, nil
}

// Alerts derives warnings from overdue tasks, harvests due within a week and
// high-severity incidents reported within a week.
func (s *dashboardSvc) Alerts(ctx context.Context, ownerID string) ([]dashboard.Alert, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}

	now := s.now()
	weekAgo := now.AddDate(0, 0, -alertWindowDays)
	var (
		tasks    dashboard.TaskStats
		upcoming []entities.Crop
		pests    dashboard.PestDiseaseStats
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { tasks, err = s.r.TaskStats(ctx, ownerID); return err })
	g.Go(func() (err error) { upcoming, err = s.r.UpcomingHarvests(ctx, ownerID, alertWindowDays); return err })
	g.Go(func() (err error) {
		pests, err = s.r.PestDiseaseStats(ctx, ownerID, dashboard.DateRange{Start: &weekAgo, End: &now})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	alerts := []dashboard.Alert{}
	if n := tasks.Overdue; n > 0 {
		alerts = append(alerts, dashboard.Alert{
			Type:    dashboard.AlertWarning,
			Title:   "Overdue Tasks",
			Message: fmt.Sprintf("You have %d overdue %s", n, plural(n, "task")),
			Count:   n,
		})
	}
	if n := int64(len(upcoming)); n > 0 {
		alerts = append(alerts, dashboard.Alert{
			Type:    dashboard.AlertInfo,
			Title:   "Upcoming Harvests",
			Message: fmt.Sprintf("%d %s ready for harvest in the next %d days", n, plural(n, "crop"), alertWindowDays),
			Count:   n,
		})
	}
	if n := pests.SeverityBreakdown[entities.SeverityHigh]; n > 0 {
		alerts = append(alerts, dashboard.Alert{
			Type:    dashboard.AlertError,
			Title:   "High Severity Issues",
			Message: fmt.Sprintf("%d high-severity pest or disease %s reported this week", n, plural(n, "incident")),
			Count:   n,
		})
	}
	return alerts, nil
}

func (s *dashboardSvc) QuickStats(ctx context.Context, ownerID string) (*dashboard.QuickStats, error) {
	if err := checkOwner(ownerID); err != nil {
		return nil, err
	}

	var (
		active   int64
		tasks    dashboard.TaskStats
		upcoming []entities.Crop
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { active, err = s.r.ActiveCropsCount(ctx, ownerID); return err })
	g.Go(func() (err error) { tasks, err = s.r.TaskStats(ctx, ownerID); return err })
	g.Go(func() (err error) { upcoming, err = s.r.UpcomingHarvests(ctx, ownerID, alertWindowDays); return err })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.QuickStats{
		ActiveCrops:      active,
		ActiveTasks:      tasks.Active,
		OverdueTasks:     tasks.Overdue,
		UpcomingHarvests: int64(len(upcoming)),
	}, nil
}

func taskItems(tasks []entities.Task) []dashboard.TaskItem {
	out := make([]dashboard.TaskItem, 0, len(tasks))
	for _, t := range tasks {
		item := dashboard.TaskItem{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			DueDate:     dashboard.ISO(t.DueDate),
			Priority:    string(t.Priority),
			Status:      string(t.Status),
			CreatedAt:   dashboard.ISO(t.CreatedAt),
		}
		if t.Crop != nil {
			name := t.Crop.Name
			item.CropName = &name
		}
		out = append(out, item)
	}
	return out
}

func harvestItems(crops []entities.Crop, now time.Time) []dashboard.HarvestItem {
	out := make([]dashboard.HarvestItem, 0, len(crops))
	for _, c := range crops {
		out = append(out, dashboard.HarvestItem{
			ID:                  c.ID,
			Name:                c.Name,
			Variety:             c.Variety,
			Status:              string(c.Status),
			PlantingDate:        dashboard.ISO(c.PlantingDate),
			ExpectedHarvestDate: dashboard.ISO(c.ExpectedHarvestDate),
			Area:                c.Area,
			DaysUntilHarvest:    dashboard.DaysUntilHarvest(c.ExpectedHarvestDate, now),
		})
	}
	return out
}

func pestDisease(p dashboard.PestDiseaseStats) dashboard.PestDiseaseResponse {
	sev := map[string]int64{"LOW": 0, "MEDIUM": 0, "HIGH": 0}
	for k, v := range p.SeverityBreakdown {
		sev[string(k)] = v
	}
	return dashboard.PestDiseaseResponse{
		TotalIncidents:    p.TotalIncidents,
		PestCount:         p.PestCount,
		DiseaseCount:      p.DiseaseCount,
		SeverityBreakdown: sev,
	}
}

func financial(f dashboard.FinancialSummary) dashboard.FinancialResponse {
	return dashboard.FinancialResponse{
		TotalIncome:      f.TotalIncome,
		TotalExpenses:    f.TotalExpenses,
		Balance:          f.Balance,
		TransactionCount: f.TransactionCount,
		ProfitMargin:     dashboard.ProfitMargin(f.TotalIncome, f.TotalExpenses),
	}
}

func location(f *entities.Field) *dashboard.LocationResponse {
	if f == nil || f.Latitude == nil || f.Longitude == nil {
		return nil
	}
	var name *string
	if f.Name != "" {
		n := f.Name
		name = &n
	}
	return &dashboard.LocationResponse{Latitude: *f.Latitude, Longitude: *f.Longitude, Name: name}
}

func nonNilMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}

func plural(n int64, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
