package repositoryImp

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/database"
	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/repository"
)

const (
	DefaultRecentTasks = 10
	DefaultHarvestDays = 30
	unknownCropName    = "Unknown"
)

type dashboardRepo struct {
	db    *gorm.DB
	guard *database.Guard
	now   func() time.Time
}

type Option func(*dashboardRepo)

// WithClock replaces time.Now for "now"-relative windows.
func WithClock(now func() time.Time) Option {
	return func(r *dashboardRepo) { r.now = now }
}

// New builds the repository. guard may be nil, in which case each query runs once.
func New(db *gorm.DB, guard *database.Guard, opts ...Option) repository.DashboardRepository {
	r := &dashboardRepo{db: db, guard: guard, now: func() time.Time { return time.Now().UTC() }}
	for _, o := range opts {
		o(r)
	}
	return r
}

// run is the only place that touches the database.
func (r *dashboardRepo) run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.guard.Run(ctx, func(ctx context.Context) error {
		return fn(r.db.WithContext(ctx))
	})
}

func (r *dashboardRepo) count(ctx context.Context, model any, scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var n int64
	err := r.run(ctx, func(tx *gorm.DB) error {
		return tx.Model(model).Scopes(scopes...).Count(&n).Error
	})
	return n, err
}

func owner(id string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB { return q.Where("user_id = ?", id) }
}

// within bounds col by an inclusive, possibly open, date range.
func within(col string, rg dashboard.DateRange) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if rg.Start != nil {
			q = q.Where(col+" >= ?", rg.Start.UTC())
		}
		if rg.End != nil {
			q = q.Where(col+" <= ?", rg.End.UTC())
		}
		return q
	}
}

func (r *dashboardRepo) TotalCounts(ctx context.Context, ownerID string) (dashboard.TotalCounts, error) {
	var out dashboard.TotalCounts
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalCrops, err = r.count(ctx, &entities.Crop{}, owner(ownerID))
		return err
	})
	g.Go(func() (err error) {
		out.TotalFields, err = r.count(ctx, &entities.Field{}, owner(ownerID), func(q *gorm.DB) *gorm.DB {
			return q.Where("is_active = ?", true)
		})
		return err
	})
	g.Go(func() (err error) {
		out.TotalTasks, err = r.count(ctx, &entities.Task{}, owner(ownerID))
		return err
	})
	g.Go(func() (err error) {
		out.TotalEquipment, err = r.count(ctx, &entities.Equipment{}, owner(ownerID))
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.TotalCounts{}, err
	}
	return out, nil
}

func activeStatus(q *gorm.DB) *gorm.DB {
	return q.Where("status IN ?", entities.ActiveCropStatuses)
}

func (r *dashboardRepo) ActiveCropsCount(ctx context.Context, ownerID string) (int64, error) {
	return r.count(ctx, &entities.Crop{}, owner(ownerID), activeStatus)
}

func (r *dashboardRepo) ActiveCrops(ctx context.Context, ownerID string) ([]entities.Crop, error) {
	var out []entities.Crop
	err := r.run(ctx, func(tx *gorm.DB) error {
		var rows []entities.Crop
		if err := tx.Scopes(owner(ownerID), activeStatus).
			Order("planting_date DESC").Order("id").
			Find(&rows).Error; err != nil {
			return err
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (r *dashboardRepo) RecentTasks(ctx context.Context, ownerID string, limit int) ([]entities.Task, error) {
	if limit <= 0 {
		limit = DefaultRecentTasks
	}
	var out []entities.Task
	err := r.run(ctx, func(tx *gorm.DB) error {
		var rows []entities.Task
		if err := tx.Scopes(owner(ownerID)).
			Preload("Crop", func(q *gorm.DB) *gorm.DB { return q.Select("id", "name") }).
			Order("created_at DESC").Order("id").
			Limit(limit).
			Find(&rows).Error; err != nil {
			return err
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// UpcomingHarvests lists crops due in [now, now+days], excluding harvested ones.
func (r *dashboardRepo) UpcomingHarvests(ctx context.Context, ownerID string, days int) ([]entities.Crop, error) {
	if days <= 0 {
		days = DefaultHarvestDays
	}
	now := r.now().UTC()
	window := dashboard.DateRange{Start: &now, End: ptr(now.AddDate(0, 0, days))}

	var out []entities.Crop
	err := r.run(ctx, func(tx *gorm.DB) error {
		var rows []entities.Crop
		if err := tx.Scopes(owner(ownerID), within("expected_harvest_date", window)).
			Where("status <> ?", entities.CropHarvested).
			Order("expected_harvest_date ASC").Order("id").
			Find(&rows).Error; err != nil {
			return err
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (r *dashboardRepo) TaskStats(ctx context.Context, ownerID string) (dashboard.TaskStats, error) {
	var out dashboard.TaskStats
	now := r.now().UTC()
	status := func(s entities.TaskStatus) func(*gorm.DB) *gorm.DB {
		return func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", s) }
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Pending, err = r.count(ctx, &entities.Task{}, owner(ownerID), status(entities.TaskPending))
		return err
	})
	g.Go(func() (err error) {
		out.Overdue, err = r.count(ctx, &entities.Task{}, owner(ownerID), status(entities.TaskPending), func(q *gorm.DB) *gorm.DB {
			return q.Where("due_date < ?", now)
		})
		return err
	})
	g.Go(func() (err error) {
		out.Completed, err = r.count(ctx, &entities.Task{}, owner(ownerID), status(entities.TaskCompleted))
		return err
	})
	g.Go(func() (err error) {
		out.InProgress, err = r.count(ctx, &entities.Task{}, owner(ownerID), status(entities.TaskInProgress))
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.TaskStats{}, err
	}
	out.Active = out.Pending + out.InProgress
	return out, nil
}

func (r *dashboardRepo) WaterUsage(ctx context.Context, ownerID string, rg dashboard.DateRange) (dashboard.WaterUsage, error) {
	var logs []entities.IrrigationLog
	err := r.run(ctx, func(tx *gorm.DB) error {
		return tx.Select("water_amount").
			Scopes(owner(ownerID), within("date", rg)).
			Find(&logs).Error
	})
	if err != nil {
		return dashboard.WaterUsage{}, err
	}

	var out dashboard.WaterUsage
	for _, l := range logs {
		out.TotalWater += l.WaterAmount
	}
	out.SessionCount = int64(len(logs))
	if out.SessionCount > 0 {
		out.AveragePerSession = out.TotalWater / float64(out.SessionCount)
	}
	return out, nil
}

func (r *dashboardRepo) FertilizerUsage(ctx context.Context, ownerID string, rg dashboard.DateRange) (dashboard.FertilizerUsage, error) {
	var logs []entities.FertilizerLog
	err := r.run(ctx, func(tx *gorm.DB) error {
		return tx.Select("fertilizer_type", "amount").
			Scopes(owner(ownerID), within("date", rg)).
			Find(&logs).Error
	})
	if err != nil {
		return dashboard.FertilizerUsage{}, err
	}

	out := dashboard.FertilizerUsage{TypeBreakdown: map[string]float64{}}
	for _, l := range logs {
		out.TotalAmount += l.Amount
		out.TypeBreakdown[l.FertilizerType] += l.Amount
	}
	out.ApplicationCount = int64(len(logs))
	return out, nil
}

func (r *dashboardRepo) YieldStats(ctx context.Context, ownerID string, rg dashboard.DateRange) (dashboard.YieldStats, error) {
	var rows []struct {
		Quantity float64
		CropName *string
	}
	err := r.run(ctx, func(tx *gorm.DB) error {
		return tx.Table("harvest_logs").
			Select("harvest_logs.quantity AS quantity, crops.name AS crop_name").
			Joins("LEFT JOIN crops ON crops.id = harvest_logs.crop_id").
			Where("harvest_logs.user_id = ?", ownerID).
			Scopes(within("harvest_logs.harvest_date", rg)).
			Scan(&rows).Error
	})
	if err != nil {
		return dashboard.YieldStats{}, err
	}

	out := dashboard.YieldStats{CropBreakdown: map[string]float64{}}
	for _, row := range rows {
		name := unknownCropName
		if row.CropName != nil {
			name = *row.CropName
		}
		out.TotalYield += row.Quantity
		out.CropBreakdown[name] += row.Quantity
	}
	out.HarvestCount = int64(len(rows))
	return out, nil
}

func (r *dashboardRepo) PestDiseaseStats(ctx context.Context, ownerID string, rg dashboard.DateRange) (dashboard.PestDiseaseStats, error) {
	var logs []entities.PestDiseaseLog
	err := r.run(ctx, func(tx *gorm.DB) error {
		return tx.Select("type", "severity").
			Scopes(owner(ownerID), within("date", rg)).
			Find(&logs).Error
	})
	if err != nil {
		return dashboard.PestDiseaseStats{}, err
	}

	out := dashboard.PestDiseaseStats{SeverityBreakdown: map[entities.Severity]int64{
		entities.SeverityLow:    0,
		entities.SeverityMedium: 0,
		entities.SeverityHigh:   0,
	}}
	for _, l := range logs {
		switch l.Type {
		case entities.IncidentPest:
			out.PestCount++
		case entities.IncidentDisease:
			out.DiseaseCount++
		}
		if _, ok := out.SeverityBreakdown[l.Severity]; ok {
			out.SeverityBreakdown[l.Severity]++
		}
	}
	out.TotalIncidents = int64(len(logs))
	return out, nil
}

func (r *dashboardRepo) RecentHarvestCount(ctx context.Context, ownerID string, days int) (int64, error) {
	if days <= 0 {
		days = DefaultHarvestDays
	}
	since := r.now().UTC().AddDate(0, 0, -days)
	return r.count(ctx, &entities.HarvestLog{}, owner(ownerID), within("harvest_date", dashboard.DateRange{Start: &since}))
}

// FirstFieldWithLocation returns the newest active field with coordinates, or nil.
func (r *dashboardRepo) FirstFieldWithLocation(ctx context.Context, ownerID string) (*entities.Field, error) {
	var fields []entities.Field
	err := r.run(ctx, func(tx *gorm.DB) error {
		return tx.Select("id", "name", "latitude", "longitude", "created_at").
			Scopes(owner(ownerID)).
			Where("is_active = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true).
			Order("created_at DESC").Order("id").
			Limit(1).
			Find(&fields).Error
	})
	if err != nil || len(fields) == 0 {
		return nil, err
	}
	return &fields[0], nil
}

func (r *dashboardRepo) FinancialSummary(ctx context.Context, ownerID string, rg dashboard.DateRange) (dashboard.FinancialSummary, error) {
	sum := func(ctx context.Context, kind entities.TransactionType) (float64, int, error) {
		var rows []entities.FinancialTransaction
		err := r.run(ctx, func(tx *gorm.DB) error {
			return tx.Select("amount").
				Scopes(owner(ownerID), within("transaction_date", rg)).
				Where("transaction_type = ?", kind).
				Find(&rows).Error
		})
		total := 0.0
		for _, t := range rows {
			total += t.Amount
		}
		return total, len(rows), err
	}

	var out dashboard.FinancialSummary
	var incomeRows, expenseRows int
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalIncome, incomeRows, err = sum(ctx, entities.Income)
		return err
	})
	g.Go(func() (err error) {
		out.TotalExpenses, expenseRows, err = sum(ctx, entities.Expense)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.FinancialSummary{}, err
	}
	out.Balance = out.TotalIncome - out.TotalExpenses
	out.TransactionCount = int64(incomeRows + expenseRows)
	return out, nil
}

// Summary fans out to every metric and joins. The first failure cancels the
// rest and is returned; there is no partial result. Metrics are independent
// reads, not one point-in-time snapshot.
func (r *dashboardRepo) Summary(ctx context.Context, ownerID string, rg dashboard.DateRange) (*dashboard.Summary, error) {
	var s dashboard.Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { s.Counts, err = r.TotalCounts(ctx, ownerID); return err })
	g.Go(func() (err error) { s.ActiveCrops, err = r.ActiveCropsCount(ctx, ownerID); return err })
	g.Go(func() (err error) { s.RecentTasks, err = r.RecentTasks(ctx, ownerID, DefaultRecentTasks); return err })
	g.Go(func() (err error) { s.UpcomingHarvests, err = r.UpcomingHarvests(ctx, ownerID, DefaultHarvestDays); return err })
	g.Go(func() (err error) { s.Tasks, err = r.TaskStats(ctx, ownerID); return err })
	g.Go(func() (err error) { s.Water, err = r.WaterUsage(ctx, ownerID, rg); return err })
	g.Go(func() (err error) { s.Fertilizer, err = r.FertilizerUsage(ctx, ownerID, rg); return err })
	g.Go(func() (err error) { s.Yield, err = r.YieldStats(ctx, ownerID, rg); return err })
	g.Go(func() (err error) { s.PestDisease, err = r.PestDiseaseStats(ctx, ownerID, rg); return err })
	g.Go(func() (err error) { s.RecentHarvests, err = r.RecentHarvestCount(ctx, ownerID, DefaultHarvestDays); return err })
	g.Go(func() (err error) { s.Location, err = r.FirstFieldWithLocation(ctx, ownerID); return err })
	g.Go(func() (err error) { s.Financial, err = r.FinancialSummary(ctx, ownerID, rg); return err })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}

func ptr[T any](v T) *T { return &v }

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
