package serviceImp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/baobabstack-code/farm-management-system-sub000/database"
	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/repositoryImp"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

// mockRepo is a mock implementation of repository.DashboardRepository.
type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) TotalCounts(ctx context.Context, ownerID string) (dashboard.TotalCounts, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(dashboard.TotalCounts), args.Error(1)
}

func (m *mockRepo) ActiveCropsCount(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) ActiveCrops(ctx context.Context, ownerID string) ([]entities.Crop, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Crop), args.Error(1)
}

func (m *mockRepo) RecentTasks(ctx context.Context, ownerID string, limit int) ([]entities.Task, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *mockRepo) UpcomingHarvests(ctx context.Context, ownerID string, days int) ([]entities.Crop, error) {
	args := m.Called(ctx, ownerID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Crop), args.Error(1)
}

func (m *mockRepo) TaskStats(ctx context.Context, ownerID string) (dashboard.TaskStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(dashboard.TaskStats), args.Error(1)
}

func (m *mockRepo) WaterUsage(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.WaterUsage, error) {
	args := m.Called(ctx, ownerID, r)
	return args.Get(0).(dashboard.WaterUsage), args.Error(1)
}

func (m *mockRepo) FertilizerUsage(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.FertilizerUsage, error) {
	args := m.Called(ctx, ownerID, r)
	return args.Get(0).(dashboard.FertilizerUsage), args.Error(1)
}

func (m *mockRepo) YieldStats(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.YieldStats, error) {
	args := m.Called(ctx, ownerID, r)
	return args.Get(0).(dashboard.YieldStats), args.Error(1)
}

func (m *mockRepo) PestDiseaseStats(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.PestDiseaseStats, error) {
	args := m.Called(ctx, ownerID, r)
	return args.Get(0).(dashboard.PestDiseaseStats), args.Error(1)
}

func (m *mockRepo) RecentHarvestCount(ctx context.Context, ownerID string, days int) (int64, error) {
	args := m.Called(ctx, ownerID, days)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) FirstFieldWithLocation(ctx context.Context, ownerID string) (*entities.Field, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Field), args.Error(1)
}

func (m *mockRepo) FinancialSummary(ctx context.Context, ownerID string, r dashboard.DateRange) (dashboard.FinancialSummary, error) {
	args := m.Called(ctx, ownerID, r)
	return args.Get(0).(dashboard.FinancialSummary), args.Error(1)
}

func (m *mockRepo) Summary(ctx context.Context, ownerID string, r dashboard.DateRange) (*dashboard.Summary, error) {
	args := m.Called(ctx, ownerID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Summary), args.Error(1)
}

func ptr[T any](v T) *T { return &v }

func TestSummaryReshapesRepositoryResult(t *testing.T) {
	repo := new(mockRepo)
	svc := New(repo, nil, WithClock(clock))
	ctx := context.Background()

	created := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	raw := &dashboard.Summary{
		Counts:      dashboard.TotalCounts{TotalCrops: 3, TotalFields: 1, TotalTasks: 12, TotalEquipment: 2},
		ActiveCrops: 2,
		Tasks:       dashboard.TaskStats{Pending: 4, Overdue: 2, Completed: 8, Active: 4},
		RecentTasks: []entities.Task{
			{Base: entities.Base{ID: "t1", CreatedAt: created}, Title: "Weed", DueDate: created, Status: entities.TaskPending, Crop: &entities.Crop{Name: "Maize"}},
			{Base: entities.Base{ID: "t2", CreatedAt: created}, Title: "Fence", DueDate: created, Status: entities.TaskPending},
		},
		UpcomingHarvests: []entities.Crop{
			{Base: entities.Base{ID: "c1"}, Name: "Maize", Status: entities.CropGrowing, ExpectedHarvestDate: now.AddDate(0, 0, 10)},
		},
		Financial: dashboard.FinancialSummary{TotalIncome: 800, TotalExpenses: 200, Balance: 600, TransactionCount: 3},
		Location:  &entities.Field{Name: "Home", Latitude: ptr(-1.3), Longitude: ptr(36.8)},
		PestDisease: dashboard.PestDiseaseStats{
			SeverityBreakdown: map[entities.Severity]int64{entities.SeverityHigh: 1},
		},
	}
	repo.On("Summary", mock.Anything, "u1", dashboard.DateRange{}).Return(raw, nil)

	out, err := svc.Summary(ctx, "u1", dashboard.DateRange{})
	require.NoError(t, err)

	assert.Equal(t, dashboard.CountsResponse{TotalCrops: 3, TotalFields: 1, TotalTasks: 12, TotalEquipment: 2, ActiveCrops: 2}, out.Counts)
	require.Len(t, out.Tasks.Recent, 2)
	assert.Equal(t, "2026-10-15T09:30:00.000Z", out.Tasks.Recent[0].CreatedAt)
	assert.Equal(t, "Maize", *out.Tasks.Recent[0].CropName)
	assert.Nil(t, out.Tasks.Recent[1].CropName)
	require.Len(t, out.Harvests.Upcoming, 1)
	assert.Equal(t, 10, out.Harvests.Upcoming[0].DaysUntilHarvest)
	assert.Equal(t, 75.0, out.Financial.ProfitMargin)
	assert.Equal(t, map[string]int64{"LOW": 0, "MEDIUM": 0, "HIGH": 1}, out.PestDisease.SeverityBreakdown)
	require.NotNil(t, out.Location)
	assert.Equal(t, "Home", *out.Location.Name)
	assert.Equal(t, "2026-10-16T12:00:00.000Z", out.GeneratedAt)
	assert.NotNil(t, out.Resources.Fertilizer.TypeBreakdown, "maps are never null")
	repo.AssertExpectations(t)
}

func TestSummaryRejectsInvertedRange(t *testing.T) {
	repo := new(mockRepo)
	svc := New(repo, nil)
	start, end := now, now.AddDate(0, 0, -1)

	_, err := svc.Summary(context.Background(), "u1", dashboard.DateRange{Start: &start, End: &end})

	assert.ErrorIs(t, err, dashboard.ErrInvalidDateRange)
	repo.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummaryRequiresOwner(t *testing.T) {
	svc := New(new(mockRepo), nil)
	_, err := svc.Summary(context.Background(), "", dashboard.DateRange{})
	assert.ErrorIs(t, err, dashboard.ErrOwnerRequired)
}

func TestSummaryPropagatesRepositoryError(t *testing.T) {
	repo := new(mockRepo)
	boom := errors.New("connection reset")
	repo.On("Summary", mock.Anything, "u1", mock.Anything).Return(nil, boom)

	out, err := New(repo, nil).Summary(context.Background(), "u1", dashboard.DateRange{})

	assert.Nil(t, out)
	assert.Same(t, boom, err)
}

func TestStatsActiveTasksIsPendingPlusInProgress(t *testing.T) {
	repo := new(mockRepo)
	repo.On("TotalCounts", mock.Anything, "u1").Return(dashboard.TotalCounts{TotalCrops: 5, TotalTasks: 9}, nil)
	repo.On("ActiveCropsCount", mock.Anything, "u1").Return(int64(4), nil)
	repo.On("TaskStats", mock.Anything, "u1").Return(dashboard.TaskStats{Pending: 3, InProgress: 2, Overdue: 1, Completed: 4, Active: 5}, nil)
	repo.On("UpcomingHarvests", mock.Anything, "u1", 30).Return([]entities.Crop{{Name: "a"}, {Name: "b"}}, nil)
	repo.On("FinancialSummary", mock.Anything, "u1", dashboard.DateRange{}).Return(dashboard.FinancialSummary{Balance: 42}, nil)

	out, err := New(repo, nil).Stats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, &dashboard.StatsResponse{
		TotalCrops:       5,
		ActiveCrops:      4,
		TotalTasks:       9,
		ActiveTasks:      5,
		OverdueTasks:     1,
		CompletedTasks:   4,
		UpcomingHarvests: 2,
		Balance:          42,
	}, out)
	repo.AssertExpectations(t)
}

func TestStatsFailsWhenAnyReadFails(t *testing.T) {
	repo := new(mockRepo)
	boom := errors.New("boom")
	repo.On("TotalCounts", mock.Anything, "u1").Return(dashboard.TotalCounts{}, nil).Maybe()
	repo.On("ActiveCropsCount", mock.Anything, "u1").Return(int64(0), nil).Maybe()
	repo.On("TaskStats", mock.Anything, "u1").Return(dashboard.TaskStats{}, boom)
	repo.On("UpcomingHarvests", mock.Anything, "u1", 30).Return([]entities.Crop{}, nil).Maybe()
	repo.On("FinancialSummary", mock.Anything, "u1", mock.Anything).Return(dashboard.FinancialSummary{}, nil).Maybe()

	out, err := New(repo, nil).Stats(context.Background(), "u1")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}

func TestFinancialSummaryProfitMargin(t *testing.T) {
	repo := new(mockRepo)
	repo.On("FinancialSummary", mock.Anything, "u1", mock.Anything).
		Return(dashboard.FinancialSummary{TotalIncome: 0, TotalExpenses: 150, Balance: -150, TransactionCount: 1}, nil)

	out, err := New(repo, nil).FinancialSummary(context.Background(), "u1", dashboard.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.ProfitMargin, "no income, no margin")
	assert.Equal(t, -150.0, out.Balance)
}

func TestAlerts(t *testing.T) {
	weekAgo := now.AddDate(0, 0, -7)
	week := dashboard.DateRange{Start: &weekAgo, End: ptr(now)}

	t.Run("all three", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("TaskStats", mock.Anything, "u1").Return(dashboard.TaskStats{Overdue: 2}, nil)
		repo.On("UpcomingHarvests", mock.Anything, "u1", 7).Return([]entities.Crop{{Name: "Maize"}}, nil)
		repo.On("PestDiseaseStats", mock.Anything, "u1", week).Return(dashboard.PestDiseaseStats{
			SeverityBreakdown: map[entities.Severity]int64{entities.SeverityHigh: 3, entities.SeverityLow: 5},
		}, nil)

		alerts, err := New(repo, nil, WithClock(clock)).Alerts(context.Background(), "u1")
		require.NoError(t, err)
		require.Len(t, alerts, 3)
		assert.Equal(t, dashboard.Alert{Type: dashboard.AlertWarning, Title: "Overdue Tasks", Message: "You have 2 overdue tasks", Count: 2}, alerts[0])
		assert.Equal(t, dashboard.AlertInfo, alerts[1].Type)
		assert.Equal(t, "1 crop ready for harvest in the next 7 days", alerts[1].Message)
		assert.Equal(t, dashboard.AlertError, alerts[2].Type)
		assert.EqualValues(t, 3, alerts[2].Count)
	})

	t.Run("quiet farm", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("TaskStats", mock.Anything, "u1").Return(dashboard.TaskStats{Pending: 4}, nil)
		repo.On("UpcomingHarvests", mock.Anything, "u1", 7).Return([]entities.Crop{}, nil)
		repo.On("PestDiseaseStats", mock.Anything, "u1", week).Return(dashboard.PestDiseaseStats{
			SeverityBreakdown: map[entities.Severity]int64{entities.SeverityMedium: 1},
		}, nil)

		alerts, err := New(repo, nil, WithClock(clock)).Alerts(context.Background(), "u1")
		require.NoError(t, err)
		assert.NotNil(t, alerts)
		assert.Empty(t, alerts)
	})
}

func TestQuickStats(t *testing.T) {
	repo := new(mockRepo)
	repo.On("ActiveCropsCount", mock.Anything, "u1").Return(int64(6), nil)
	repo.On("TaskStats", mock.Anything, "u1").Return(dashboard.TaskStats{Pending: 1, InProgress: 1, Active: 2, Overdue: 1}, nil)
	repo.On("UpcomingHarvests", mock.Anything, "u1", 7).Return([]entities.Crop{{}, {}, {}}, nil)

	out, err := New(repo, nil).QuickStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &dashboard.QuickStats{ActiveCrops: 6, ActiveTasks: 2, OverdueTasks: 1, UpcomingHarvests: 3}, out)
}

func TestRecentTasksAndHarvestsPassThrough(t *testing.T) {
	repo := new(mockRepo)
	repo.On("RecentTasks", mock.Anything, "u1", 5).Return([]entities.Task{{Title: "Spray"}}, nil)
	repo.On("UpcomingHarvests", mock.Anything, "u1", 14).Return([]entities.Crop{{Name: "Late", ExpectedHarvestDate: now.Add(-36 * time.Hour)}}, nil)
	svc := New(repo, nil, WithClock(clock))

	tasks, err := svc.RecentTasks(context.Background(), "u1", 5)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Spray", tasks[0].Title)

	crops, err := svc.UpcomingHarvests(context.Background(), "u1", 14)
	require.NoError(t, err)
	require.Len(t, crops, 1)
	assert.Equal(t, -1, crops[0].DaysUntilHarvest, "ceil(-1.5) is -1")
}

// Runs the real repository against sqlite to check the end-to-end numbers.
func TestSummaryEndToEnd(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "farm.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	svc := New(repositoryImp.New(db, nil, repositoryImp.WithClock(clock)), nil, WithClock(clock))
	ctx := context.Background()

	t.Run("empty account", func(t *testing.T) {
		out, err := svc.Summary(ctx, "nobody", dashboard.DateRange{})
		require.NoError(t, err)
		assert.Nil(t, out.Location)
		assert.Zero(t, out.Financial.ProfitMargin)
		assert.Zero(t, out.Resources.Water.AveragePerSession)

		raw, err := json.Marshal(out)
		require.NoError(t, err)
		var generic map[string]any
		require.NoError(t, json.Unmarshal(raw, &generic))
		assert.Nil(t, generic["location"])
		tasks := generic["tasks"].(map[string]any)
		assert.Equal(t, []any{}, tasks["recent"], "empty lists render as []")
	})

	t.Run("populated account", func(t *testing.T) {
		for _, c := range []entities.Crop{
			{Base: entities.Base{UserID: "u1"}, Name: "Maize", Status: entities.CropGrowing, ExpectedHarvestDate: now.AddDate(0, 0, 5)},
			{Base: entities.Base{UserID: "u1"}, Name: "Beans", Status: entities.CropGrowing, ExpectedHarvestDate: now.AddDate(0, 0, 50)},
			{Base: entities.Base{UserID: "u1"}, Name: "Wheat", Status: entities.CropHarvested, ExpectedHarvestDate: now.AddDate(0, 0, -5)},
		} {
			require.NoError(t, db.Create(&c).Error)
		}
		for i := 0; i < 12; i++ {
			tk := entities.Task{Base: entities.Base{UserID: "u1"}, Title: "t", Status: entities.TaskCompleted, DueDate: now.AddDate(0, 0, -1)}
			if i < 2 {
				tk.Status = entities.TaskPending
			}
			tk.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
			require.NoError(t, db.Create(&tk).Error)
		}
		for _, tx := range []entities.FinancialTransaction{
			{Base: entities.Base{UserID: "u1"}, TransactionType: entities.Income, Amount: 500, TransactionDate: now.AddDate(0, 0, -2)},
			{Base: entities.Base{UserID: "u1"}, TransactionType: entities.Income, Amount: 300, TransactionDate: now.AddDate(0, 0, -2)},
			{Base: entities.Base{UserID: "u1"}, TransactionType: entities.Expense, Amount: 200, TransactionDate: now.AddDate(0, 0, -1)},
		} {
			require.NoError(t, db.Create(&tx).Error)
		}

		out, err := svc.Summary(ctx, "u1", dashboard.DateRange{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, out.Counts.TotalCrops)
		assert.EqualValues(t, 2, out.Counts.ActiveCrops)
		assert.Len(t, out.Tasks.Recent, 10)
		assert.EqualValues(t, 2, out.Tasks.Overdue)
		assert.Equal(t, dashboard.FinancialResponse{TotalIncome: 800, TotalExpenses: 200, Balance: 600, TransactionCount: 3, ProfitMargin: 75}, out.Financial)
	})
}
