package serviceImp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/baobabstack-code/farm-management-system-sub000/database"
	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/repositoryImp"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/activity/service"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard"
	dashRepo "github.com/baobabstack-code/farm-management-system-sub000/pkg/dashboard/repositoryImp"
)

func newSvc(t *testing.T) (service.ActivityService, *gorm.DB) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "farm.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewActivityService(repositoryImp.New(db)), db
}

func TestOffsetTimestampsLandInTheirUTCDay(t *testing.T) {
	svc, db := newSvc(t)
	ctx := context.Background()

	// 02:00 at +05:00 is 21:00 UTC the day before
	at, err := time.Parse(time.RFC3339, "2026-10-01T02:00:00+05:00")
	require.NoError(t, err)

	l, err := svc.LogIrrigation(ctx, &entities.IrrigationLog{
		Base:        entities.Base{UserID: "u1"},
		Date:        at,
		WaterAmount: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, l.Date.Location())
	assert.True(t, l.Date.Equal(at))

	start := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC)
	w, err := dashRepo.New(db, nil).WaterUsage(ctx, "u1", dashboard.DateRange{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Equal(t, 50.0, w.TotalWater)
	assert.EqualValues(t, 1, w.SessionCount)

	next := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	w, err = dashRepo.New(db, nil).WaterUsage(ctx, "u1", dashboard.DateRange{Start: &next})
	require.NoError(t, err)
	assert.Zero(t, w.SessionCount)
}

func TestMissingDateDefaultsToNow(t *testing.T) {
	svc, _ := newSvc(t)
	fixed := time.Date(2026, 10, 16, 9, 30, 15, 500, time.UTC)
	svc.(*activitySvc).now = func() time.Time { return fixed }

	l, err := svc.LogPestDisease(context.Background(), &entities.PestDiseaseLog{
		Base: entities.Base{UserID: "u1"},
		Type: entities.IncidentPest,
		Name: "Aphids",
	})
	require.NoError(t, err)
	assert.Equal(t, fixed.Truncate(time.Second), l.Date)
	assert.Equal(t, entities.SeverityLow, l.Severity)
}

func TestRecentByKind(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()
	_, err := svc.LogHarvest(ctx, &entities.HarvestLog{
		Base:        entities.Base{UserID: "u1"},
		CropID:      "c1",
		HarvestDate: time.Now().UTC().AddDate(0, 0, -2),
		Quantity:    10,
	})
	require.NoError(t, err)

	got, err := svc.Recent(ctx, "u1", service.Harvest, 7)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.Recent(ctx, "u1", "weather", 7)
	assert.ErrorIs(t, err, service.ErrUnknownKind)
}
