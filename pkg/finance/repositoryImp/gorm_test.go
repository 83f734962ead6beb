package repositoryImp

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
)

func newRepo(t *testing.T) *gormRepo {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "farm.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return &gormRepo{db: db}
}

func TestFindByIDIsOwnerScoped(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	in := &entities.FinancialTransaction{
		Base:            entities.Base{UserID: "u1"},
		TransactionType: entities.Income,
		Amount:          10,
		TransactionDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.Create(ctx, in))

	got, err := r.FindByID(ctx, in.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Amount)

	_, err = r.FindByID(ctx, in.ID, "u2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got.Amount = 12
	require.NoError(t, r.Update(ctx, got))
	again, err := r.FindByID(ctx, in.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 12.0, again.Amount)
}

func TestListByRangeBoundsAreInclusive(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	day := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, r.Create(ctx, &entities.FinancialTransaction{
			Base:            entities.Base{UserID: "u1"},
			TransactionType: entities.Expense,
			Amount:          float64(i + 1),
			TransactionDate: day.AddDate(0, 0, i),
		}))
	}

	from, to := day, day.AddDate(0, 0, 1)
	got, err := r.ListByRange(ctx, "u1", &from, &to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].Amount)
	assert.Equal(t, 2.0, got[1].Amount)

	none, err := r.ListByRange(ctx, "u2", nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
