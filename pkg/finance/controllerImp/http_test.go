package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabstack-code/farm-management-system-sub000/database"
	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/finance/repositoryImp"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/finance/serviceImp"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "farm.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	e := echo.New()
	g := e.Group("/finance", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("uid", c.Request().Header.Get("X-Test-Uid"))
			return next(c)
		}
	})
	New(serviceImp.New(repositoryImp.New(db))).Register(g)
	return e
}

func call(e *echo.Echo, method, target, uid, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Test-Uid", uid)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateListPatch(t *testing.T) {
	e := newServer(t)

	rec := call(e, http.MethodPost, "/finance/transactions", "u1",
		`{"user_id":"u2","transaction_type":"EXPENSE","amount":40,"category":"seed","transaction_date":"2026-10-03T08:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created entities.FinancialTransaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "u1", created.UserID)

	rec = call(e, http.MethodGet, "/finance/transactions?from=2026-10-01&to=2026-10-03", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []entities.FinancialTransaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1, "a date-only end covers the whole day")

	rec = call(e, http.MethodPatch, "/finance/transactions/"+created.ID, "u1", `{"amount":55}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"amount":55`)
	assert.Contains(t, rec.Body.String(), `"category":"seed"`)
}

func TestErrorMapping(t *testing.T) {
	e := newServer(t)
	rec := call(e, http.MethodPost, "/finance/transactions", "u1", `{"transaction_type":"INCOME","amount":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created entities.FinancialTransaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	tests := []struct {
		name, method, target, uid, payload string
		want                               int
	}{
		{"bad type", http.MethodPost, "/finance/transactions", "u1", `{"transaction_type":"GIFT","amount":1}`, http.StatusBadRequest},
		{"bad json", http.MethodPost, "/finance/transactions", "u1", `{`, http.StatusBadRequest},
		{"inverted range", http.MethodGet, "/finance/transactions?from=2026-10-10&to=2026-10-01", "u1", "", http.StatusBadRequest},
		{"bad date", http.MethodGet, "/finance/transactions?from=yesterday", "u1", "", http.StatusBadRequest},
		{"other owner", http.MethodPatch, "/finance/transactions/" + created.ID, "u2", `{"amount":5}`, http.StatusNotFound},
		{"unknown id", http.MethodPatch, "/finance/transactions/missing", "u1", `{"amount":5}`, http.StatusNotFound},
		{"zero amount", http.MethodPatch, "/finance/transactions/" + created.ID, "u1", `{"amount":0}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, call(e, tt.method, tt.target, tt.uid, tt.payload).Code)
		})
	}
}
